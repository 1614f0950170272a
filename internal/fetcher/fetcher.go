// Package fetcher downloads HTML pages to be stemmed, honouring robots.txt.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

const DefaultUserAgent = "DeiStemBot/1.0"

// MaxPageSize caps how much of a page body is read.
const MaxPageSize = 10 * 1024 * 1024

type Fetcher struct {
	client      *http.Client
	robotsCache map[string]*robotstxt.RobotsData
	robotsMu    sync.RWMutex
	userAgent   string
}

func New(userAgent string) *Fetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		robotsCache: make(map[string]*robotstxt.RobotsData),
		userAgent:   userAgent,
	}
}

// Fetch downloads an HTML page. The caller closes the returned body, which
// yields at most MaxPageSize bytes.
func (f *Fetcher) Fetch(ctx context.Context, urlStr string) (io.ReadCloser, error) {
	if !f.IsAllowed(ctx, urlStr) {
		return nil, fmt.Errorf("disallowed by robots.txt: %s", urlStr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("non-200 status: %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !IsHTMLContentType(contentType) {
		resp.Body.Close()
		return nil, fmt.Errorf("not an html page: %s", contentType)
	}

	if resp.ContentLength > MaxPageSize {
		resp.Body.Close()
		return nil, fmt.Errorf("page too large: %d bytes", resp.ContentLength)
	}

	return limitedBody{Reader: io.LimitReader(resp.Body, MaxPageSize), Closer: resp.Body}, nil
}

type limitedBody struct {
	io.Reader
	io.Closer
}

func (f *Fetcher) IsAllowed(ctx context.Context, urlStr string) bool {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return false
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", u.Scheme, u.Host)

	f.robotsMu.RLock()
	robots, exists := f.robotsCache[robotsURL]
	f.robotsMu.RUnlock()

	if !exists {
		robots = f.fetchRobotsTxt(ctx, robotsURL)
		f.robotsMu.Lock()
		f.robotsCache[robotsURL] = robots
		f.robotsMu.Unlock()
	}

	if robots == nil {
		return true
	}

	path := u.Path
	if path == "" {
		path = "/"
	}
	return robots.FindGroup(f.userAgent).Test(path)
}

// fetchRobotsTxt returns nil when the site has no usable robots.txt.
func (f *Fetcher) fetchRobotsTxt(ctx context.Context, robotsURL string) *robotstxt.RobotsData {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	robots, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil
	}
	return robots
}

func IsHTMLContentType(contentType string) bool {
	contentType = strings.ToLower(strings.TrimSpace(contentType))

	htmlTypes := []string{
		"text/html",
		"application/xhtml+xml",
		"application/xhtml",
	}

	for _, htmlType := range htmlTypes {
		if strings.HasPrefix(contentType, htmlType) {
			return true
		}
	}

	return false
}
