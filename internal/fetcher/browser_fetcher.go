package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// BrowserFetcher renders pages in headless Chrome, for sites that build
// their text with JavaScript.
type BrowserFetcher struct {
	robots    *Fetcher
	userAgent string
	settle    time.Duration
}

func NewBrowserFetcher(userAgent string) *BrowserFetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &BrowserFetcher{
		robots:    New(userAgent),
		userAgent: userAgent,
		settle:    2 * time.Second,
	}
}

// FetchHTML renders urlStr and returns the resulting document. Pages
// that robots.txt disallows are refused before a browser is started.
func (bf *BrowserFetcher) FetchHTML(ctx context.Context, urlStr string) (string, error) {
	if !bf.robots.IsAllowed(ctx, urlStr) {
		return "", fmt.Errorf("disallowed by robots.txt: %s", urlStr)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserAgent(bf.userAgent),
		chromedp.Flag("disable-downloads", true),
		chromedp.Flag("disable-plugins", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-background-networking", true),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	var htmlContent string

	err := chromedp.Run(browserCtx,
		chromedp.Navigate(urlStr),
		chromedp.Sleep(bf.settle),
		chromedp.OuterHTML("html", &htmlContent),
	)
	if err != nil {
		return "", fmt.Errorf("browser fetch failed: %w", err)
	}

	if len(htmlContent) > MaxPageSize {
		return "", fmt.Errorf("page too large: %d bytes", len(htmlContent))
	}

	return htmlContent, nil
}
