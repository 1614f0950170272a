package textprocessor

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const maxContentLength = 1000000

// ExtractedPage is the readable part of an HTML document.
type ExtractedPage struct {
	Title       string
	Description string
	Content     string
}

// Fields converts the page for ProcessDocument.
func (p ExtractedPage) Fields() DocumentFields {
	return DocumentFields{
		Title:       p.Title,
		Description: p.Description,
		Content:     p.Content,
	}
}

// Text joins the non-empty title, description and content with spaces.
func (p ExtractedPage) Text() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{p.Title, p.Description, p.Content} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// ExtractText returns the title, description and visible body text of an
// HTML document with scripts, navigation and other chrome removed.
func ExtractText(r io.Reader) (string, error) {
	page, err := ExtractPage(r)
	if err != nil {
		return "", err
	}
	return page.Text(), nil
}

func ExtractPage(r io.Reader) (ExtractedPage, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return ExtractedPage{}, fmt.Errorf("failed to parse html: %w", err)
	}

	return ExtractedPage{
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		Description: extractDescription(doc),
		Content:     extractContent(doc),
	}, nil
}

func extractDescription(doc *goquery.Document) string {
	metaSelectors := []string{
		"meta[name='description']",
		"meta[property='og:description']",
		"meta[name='twitter:description']",
	}

	for _, selector := range metaSelectors {
		if content, exists := doc.Find(selector).Attr("content"); exists && strings.TrimSpace(content) != "" {
			return strings.TrimSpace(content)
		}
	}

	return ""
}

func extractContent(doc *goquery.Document) string {
	contentDoc := doc.Clone()

	contentDoc.Find("script, style, nav, header, footer, aside, iframe, noscript, form, button").Remove()

	var content string

	if article := contentDoc.Find("article").First(); article.Length() > 0 {
		content = article.Text()
	}

	if len(strings.TrimSpace(content)) < 100 {
		if main := contentDoc.Find("main").First(); main.Length() > 0 {
			text := main.Text()
			if len(strings.TrimSpace(text)) > len(strings.TrimSpace(content)) {
				content = text
			}
		}
	}

	if len(strings.TrimSpace(content)) < 100 {
		var paragraphs []string
		contentDoc.Find("p").Each(func(i int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if len(text) > 20 {
				paragraphs = append(paragraphs, text)
			}
		})
		if joined := strings.Join(paragraphs, " "); len(joined) > len(strings.TrimSpace(content)) {
			content = joined
		}
	}

	// Short documents: whatever the body holds.
	if len(strings.TrimSpace(content)) < 100 {
		body := contentDoc.Find("body").Text()
		if len(strings.TrimSpace(body)) > len(strings.TrimSpace(content)) {
			content = body
		}
	}

	content = strings.Join(strings.Fields(content), " ")

	if len(content) > maxContentLength {
		cut := maxContentLength
		for cut > 0 && !utf8.RuneStart(content[cut]) {
			cut--
		}
		content = content[:cut]
	}

	return content
}
