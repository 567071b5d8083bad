package scraper

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// minReadabilityLen is the smallest readability output worth trusting.
// Shorter results fall through to the semantic-container heuristics.
const minReadabilityLen = 200

// extract pulls a best-effort title and body out of boilerplate-laden markup.
// Title priority: open-graph, twitter card, document title, first heading.
// Body priority: readability, then article, main, role=main, whole body.
func extract(body []byte, pageURL *url.URL) (*Article, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	return &Article{
		Title:   extractTitle(doc),
		Content: extractContent(body, pageURL, doc),
	}, nil
}

func extractTitle(doc *goquery.Document) string {
	if t, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if t = strings.TrimSpace(t); t != "" {
			return t
		}
	}
	if t, ok := doc.Find(`meta[name="twitter:title"]`).First().Attr("content"); ok {
		if t = strings.TrimSpace(t); t != "" {
			return t
		}
	}
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("h1, h2, h3, h4, h5, h6").First().Text())
}

func extractContent(body []byte, pageURL *url.URL, doc *goquery.Document) string {
	if article, err := readability.FromReader(bytes.NewReader(body), pageURL); err == nil {
		if text := normalizeText(article.TextContent); len(text) > minReadabilityLen {
			return text
		}
	}

	doc.Find("script, style, noscript, nav, header, footer, aside, form, iframe, [role=navigation], .ad, .ads, .advertisement").Remove()

	for _, selector := range []string{"article", "main", "[role=main]", "body"} {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if text := blockText(sel); text != "" {
			return text
		}
	}

	return ""
}

// blockText joins the text of block-level elements so paragraph boundaries
// survive into the extracted content. Containers without block children
// degrade to their flattened text.
func blockText(sel *goquery.Selection) string {
	var parts []string
	sel.Find("p, h1, h2, h3, h4, h5, h6, li, pre, blockquote").Each(func(_ int, block *goquery.Selection) {
		if block.Find("p, li, blockquote").Length() > 0 {
			return // keep only leaf blocks
		}
		if text := strings.Join(strings.Fields(block.Text()), " "); text != "" {
			parts = append(parts, text)
		}
	})
	if len(parts) > 0 {
		return strings.Join(parts, "\n\n")
	}
	return normalizeText(sel.Text())
}

// normalizeText collapses intra-line whitespace and drops blank lines.
func normalizeText(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		lines = append(lines, strings.Join(fields, " "))
	}
	return strings.Join(lines, "\n")
}
