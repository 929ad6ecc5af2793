package extract

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// htmlText extracts the visible text from an HTML document, dropping
// script and style content.
func htmlText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &ExtractionError{Format: "html", Cause: err}
	}

	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	body := doc.Find("body")
	if body.Length() == 0 {
		return doc.Text(), nil
	}

	// Emit block-level elements on their own lines so section headings
	// survive for the parsers.
	body.Find("p, li, h1, h2, h3, h4, h5, h6, div, td").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})
	sb.WriteString(body.Text())

	return sb.String(), nil
}
