package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfText extracts plain text from PDF bytes, concatenating all pages.
// Pages that fail individually are skipped; a document with no readable
// pages is treated as an extraction failure.
func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "pdf", Cause: err}
	}

	var text strings.Builder
	pages := 0
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text.WriteString(pageText)
		text.WriteString("\n")
		pages++
	}

	if pages == 0 {
		return "", &ExtractionError{Format: "pdf"}
	}
	return text.String(), nil
}
