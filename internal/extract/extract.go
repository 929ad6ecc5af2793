// Package extract converts uploaded resume documents into normalized plain
// text for the parsers. Extraction is a pure function over the document
// bytes; both parsers assume whitespace-normalized, control-character-free
// input.
package extract

import "fmt"

// Accepted MIME types.
const (
	MIMEPDF   = "application/pdf"
	MIMEDocx  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEHTML  = "text/html"
	MIMEPlain = "text/plain"
)

// RawDocument is an immutable uploaded document: a byte blob plus its
// declared MIME type. It is consumed once by text extraction.
type RawDocument struct {
	Data     []byte
	MIMEType string
}

// Text extracts plain text from a raw document and normalizes it.
// Returns ErrUnsupportedFormat for unknown MIME types and *ExtractionError
// when a supported document cannot be decoded.
func Text(doc RawDocument) (string, error) {
	var (
		text string
		err  error
	)

	switch doc.MIMEType {
	case MIMEPDF:
		text, err = pdfText(doc.Data)
	case MIMEDocx:
		text, err = docxText(doc.Data)
	case MIMEHTML:
		text, err = htmlText(doc.Data)
	case MIMEPlain:
		text = string(doc.Data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, doc.MIMEType)
	}
	if err != nil {
		return "", err
	}

	return NormalizeText(text), nil
}
