package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
)

// docxText reads DOCX bytes as a zip archive and extracts text from the
// w:t elements of word/document.xml, emitting a newline per paragraph.
func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "docx", Cause: err}
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", &ExtractionError{Format: "docx", Cause: errors.New("word/document.xml not found")}
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", &ExtractionError{Format: "docx", Cause: err}
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var sb bytes.Buffer
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", &ExtractionError{Format: "docx", Cause: err}
		}
		switch el := tok.(type) {
		case xml.StartElement:
			// w:t elements hold the text runs
			if el.Name.Local == "t" {
				var content string
				if err := decoder.DecodeElement(&content, &el); err == nil {
					sb.WriteString(content)
				}
			}
		case xml.EndElement:
			// paragraph boundary
			if el.Name.Local == "p" {
				sb.WriteString("\n")
			}
		}
	}

	return sb.String(), nil
}
