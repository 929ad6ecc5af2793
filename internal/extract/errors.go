package extract

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when a document's declared MIME type is
// not one of the accepted formats. Callers fail fast; there is no fallback
// sniffing.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ExtractionError represents a fatal failure to extract text from a document
// that declared a supported format (corrupt or encrypted input). No
// structured data is possible; the error propagates to the caller.
type ExtractionError struct {
	Format string
	Cause  error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed for %s document: %v", e.Format, e.Cause)
	}
	return fmt.Sprintf("extraction failed for %s document", e.Format)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
