package parser

import "fmt"

// ParseError represents a fatal parse failure. Parsers only return it for
// input that is empty after normalization; sparse extraction degrades the
// confidence map instead of failing.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}
