package ranking

import (
	"fmt"
	"time"
)

// RetrievalTimeoutError reports that the embedding/retrieval collaborator
// did not answer within the configured budget. Recoverable: ranking degrades
// to lexical-only scoring and continues.
type RetrievalTimeoutError struct {
	Budget time.Duration
	Cause  error
}

// Error implements the error interface.
func (e *RetrievalTimeoutError) Error() string {
	return fmt.Sprintf("semantic retrieval timed out after %s: %v", e.Budget, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *RetrievalTimeoutError) Unwrap() error {
	return e.Cause
}
