package scoring

import "fmt"

// InvalidWeightConfigurationError reports a weight set whose components do
// not sum to 1.0. It is a caller configuration bug and fails scorer
// construction before any scoring happens.
type InvalidWeightConfigurationError struct {
	Sum float64
}

// Error implements the error interface.
func (e *InvalidWeightConfigurationError) Error() string {
	return fmt.Sprintf("invalid weight configuration: weights sum to %g, expected 1.0", e.Sum)
}
