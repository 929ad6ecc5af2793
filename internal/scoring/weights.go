package scoring

import (
	"fmt"
	"math"
)

// weightSumTolerance absorbs float accumulation error when validating that
// weights sum to 1.0.
const weightSumTolerance = 1e-9

// Weights configures the contribution of each score dimension to the
// overall match score. Components must sum to 1.0.
type Weights struct {
	Skill      float64 `json:"skill"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Location   float64 `json:"location"`
	Semantic   float64 `json:"semantic"`
}

// DefaultWeights returns the standard weight configuration.
func DefaultWeights() Weights {
	return Weights{
		Skill:      0.35,
		Experience: 0.25,
		Education:  0.15,
		Location:   0.10,
		Semantic:   0.15,
	}
}

// Validate checks that every component is non-negative and that the
// components sum to 1.0 within tolerance.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"skill":      w.Skill,
		"experience": w.Experience,
		"education":  w.Education,
		"location":   w.Location,
		"semantic":   w.Semantic,
	} {
		if v < 0 {
			return fmt.Errorf("invalid weight configuration: %s weight %g is negative", name, v)
		}
	}

	sum := w.Skill + w.Experience + w.Education + w.Location + w.Semantic
	if math.Abs(sum-1.0) > weightSumTolerance {
		return &InvalidWeightConfigurationError{Sum: sum}
	}
	return nil
}

// WeightsFromMap builds Weights from a string-keyed map, as received in API
// requests. Unknown keys are rejected; missing keys default to zero.
func WeightsFromMap(m map[string]float64) (Weights, error) {
	var w Weights
	for key, v := range m {
		switch key {
		case "skill":
			w.Skill = v
		case "experience":
			w.Experience = v
		case "education":
			w.Education = v
		case "location":
			w.Location = v
		case "semantic":
			w.Semantic = v
		default:
			return Weights{}, fmt.Errorf("invalid weight configuration: unknown weight %q", key)
		}
	}
	return w, nil
}
