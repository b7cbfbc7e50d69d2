package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
)

// ScoringPolicy turns a resolved prediction into points. Implementations
// must be pure and must reject confidence outside [0, 1].
type ScoringPolicy interface {
	Score(o domain.Outcome) (int, error)
}

// PolicyFunc adapts a plain function to ScoringPolicy.
type PolicyFunc func(o domain.Outcome) (int, error)

func (f PolicyFunc) Score(o domain.Outcome) (int, error) { return f(o) }

// PolicyLinearV1 is the config name of LinearV1.
const PolicyLinearV1 = "linear-v1"

// LinearV1 awards nothing for a wrong prediction and round(10 + 10c) for a
// correct one with confidence c. Halves round away from zero, so 0.05
// scores 11 and 0.25 scores 13.
var LinearV1 ScoringPolicy = PolicyFunc(linearV1)

func linearV1(o domain.Outcome) (int, error) {
	if err := ValidateConfidence(o.Confidence); err != nil {
		return 0, err
	}
	if !o.IsCorrect {
		return 0, nil
	}
	return int(math.Round(10 + o.Confidence*10)), nil
}

// ValidateConfidence rejects NaN and anything outside [0, 1]. No clamping.
func ValidateConfidence(c float64) error {
	if math.IsNaN(c) || c < 0 || c > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidConfidence, c)
	}
	return nil
}

// PolicyByName resolves a configured policy name. Empty means the default.
func PolicyByName(name string) (ScoringPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyLinearV1:
		return LinearV1, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}
