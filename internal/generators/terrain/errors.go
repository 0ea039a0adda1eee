package terrain

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidParameters is matched by every validation failure.
	ErrInvalidParameters = errors.New("invalid parameters")
	// ErrDegenerateHeightField is reported in Result.Warnings when every
	// height sample was equal and the map collapsed to the lowest category.
	ErrDegenerateHeightField = errors.New("degenerate height field")
	// ErrNonFiniteHeight is returned when a noise sample or octave sum is NaN
	// or infinite.
	ErrNonFiniteHeight = errors.New("non-finite height sample")
)

// InvalidParametersError lists every rule a Config violates.
type InvalidParametersError struct {
	Problems []string
}

func (e *InvalidParametersError) Error() string {
	return ErrInvalidParameters.Error() + ": " + strings.Join(e.Problems, "; ")
}

// Unwrap lets errors.Is match ErrInvalidParameters.
func (e *InvalidParametersError) Unwrap() error { return ErrInvalidParameters }
