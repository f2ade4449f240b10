package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// WorkoutEntry is the pair sent to the backend on submit.
type WorkoutEntry struct {
	Workout string  `json:"workout"`
	Weight  float64 `json:"weight"`
}

// ParseWeight parses user input as a weight value.
// NaN and infinities are rejected: they parse as floats but are not numbers a form accepts.
func ParseWeight(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("weight is empty: %w", ErrInvalidInput)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("weight %q is not a number: %w", raw, ErrInvalidInput)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("weight %q is not a number: %w", raw, ErrInvalidInput)
	}
	return v, nil
}
