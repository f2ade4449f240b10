package ports

import (
	"context"

	"github.com/aalvaropc/workoutlog/internal/domain"
)

// AddResult is what the backend answered to an add request.
type AddResult struct {
	StatusCode int
	// Rejected is true only when the body reported success=false.
	Rejected bool
	// Truncated is true when the body was too large to look for the flag.
	Truncated bool
	RequestID string
	LatencyMS int64
}

// WorkoutAPI sends workout entries to the backend.
// A non-nil error is always a transport-level failure.
type WorkoutAPI interface {
	AddWorkout(ctx context.Context, entry domain.WorkoutEntry) (AddResult, error)
}
