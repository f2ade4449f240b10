package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/workoutlog/internal/domain"
	"github.com/aalvaropc/workoutlog/internal/ports"
)

// SubmitWorkout performs the single add request of a submit cycle.
type SubmitWorkout struct {
	api ports.WorkoutAPI
	log *slog.Logger
}

func NewSubmitWorkout(api ports.WorkoutAPI, log *slog.Logger) *SubmitWorkout {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &SubmitWorkout{api: api, log: log}
}

// Execute sends entry once and returns exactly one of SubmitSucceeded, SubmitRejected
// or SubmitFailed. It never retries.
func (uc *SubmitWorkout) Execute(ctx context.Context, entry domain.WorkoutEntry) domain.Event {
	uc.log.Info("submit.start", "workout", entry.Workout, "weight", entry.Weight)

	res, err := uc.api.AddWorkout(ctx, entry)
	if err != nil {
		uc.log.Error("submit.failed",
			"err", err,
			"request_id", res.RequestID,
			"status", res.StatusCode,
			"latency_ms", res.LatencyMS,
		)
		return domain.SubmitFailed{Err: err}
	}

	if res.Rejected {
		uc.log.Warn("submit.rejected",
			"request_id", res.RequestID,
			"status", res.StatusCode,
			"latency_ms", res.LatencyMS,
		)
		return domain.SubmitRejected{}
	}

	uc.log.Info("submit.ok",
		"request_id", res.RequestID,
		"status", res.StatusCode,
		"latency_ms", res.LatencyMS,
		"truncated", res.Truncated,
	)
	return domain.SubmitSucceeded{}
}
