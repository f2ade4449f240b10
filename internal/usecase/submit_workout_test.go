package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/aalvaropc/workoutlog/internal/domain"
	"github.com/aalvaropc/workoutlog/internal/ports"
)

func TestSubmitWorkout_MapsOutcomes(t *testing.T) {
	transportErr := &domain.OpError{Op: "workoutapi.add", Kind: domain.KindTransport, Err: domain.ErrTransport}

	cases := []struct {
		name string
		api  *stubAPI
		want domain.Event
	}{
		{"success", &stubAPI{result: ports.AddResult{StatusCode: 200}}, domain.SubmitSucceeded{}},
		{"rejected", &stubAPI{result: ports.AddResult{StatusCode: 200, Rejected: true}}, domain.SubmitRejected{}},
		{"transport", &stubAPI{err: transportErr}, domain.SubmitFailed{Err: transportErr}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			entry := domain.WorkoutEntry{Workout: "CHEST DAY", Weight: 80}
			got := NewSubmitWorkout(c.api, nil).Execute(context.Background(), entry)

			if got != c.want {
				t.Fatalf("expected %#v, got %#v", c.want, got)
			}
			calls := c.api.calls()
			if len(calls) != 1 || calls[0] != entry {
				t.Fatalf("expected exactly one call with %+v, got %+v", entry, calls)
			}
		})
	}
}

func TestSubmitWorkout_FailedKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	ev := NewSubmitWorkout(&stubAPI{err: cause}, nil).Execute(context.Background(), domain.WorkoutEntry{})

	failed, ok := ev.(domain.SubmitFailed)
	if !ok {
		t.Fatalf("expected SubmitFailed, got %#v", ev)
	}
	if !errors.Is(failed.Err, cause) {
		t.Fatalf("expected cause to be kept, got %v", failed.Err)
	}
}
