package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aalvaropc/workoutlog/internal/domain"
	"github.com/aalvaropc/workoutlog/internal/ports"
)

func newTestForm(api *stubAPI) (*Form, *recordingNotifier, *recordingNavigator) {
	notifier := &recordingNotifier{}
	navigator := &recordingNavigator{}
	return NewForm(NewSubmitWorkout(api, nil), notifier, navigator), notifier, navigator
}

func fill(t *testing.T, f *Form, workout string, weights ...string) {
	t.Helper()
	ctx := context.Background()
	if err := f.Dispatch(ctx, domain.WorkoutChanged{Text: workout}); err != nil {
		t.Fatalf("WorkoutChanged: %v", err)
	}
	for _, w := range weights {
		if err := f.Dispatch(ctx, domain.WeightChanged{Raw: w}); err != nil {
			t.Fatalf("WeightChanged: %v", err)
		}
	}
}

func TestForm_SuccessNavigatesHomeAndNotifies(t *testing.T) {
	api := &stubAPI{result: ports.AddResult{StatusCode: 200}}
	f, notifier, navigator := newTestForm(api)

	fill(t, f, "CHEST DAY", "80")
	if err := f.Dispatch(context.Background(), domain.SubmitRequested{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := api.calls()
	if len(calls) != 1 || calls[0] != (domain.WorkoutEntry{Workout: "CHEST DAY", Weight: 80}) {
		t.Fatalf("expected one call with CHEST DAY/80, got %+v", calls)
	}
	if len(navigator.paths) != 1 || navigator.paths[0] != domain.HomeRoute {
		t.Fatalf("expected navigation to /, got %v", navigator.paths)
	}
	want := []notification{{domain.NotifySuccess, domain.MsgWorkoutAdded}}
	if len(notifier.got) != 1 || notifier.got[0] != want[0] {
		t.Fatalf("expected %v, got %v", want, notifier.got)
	}
	if f.State().InFlight {
		t.Fatalf("expected flag cleared")
	}
}

func TestForm_RejectedNotifiesWithoutNavigation(t *testing.T) {
	api := &stubAPI{result: ports.AddResult{StatusCode: 200, Rejected: true}}
	f, notifier, navigator := newTestForm(api)

	fill(t, f, "LEG DAY", "120")
	if err := f.Dispatch(context.Background(), domain.SubmitRequested{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(navigator.paths) != 0 {
		t.Fatalf("expected no navigation, got %v", navigator.paths)
	}
	if len(notifier.got) != 1 || notifier.got[0] != (notification{domain.NotifyError, domain.MsgRejected}) {
		t.Fatalf("expected rejection notice, got %v", notifier.got)
	}
	if f.State().InFlight {
		t.Fatalf("expected flag cleared")
	}
}

func TestForm_TransportFailureNotifiesOnceAndResetsFlag(t *testing.T) {
	api := &stubAPI{err: errors.New("dial tcp: connection refused")}
	f, notifier, navigator := newTestForm(api)

	fill(t, f, "BACK", "60")
	if err := f.Dispatch(context.Background(), domain.SubmitRequested{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(navigator.paths) != 0 {
		t.Fatalf("expected no navigation, got %v", navigator.paths)
	}
	if len(notifier.got) != 1 || notifier.got[0] != (notification{domain.NotifyError, domain.MsgTransportError}) {
		t.Fatalf("expected one transport notice, got %v", notifier.got)
	}
	if f.State().InFlight {
		t.Fatalf("expected flag reset after transport failure")
	}
	if f.State().ButtonLabel() != domain.ButtonIdle {
		t.Fatalf("expected idle label, got %q", f.State().ButtonLabel())
	}
}

func TestForm_InvalidWeightEditKeepsLastValid(t *testing.T) {
	api := &stubAPI{}
	f, _, _ := newTestForm(api)

	fill(t, f, "CHEST DAY", "80", "abc")
	if err := f.Dispatch(context.Background(), domain.SubmitRequested{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := api.calls()
	if len(calls) != 1 || calls[0].Weight != 80 {
		t.Fatalf("expected submitted weight 80, got %+v", calls)
	}
}

func TestForm_MissingFieldBlocksSubmit(t *testing.T) {
	api := &stubAPI{}
	f, notifier, navigator := newTestForm(api)

	fill(t, f, "CHEST DAY", "abc")
	err := f.Dispatch(context.Background(), domain.SubmitRequested{})
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if len(api.calls()) != 0 {
		t.Fatalf("expected no request")
	}
	if len(notifier.got) != 0 || len(navigator.paths) != 0 {
		t.Fatalf("expected no side effects")
	}
}

func TestForm_OverlappingSubmitsSendOneRequest(t *testing.T) {
	api := &stubAPI{
		result:  ports.AddResult{StatusCode: 200},
		release: make(chan struct{}),
		started: make(chan struct{}, 2),
	}
	f, notifier, _ := newTestForm(api)
	fill(t, f, "CHEST DAY", "80")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = f.Dispatch(context.Background(), domain.SubmitRequested{})
	}()

	<-api.started
	if !f.State().InFlight {
		t.Fatalf("expected in-flight while request is pending")
	}
	if f.State().ButtonLabel() != domain.ButtonInFlight {
		t.Fatalf("expected %q while pending", domain.ButtonInFlight)
	}

	if err := f.Dispatch(context.Background(), domain.SubmitRequested{}); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	close(api.release)
	wg.Wait()

	if n := len(api.calls()); n != 1 {
		t.Fatalf("expected exactly one request, got %d", n)
	}
	if len(notifier.got) != 1 {
		t.Fatalf("expected one notification, got %v", notifier.got)
	}
}

func TestForm_NilCollaborators(t *testing.T) {
	f := NewForm(NewSubmitWorkout(&stubAPI{}, nil), nil, nil)
	fill(t, f, "ARMS", "15")
	if err := f.Dispatch(context.Background(), domain.SubmitRequested{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
