package usecase

import (
	"context"
	"sync"

	"github.com/aalvaropc/workoutlog/internal/domain"
	"github.com/aalvaropc/workoutlog/internal/ports"
)

// stubAPI returns a fixed result/error pair and records every entry it receives.
type stubAPI struct {
	mu      sync.Mutex
	result  ports.AddResult
	err     error
	entries []domain.WorkoutEntry
	// release, when set, blocks each call until it is closed.
	release chan struct{}
	started chan struct{}
}

func (s *stubAPI) AddWorkout(_ context.Context, entry domain.WorkoutEntry) (ports.AddResult, error) {
	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	if s.started != nil {
		s.started <- struct{}{}
	}
	if s.release != nil {
		<-s.release
	}
	return s.result, s.err
}

func (s *stubAPI) calls() []domain.WorkoutEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.WorkoutEntry(nil), s.entries...)
}

type notification struct {
	kind    domain.NotificationKind
	message string
}

type recordingNotifier struct {
	mu  sync.Mutex
	got []notification
}

func (n *recordingNotifier) Notify(kind domain.NotificationKind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.got = append(n.got, notification{kind: kind, message: message})
}

type recordingNavigator struct {
	mu    sync.Mutex
	paths []string
}

func (n *recordingNavigator) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
}

var (
	_ ports.WorkoutAPI = (*stubAPI)(nil)
	_ ports.Notifier   = (*recordingNotifier)(nil)
	_ ports.Navigator  = (*recordingNavigator)(nil)
)
