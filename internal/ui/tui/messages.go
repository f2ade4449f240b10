package tui

import "github.com/aalvaropc/workoutlog/internal/domain"

// submitDoneMsg carries the outcome of the add request back into Update.
type submitDoneMsg struct {
	ev domain.Event
}
