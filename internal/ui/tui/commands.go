package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/workoutlog/internal/domain"
	"github.com/aalvaropc/workoutlog/internal/usecase"
)

// cmdSubmit runs the add request off the Update loop. There is no deadline:
// the request waits for the server, as configured by http.timeout.
func cmdSubmit(uc *usecase.SubmitWorkout, entry domain.WorkoutEntry) tea.Cmd {
	return func() tea.Msg {
		if uc == nil {
			return submitDoneMsg{ev: domain.SubmitFailed{Err: errNoSubmitter}}
		}
		return submitDoneMsg{ev: uc.Execute(context.Background(), entry)}
	}
}
