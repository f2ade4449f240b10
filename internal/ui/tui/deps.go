package tui

import (
	"log/slog"

	"github.com/aalvaropc/workoutlog/internal/usecase"
)

type Deps struct {
	Submit *usecase.SubmitWorkout

	// ServerURL is shown on the home screen.
	ServerURL string
	// ConfigErr is the error hit while loading workoutlog.yaml, if any.
	ConfigErr error

	Logger *slog.Logger
	Debug  bool
	// LogPath is shown on the home screen in debug mode.
	LogPath string
}
