package tui

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/workoutlog/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

var reField = regexp.MustCompile(`\bfield\s+([a-z_.]+):`)

var errNoSubmitter = &domain.OpError{
	Op:   "tui.submit",
	Kind: domain.KindInvalidConfig,
	Err:  errors.New("no submitter configured"),
}

func (m model) logger() *slog.Logger {
	if m.deps.Logger == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return m.deps.Logger
}

// userMessage turns an error into a one-line message for the home banner.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if strings.Contains(oe.Op, "configfile") {
				return "No workoutlog.yaml found (using defaults)"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if field := extractField(err.Error()); field != "" {
				return "Invalid " + field + " in " + base
			}
			return "Invalid config"

		case domain.KindTransport:
			return "Server unreachable"

		default:
			return "Unexpected error (see logs)"
		}
	}

	return "Unexpected error (see logs)"
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

func extractField(s string) string {
	m := reField.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
