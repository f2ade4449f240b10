package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/workoutlog/internal/domain"
	"github.com/aalvaropc/workoutlog/internal/infra/configfile"
)

type workspaceCtx struct {
	// root is empty when no workoutlog.yaml was found.
	root string
	cfg  domain.Config
	// err is the error hit while locating or loading the config; cfg holds defaults then.
	err error
}

// loadWorkspace never fails outright: without a usable workoutlog.yaml the defaults apply
// and the reason is kept in err for the caller to decide.
func loadWorkspace(workspaceFlag string) *workspaceCtx {
	ws := &workspaceCtx{cfg: domain.DefaultConfig()}

	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		ws.err = err
		return ws
	}
	ws.root = root

	ws.cfg, ws.err = configfile.LoadConfig(root)
	if ws.err != nil {
		ws.cfg = domain.DefaultConfig()
	}
	return ws
}

// logRoot is where .workoutlog/logs lives: the workspace root, or the working directory.
func (ws *workspaceCtx) logRoot() string {
	if ws.root != "" {
		return ws.root
	}
	return workingDir()
}

// strictConfig returns the config, failing only when a present workoutlog.yaml is invalid.
func (ws *workspaceCtx) strictConfig() (domain.Config, error) {
	if ws.err != nil && !configfile.IsMissing(ws.err) {
		return ws.cfg, ws.err
	}
	return ws.cfg, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	return configfile.NewFinder().FindRoot(workingDir())
}
