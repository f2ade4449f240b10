package configfile

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/workoutlog/internal/domain"
	"github.com/aalvaropc/workoutlog/internal/ports"
)

// Finder locates a workoutlog workspace root by searching for workoutlog.yaml upward.
type Finder struct {
	ConfigFile string // defaults to "workoutlog.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: FileName}
}

var _ ports.ConfigLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "configfile.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "configfile.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if _, err := os.Stat(cfgPath); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "configfile.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
