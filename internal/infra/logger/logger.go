package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Dir is the log directory relative to the workspace root.
var Dir = filepath.Join(".workoutlog", "logs")

const FileName = "workoutlog.log"

type Config struct {
	Root  string
	Debug bool
}

var (
	mu      sync.RWMutex
	global  = Discard()
	logFile *os.File
	logPath string
)

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// Setup points the global logger at <root>/.workoutlog/logs/workoutlog.log.
// On error the global logger discards and the returned cleanup is nil.
func Setup(cfg Config) (func() error, error) {
	root := cfg.Root
	if root == "" {
		root = "."
	}
	path := filepath.Join(filepath.Clean(root), Dir, FileName)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		reset()
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		reset()
		return nil, err
	}

	l := slog.New(newHandler(f, cfg.Debug))

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	mu.Unlock()

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug, "pid", os.Getpid())

	return func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		global = Discard()
		logFile = nil
		logPath = ""
		return cerr
	}, nil
}

func newHandler(w io.Writer, debug bool) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}
	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	return slog.NewJSONHandler(w, opts)
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path is the active log file, or "" when logging is discarded.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	global = Discard()
	logFile = nil
	logPath = ""
}
