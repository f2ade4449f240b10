package cli

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/aalvaropc/workoutlog/internal/domain"
	"github.com/aalvaropc/workoutlog/internal/ports"
)

// streamNotifier prints success messages to out and errors to errOut.
type streamNotifier struct {
	out    io.Writer
	errOut io.Writer
}

func (n *streamNotifier) Notify(kind domain.NotificationKind, message string) {
	if kind == domain.NotifyError {
		fmt.Fprintf(n.errOut, "✗ %s\n", message)
		return
	}
	fmt.Fprintf(n.out, "✓ %s\n", message)
}

// recordingNavigator has no screens to switch; it remembers the last route.
type recordingNavigator struct {
	mu   sync.Mutex
	path string
	log  *slog.Logger
}

func (n *recordingNavigator) Navigate(path string) {
	n.mu.Lock()
	n.path = path
	n.mu.Unlock()

	if n.log != nil {
		n.log.Debug("navigate", "path", path)
	}
}

func (n *recordingNavigator) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.path
}

var (
	_ ports.Notifier  = (*streamNotifier)(nil)
	_ ports.Navigator = (*recordingNavigator)(nil)
)
