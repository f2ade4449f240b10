package ports

import "github.com/aalvaropc/workoutlog/internal/domain"

// Notifier displays transient messages. Calls are fire-and-forget.
type Notifier interface {
	Notify(kind domain.NotificationKind, message string)
}
