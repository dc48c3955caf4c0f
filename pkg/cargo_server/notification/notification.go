package notification

import (
	"context"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
)

// Notifier delivers one notification to its recipient. Implementations
// report model.ErrNotification-based errors on delivery failure so callers
// can tell delivery problems from infrastructure problems.
type Notifier interface {
	Notify(ctx context.Context, n model.Notification) error
}
