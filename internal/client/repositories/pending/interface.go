package pending

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gopassport/internal/client/models"
)

// Repository is the device-local pending check-in queue.
type Repository interface {
	// Enqueue stores an attempt as unsynced and returns its local id.
	Enqueue(ctx context.Context, c *models.PendingCheckin) (string, error)

	// ListUnsynced returns a user's unsynced attempts oldest first.
	ListUnsynced(ctx context.Context, userID string) ([]*models.PendingCheckin, error)

	// MarkSynced moves an unsynced entry to synced.
	MarkSynced(ctx context.Context, localID string) error

	// MarkFailed moves an unsynced entry to failed with the server's reason.
	MarkFailed(ctx context.Context, localID, reason string) error

	// PurgeSyncedOlderThan deletes synced entries last touched before now-d.
	PurgeSyncedOlderThan(ctx context.Context, d time.Duration) (int64, error)

	// ListFailed returns a user's failed attempts, newest first.
	ListFailed(ctx context.Context, userID string) ([]*models.PendingCheckin, error)

	// Dismiss removes a failed entry once the user has seen it.
	Dismiss(ctx context.Context, localID string) error

	CountUnsynced(ctx context.Context, userID string) (int, error)
}
