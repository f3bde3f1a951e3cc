// Package metadata stores small device-level facts next to the pending queue,
// such as when the last sync pass finished.
package metadata

import (
	"context"
	"time"
)

// Well-known keys.
const (
	KeyLastSyncAt = "last_sync_at"
)

type Repository interface {
	// Get returns the value for key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)

	// LastSyncAt returns the zero time if no sync pass has finished yet.
	LastSyncAt(ctx context.Context) (time.Time, error)
	SetLastSyncAt(ctx context.Context, t time.Time) error
}
