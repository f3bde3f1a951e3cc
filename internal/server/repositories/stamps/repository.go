// Package stamps is the append-only ledger of accepted check-ins. At most one
// stamp exists per (user, checkpoint); the unique constraint is the
// authoritative guard against duplicates.
package stamps

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gopassport/internal/passport"
)

type Repository interface {
	Exists(ctx context.Context, userID, checkpointID string) (bool, error)
	// CreatedBetween lists stamp times with from < created_at < to, oldest
	// first.
	CreatedBetween(ctx context.Context, userID string, from, to time.Time) ([]time.Time, error)
	// MostRecent returns the latest stamp with created_at <= asOf or
	// common.ErrorNotFound.
	MostRecent(ctx context.Context, userID string, asOf time.Time) (*passport.Stamp, error)
	// FirstSince returns the earliest stamp with created_at >= from or
	// common.ErrorNotFound.
	FirstSince(ctx context.Context, userID string, from time.Time) (*passport.Stamp, error)
	// Append stores a new stamp or returns common.ErrDuplicateStamp.
	Append(ctx context.Context, s *passport.Stamp) error
	StampedCheckpoints(ctx context.Context, userID, routeID string) (map[string]time.Time, error)
	ListByUser(ctx context.Context, userID string) ([]passport.Stamp, error)
}
