// Package rewards stores route rewards, route completions and the grants a
// user has unlocked. Grants are never revoked.
package rewards

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gopassport/internal/passport"
)

type Repository interface {
	ListByRoute(ctx context.Context, routeID string) ([]passport.Reward, error)
	Save(ctx context.Context, r *passport.Reward) error
	// RecordCompletion reports whether this call recorded the completion.
	RecordCompletion(ctx context.Context, userID, routeID string, at time.Time) (bool, error)
	// Grant reports whether this call created the grant.
	Grant(ctx context.Context, g passport.Grant) (bool, error)
	ListGrants(ctx context.Context, userID string) ([]passport.Grant, error)
}
