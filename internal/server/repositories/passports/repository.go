// Package passports stores one cumulative passport per user.
package passports

import (
	"context"

	"github.com/dmitrijs2005/gopassport/internal/passport"
)

type Repository interface {
	// Create inserts p unless a passport with the same user or number
	// already exists; it reports whether a row was inserted.
	Create(ctx context.Context, p *passport.Passport) (bool, error)
	Get(ctx context.Context, userID string) (*passport.Passport, error)
	// GetForUpdate reads the passport and locks its row until the
	// surrounding transaction ends.
	GetForUpdate(ctx context.Context, userID string) (*passport.Passport, error)
	AddStamp(ctx context.Context, userID string, points int) error
	IncrementCompletedRoutes(ctx context.Context, userID string) error
}
