// Package routes reads the published route catalogue. Routes and their
// checkpoints are written by the content pipeline (Save is used for seeding)
// and never mutated by check-ins.
package routes

import (
	"context"

	"github.com/dmitrijs2005/gopassport/internal/passport"
)

type Repository interface {
	// GetRoute returns the route without its checkpoints.
	GetRoute(ctx context.Context, routeID string) (*passport.Route, error)
	GetCheckpoint(ctx context.Context, checkpointID string) (*passport.Checkpoint, error)
	// FragmentCheckpoints lists fragment-bearing checkpoints ordered by
	// fragment index.
	FragmentCheckpoints(ctx context.Context, routeID string) ([]passport.Checkpoint, error)
	// Save upserts a route together with its checkpoints.
	Save(ctx context.Context, r *passport.Route) error
}
