package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gopassport/internal/dbx"
	"github.com/dmitrijs2005/gopassport/internal/passport"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/repomanager"
)

// RewardEngine grants a route's rewards once per user when the route is
// complete. Re-running it after completion grants nothing new.
type RewardEngine struct {
	db       dbx.DBTX
	repos    repomanager.RepositoryManager
	progress *ProgressTracker
	now      func() time.Time
}

func NewRewardEngine(db dbx.DBTX, repos repomanager.RepositoryManager, progress *ProgressTracker) *RewardEngine {
	return &RewardEngine{db: db, repos: repos, progress: progress, now: time.Now}
}

// UnlockRewards must run inside the transaction that appended the last stamp
// so completion and grants commit together. Only rewards granted by this call
// are returned.
func (e *RewardEngine) UnlockRewards(ctx context.Context, db dbx.DBTX, userID, routeID string) ([]passport.Reward, error) {
	p, err := e.progress.Compute(ctx, db, userID, routeID)
	if err != nil {
		return nil, err
	}
	if !p.Complete() {
		return nil, nil
	}

	now := e.now().UTC()
	rewardsRepo := e.repos.Rewards(db)

	first, err := rewardsRepo.RecordCompletion(ctx, userID, routeID, now)
	if err != nil {
		return nil, err
	}
	if first {
		if err := e.repos.Passports(db).IncrementCompletedRoutes(ctx, userID); err != nil {
			return nil, err
		}
	}

	available, err := rewardsRepo.ListByRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}

	var granted []passport.Reward
	for _, rw := range available {
		ok, err := rewardsRepo.Grant(ctx, passport.Grant{UserID: userID, RouteID: routeID, RewardID: rw.ID, GrantedAt: now})
		if err != nil {
			return nil, err
		}
		if ok {
			granted = append(granted, rw)
		}
	}
	return granted, nil
}

func (e *RewardEngine) Granted(ctx context.Context, userID string) ([]passport.Grant, error) {
	return e.repos.Rewards(e.db).ListGrants(ctx, userID)
}
