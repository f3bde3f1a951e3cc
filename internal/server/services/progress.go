package services

import (
	"context"
	"math"

	"github.com/dmitrijs2005/gopassport/internal/dbx"
	"github.com/dmitrijs2005/gopassport/internal/passport"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/repomanager"
)

// ProgressTracker derives route completion from the stamp ledger. It never
// writes.
type ProgressTracker struct {
	db    dbx.DBTX
	repos repomanager.RepositoryManager
}

func NewProgressTracker(db dbx.DBTX, repos repomanager.RepositoryManager) *ProgressTracker {
	return &ProgressTracker{db: db, repos: repos}
}

// GetProgress returns common.ErrorNotFound for an unknown route.
func (p *ProgressTracker) GetProgress(ctx context.Context, userID, routeID string) (*passport.Progress, error) {
	if _, err := p.repos.Routes(p.db).GetRoute(ctx, routeID); err != nil {
		return nil, err
	}
	return p.Compute(ctx, p.db, userID, routeID)
}

// Compute calculates progress using db, which may be a transaction handle.
func (p *ProgressTracker) Compute(ctx context.Context, db dbx.DBTX, userID, routeID string) (*passport.Progress, error) {
	fragments, err := p.repos.Routes(db).FragmentCheckpoints(ctx, routeID)
	if err != nil {
		return nil, err
	}
	stamped, err := p.repos.Stamps(db).StampedCheckpoints(ctx, userID, routeID)
	if err != nil {
		return nil, err
	}

	progress := &passport.Progress{
		RouteID:        routeID,
		TotalFragments: len(fragments),
		Fragments:      make([]passport.FragmentProgress, 0, len(fragments)),
	}
	for _, cp := range fragments {
		fp := passport.FragmentProgress{CheckpointID: cp.ID, FragmentIndex: *cp.FragmentIndex}
		if at, ok := stamped[cp.ID]; ok {
			collectedAt := at
			fp.Collected = true
			fp.CollectedAt = &collectedAt
			progress.CollectedFragments++
		}
		progress.Fragments = append(progress.Fragments, fp)
	}
	progress.CompletionPercentage = Percentage(progress.CollectedFragments, progress.TotalFragments)
	return progress, nil
}

// Percentage rounds collected/total to the nearest whole percent but only
// reports 100 when every fragment is collected. A route without fragments
// stays at 0.
func Percentage(collected, total int) int {
	if total <= 0 {
		return 0
	}
	if collected >= total {
		return 100
	}
	pct := int(math.Round(float64(collected) * 100 / float64(total)))
	return min(pct, 99)
}
