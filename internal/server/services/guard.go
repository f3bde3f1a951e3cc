package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/gopassport/internal/common"
	"github.com/dmitrijs2005/gopassport/internal/passport"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/stamps"
)

// Guard enforces the per-user stamp ceiling and minimum cadence, both
// measured on attempt time against the ledger.
//
// Replayed attempts may be older than stamps already in the ledger, so both
// rules look at stamps on either side of the attempt: the ceiling holds for
// every rolling window that would contain the new stamp, and the cadence
// holds against the nearest earlier and later stamp.
type Guard struct {
	Max        int
	Window     time.Duration
	MinCadence time.Duration
}

func NewGuard(max int, window, minCadence time.Duration) *Guard {
	return &Guard{Max: max, Window: window, MinCadence: minCadence}
}

// Check returns passport.ErrRateLimited or passport.ErrTooFast (as
// *passport.CheckinError) when an attempt at time at must be refused.
func (g *Guard) Check(ctx context.Context, ledger stamps.Repository, userID string, at time.Time) error {
	if g.Max > 0 && g.Window > 0 {
		times, err := ledger.CreatedBetween(ctx, userID, at.Add(-g.Window), at.Add(g.Window))
		if err != nil {
			return err
		}
		if n := busiestWindow(times, at, g.Window); n >= g.Max {
			return passport.Reject(passport.KindRateLimited, "%d stamps within %s of this check-in", n, g.Window)
		}
	}

	if g.MinCadence > 0 {
		prev, err := ledger.MostRecent(ctx, userID, at)
		switch {
		case errors.Is(err, common.ErrorNotFound):
		case err != nil:
			return err
		default:
			if gap := at.Sub(prev.CreatedAt); gap < g.MinCadence {
				return passport.Reject(passport.KindTooFast, "retry in %s", (g.MinCadence - gap).Round(time.Second))
			}
		}

		next, err := ledger.FirstSince(ctx, userID, at)
		switch {
		case errors.Is(err, common.ErrorNotFound):
		case err != nil:
			return err
		default:
			if gap := next.CreatedAt.Sub(at); gap < g.MinCadence {
				return passport.Reject(passport.KindTooFast, "%s before a later stamp", gap.Round(time.Second))
			}
		}
	}
	return nil
}

// busiestWindow returns the most stamps found in any window (t-window, t]
// that also contains at. times is sorted ascending and limited to
// (at-window, at+window). A window's count only grows when a stamp enters it,
// so the candidate ends are at itself and every stamp after it.
func busiestWindow(times []time.Time, at time.Time, window time.Duration) int {
	ends := []time.Time{at}
	for _, t := range times {
		if t.After(at) {
			ends = append(ends, t)
		}
	}

	best, lo, hi := 0, 0, 0
	for _, end := range ends {
		for hi < len(times) && !times[hi].After(end) {
			hi++
		}
		for lo < hi && !times[lo].After(end.Add(-window)) {
			lo++
		}
		best = max(best, hi-lo)
	}
	return best
}
