package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/dmitrijs2005/gopassport/internal/client/client"
	"github.com/dmitrijs2005/gopassport/internal/client/models"
	"github.com/dmitrijs2005/gopassport/internal/passport"
)

// ErrSyncInterrupted wraps the transient error that stopped a sync pass.
// Entries from the failing one onwards stay unsynced.
var ErrSyncInterrupted = errors.New("sync interrupted")

// Failure is a queued attempt the server refused during a sync pass.
type Failure struct {
	LocalID      string
	CheckpointID string
	CapturedAt   time.Time
	// Position is the 1-based place of the entry in the pass.
	Position int
	Reason   string
	Err      error
}

type SyncResult struct {
	Synced    int
	Failed    int
	Remaining int
	Failures  []Failure
}

// SyncPending replays the user's unsynced attempts oldest first.
func (s *CheckinService) SyncPending(ctx context.Context, userID string) (SyncResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncLocked(ctx, userID)
}

func (s *CheckinService) syncLocked(ctx context.Context, userID string) (SyncResult, error) {
	var res SyncResult

	items, err := s.queue.ListUnsynced(ctx, userID)
	if err != nil {
		return res, fmt.Errorf("load pending: %w", err)
	}
	if len(items) == 0 {
		return res, nil
	}

	for i, it := range items {
		_, err := s.client.CheckIn(ctx, replayAttempt(it))
		switch {
		case err == nil:
			if err := s.queue.MarkSynced(ctx, it.LocalID); err != nil {
				res.Remaining = len(items) - i
				return res, err
			}
			res.Synced++

		case errors.Is(err, client.ErrUnauthorized):
			res.Remaining = len(items) - i
			return res, err

		case isTerminal(err):
			reason := failureReason(err)
			if err := s.queue.MarkFailed(ctx, it.LocalID, reason); err != nil {
				res.Remaining = len(items) - i
				return res, err
			}
			res.Failed++
			res.Failures = append(res.Failures, Failure{
				LocalID:      it.LocalID,
				CheckpointID: it.CheckpointID,
				CapturedAt:   it.CapturedAt,
				Position:     i + 1,
				Reason:       reason,
				Err:          err,
			})
			s.logger.Info(ctx, "queued check-in refused",
				"local_id", it.LocalID, "checkpoint_id", it.CheckpointID, "reason", reason)

		default:
			res.Remaining = len(items) - i
			s.logger.Warn(ctx, "sync pass stopped", "local_id", it.LocalID, "remaining", res.Remaining, "error", err)
			return res, fmt.Errorf("%w: %w", ErrSyncInterrupted, err)
		}
	}

	if err := s.meta.SetLastSyncAt(ctx, s.now()); err != nil {
		s.logger.Warn(ctx, "record sync time", "error", err)
	}
	if n, err := s.queue.PurgeSyncedOlderThan(ctx, s.retention); err != nil {
		s.logger.Warn(ctx, "purge synced check-ins", "error", err)
	} else if n > 0 {
		s.logger.Debug(ctx, "purged synced check-ins", "count", n)
	}

	s.logger.Info(ctx, "sync pass finished", "synced", res.Synced, "failed", res.Failed)
	return res, nil
}

// replayAttempt carries the capture time so the server judges the attempt
// as of when it happened.
func replayAttempt(it *models.PendingCheckin) passport.Attempt {
	a := liveAttempt(it)
	a.CapturedAt = it.CapturedAt
	return a
}

// isTerminal reports whether retrying err can never succeed.
func isTerminal(err error) bool {
	var ce *passport.CheckinError
	if errors.As(err, &ce) {
		return ce.Kind.Terminal()
	}
	return errors.Is(err, client.ErrInvalidRequest)
}

func failureReason(err error) string {
	var ce *passport.CheckinError
	if errors.As(err, &ce) {
		return string(ce.Kind)
	}
	return err.Error()
}

// WatchConnectivity starts a background sync with exponential backoff each
// time the device comes back online. Results go to report. The returned
// function stops watching and waits for a sync in flight, so cancel ctx
// first to cut a retry loop short.
func (s *CheckinService) WatchConnectivity(ctx context.Context, userID string, report func(SyncResult, error)) (stop func()) {
	var (
		running atomic.Bool
		mu      sync.Mutex
		stopped bool
		wg      sync.WaitGroup
	)

	unsubscribe := s.conn.Subscribe(func(online bool) {
		if !online {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if stopped || !running.CompareAndSwap(false, true) {
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer running.Store(false)
			res, err := s.syncWithRetry(ctx, userID)
			if report != nil {
				report(res, err)
			}
		}()
	})

	return func() {
		unsubscribe()
		mu.Lock()
		stopped = true
		mu.Unlock()
		wg.Wait()
	}
}

func (s *CheckinService) syncWithRetry(ctx context.Context, userID string) (SyncResult, error) {
	var total SyncResult

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.backoffInitial
	b.MaxElapsedTime = s.backoffMax

	operation := func() error {
		res, err := s.SyncPending(ctx, userID)
		total.Synced += res.Synced
		total.Failed += res.Failed
		total.Failures = append(total.Failures, res.Failures...)
		total.Remaining = res.Remaining
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrSyncInterrupted) {
			return err
		}
		return backoff.Permanent(err)
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), func(err error, d time.Duration) {
		s.logger.Debug(ctx, "sync retry scheduled", "in", d, "error", err)
	})
	return total, err
}
