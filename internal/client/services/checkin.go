// Package services implements the device-side check-in flow: live attempts,
// the offline queue and the sync pass that replays it.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gopassport/internal/client/client"
	"github.com/dmitrijs2005/gopassport/internal/client/models"
	"github.com/dmitrijs2005/gopassport/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gopassport/internal/client/repositories/pending"
	"github.com/dmitrijs2005/gopassport/internal/geo"
	"github.com/dmitrijs2005/gopassport/internal/logging"
	"github.com/dmitrijs2005/gopassport/internal/passport"
)

// Connectivity is the part of connectivity.Monitor the service relies on.
type Connectivity interface {
	Online() bool
	Set(online bool)
	Subscribe(fn func(online bool)) (unsubscribe func())
}

// CheckinResult describes what happened to a live attempt. Exactly one of
// Verdict and Queued is set.
type CheckinResult struct {
	Verdict *passport.Verdict
	Queued  bool
	LocalID string
	// Drained reports the sync pass run before the attempt was sent.
	Drained SyncResult
}

// Status is a snapshot for the status command.
type Status struct {
	Online     bool
	Unsynced   int
	LastSyncAt time.Time
}

// CheckinService owns the device's check-in flow. Live attempts and sync
// passes never overlap.
type CheckinService struct {
	mu sync.Mutex

	client client.Client
	queue  pending.Repository
	meta   metadata.Repository
	conn   Connectivity
	logger logging.Logger

	retention      time.Duration
	backoffInitial time.Duration
	backoffMax     time.Duration
	now            func() time.Time
}

func NewCheckinService(c client.Client, repos *client.Repositories, conn Connectivity, logger logging.Logger,
	retention, backoffMax time.Duration) *CheckinService {
	return &CheckinService{
		client:         c,
		queue:          repos.Pending,
		meta:           repos.Metadata,
		conn:           conn,
		logger:         logger.With("module", "checkin"),
		retention:      retention,
		backoffInitial: time.Second,
		backoffMax:     backoffMax,
		now:            time.Now,
	}
}

// CheckIn submits an attempt. Offline, it is queued. Online, older queued
// attempts are replayed first so the server sees them in capture order; if
// that pass is interrupted, or the call itself fails transiently, the
// attempt is queued as well. Server rejections are returned as
// *passport.CheckinError and nothing is queued.
func (s *CheckinService) CheckIn(ctx context.Context, a *models.PendingCheckin) (*CheckinResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.CapturedAt.IsZero() {
		a.CapturedAt = s.now()
	}

	if !s.conn.Online() {
		return s.enqueue(ctx, a, "offline")
	}

	drained, err := s.syncLocked(ctx, a.UserID)
	if err != nil {
		if errors.Is(err, ErrSyncInterrupted) {
			res, qerr := s.enqueue(ctx, a, "queue not drained")
			if res != nil {
				res.Drained = drained
			}
			return res, qerr
		}
		return nil, err
	}

	verdict, err := s.client.CheckIn(ctx, liveAttempt(a))
	if err != nil {
		if isTerminal(err) || errors.Is(err, client.ErrUnauthorized) {
			return nil, err
		}
		if errors.Is(err, client.ErrUnavailable) {
			s.conn.Set(false)
		}
		s.logger.Warn(ctx, "check-in not confirmed", "checkpoint_id", a.CheckpointID, "error", err)
		res, qerr := s.enqueue(ctx, a, "not confirmed")
		if res != nil {
			res.Drained = drained
		}
		return res, qerr
	}

	return &CheckinResult{Verdict: verdict, Drained: drained}, nil
}

func (s *CheckinService) enqueue(ctx context.Context, a *models.PendingCheckin, why string) (*CheckinResult, error) {
	id, err := s.queue.Enqueue(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("queue check-in: %w", err)
	}
	s.logger.Info(ctx, "check-in queued", "local_id", id, "checkpoint_id", a.CheckpointID, "why", why)
	return &CheckinResult{Queued: true, LocalID: id}, nil
}

// liveAttempt leaves CapturedAt zero so the server stamps with its own clock.
func liveAttempt(a *models.PendingCheckin) passport.Attempt {
	return passport.Attempt{
		CheckpointID: a.CheckpointID,
		Position: geo.Position{
			Point:     geo.Point{Lat: a.Latitude, Lng: a.Longitude},
			AccuracyM: a.AccuracyM,
		},
		PartnerCode: a.PartnerCode,
		PhotoRef:    a.PhotoRef,
	}
}

func (s *CheckinService) Pending(ctx context.Context, userID string) ([]*models.PendingCheckin, error) {
	return s.queue.ListUnsynced(ctx, userID)
}

func (s *CheckinService) Failed(ctx context.Context, userID string) ([]*models.PendingCheckin, error) {
	return s.queue.ListFailed(ctx, userID)
}

func (s *CheckinService) Dismiss(ctx context.Context, localID string) error {
	return s.queue.Dismiss(ctx, localID)
}

// Purge drops synced entries older than the retention period.
func (s *CheckinService) Purge(ctx context.Context) (int64, error) {
	return s.queue.PurgeSyncedOlderThan(ctx, s.retention)
}

func (s *CheckinService) Status(ctx context.Context, userID string) (Status, error) {
	n, err := s.queue.CountUnsynced(ctx, userID)
	if err != nil {
		return Status{}, err
	}
	last, err := s.meta.LastSyncAt(ctx)
	if err != nil {
		return Status{}, err
	}
	return Status{Online: s.conn.Online(), Unsynced: n, LastSyncAt: last}, nil
}
