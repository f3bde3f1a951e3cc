package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gopassport/internal/common"
	"github.com/dmitrijs2005/gopassport/internal/dbx"
	"github.com/dmitrijs2005/gopassport/internal/geo"
	"github.com/dmitrijs2005/gopassport/internal/logging"
	"github.com/dmitrijs2005/gopassport/internal/passport"
	"github.com/dmitrijs2005/gopassport/internal/server/events"
	"github.com/dmitrijs2005/gopassport/internal/server/metrics"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/repomanager"
)

const outcomeAccepted = "accepted"

// CheckinService decides whether an attempt earns a stamp. Everything from
// the passport lock to the reward grants happens in one transaction, so a
// refused or failed attempt leaves no trace in the ledger.
type CheckinService struct {
	db           dbx.DBTX
	tx           dbx.TxRunner
	repos        repomanager.RepositoryManager
	guard        *Guard
	passports    *PassportService
	progress     *ProgressTracker
	rewards      *RewardEngine
	publisher    events.Publisher
	metrics      metrics.Recorder
	logger       logging.Logger
	maxReplayAge time.Duration

	now   func() time.Time
	newID func() string
}

func NewCheckinService(db dbx.DBTX, tx dbx.TxRunner, repos repomanager.RepositoryManager, guard *Guard,
	passports *PassportService, publisher events.Publisher, recorder metrics.Recorder, logger logging.Logger,
	maxReplayAge time.Duration) *CheckinService {

	progress := NewProgressTracker(db, repos)
	return &CheckinService{
		db:           db,
		tx:           tx,
		repos:        repos,
		guard:        guard,
		passports:    passports,
		progress:     progress,
		rewards:      NewRewardEngine(db, repos, progress),
		publisher:    publisher,
		metrics:      recorder,
		logger:       logger,
		maxReplayAge: maxReplayAge,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// AttemptTime is the instant an attempt is judged at: the device capture
// time when it is plausible, otherwise the server clock.
func (s *CheckinService) AttemptTime(captured time.Time) time.Time {
	now := s.now().UTC()
	if captured.IsZero() || captured.After(now) {
		return now
	}
	if s.maxReplayAge > 0 && now.Sub(captured) > s.maxReplayAge {
		return now
	}
	return captured.UTC()
}

// CheckIn evaluates a. Refusals are returned as *passport.CheckinError.
func (s *CheckinService) CheckIn(ctx context.Context, a passport.Attempt) (verdict *passport.Verdict, err error) {
	started := s.now()
	defer func() {
		s.metrics.ObserveCheckin(outcome(err), s.now().Sub(started))
	}()

	at := s.AttemptTime(a.CapturedAt)

	cp, route, err := s.resolve(ctx, a.CheckpointID)
	if err != nil {
		s.logRefusal(ctx, a, err)
		return nil, err
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		v, err := s.evaluate(ctx, tx, a, cp, route, at)
		if err != nil {
			return err
		}
		verdict = v
		return nil
	})
	if err != nil {
		s.logRefusal(ctx, a, err)
		return nil, err
	}

	s.metrics.RewardsGranted(len(verdict.Rewards))
	s.publish(ctx, cp, verdict)

	s.logger.Info(ctx, "stamp issued",
		"user_id", a.UserID,
		"checkpoint_id", cp.ID,
		"route_id", route.ID,
		"points", verdict.Stamp.Points,
		"completion", verdict.Progress.CompletionPercentage,
		"rewards", len(verdict.Rewards),
	)
	return verdict, nil
}

func (s *CheckinService) resolve(ctx context.Context, checkpointID string) (*passport.Checkpoint, *passport.Route, error) {
	repo := s.repos.Routes(s.db)

	cp, err := repo.GetCheckpoint(ctx, checkpointID)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil, passport.Reject(passport.KindCheckpointNotFound, "%s", checkpointID)
	}
	if err != nil {
		return nil, nil, err
	}

	route, err := repo.GetRoute(ctx, cp.RouteID)
	if errors.Is(err, common.ErrorNotFound) || (err == nil && !route.Active) {
		return nil, nil, passport.Reject(passport.KindCheckpointNotFound, "%s", checkpointID)
	}
	if err != nil {
		return nil, nil, err
	}
	return cp, route, nil
}

func (s *CheckinService) evaluate(ctx context.Context, tx dbx.DBTX, a passport.Attempt,
	cp *passport.Checkpoint, route *passport.Route, at time.Time) (*passport.Verdict, error) {

	if _, err := s.passports.Ensure(ctx, tx, a.UserID); err != nil {
		return nil, err
	}
	if _, err := s.repos.Passports(tx).GetForUpdate(ctx, a.UserID); err != nil {
		return nil, err
	}

	ledger := s.repos.Stamps(tx)

	if err := s.guard.Check(ctx, ledger, a.UserID, at); err != nil {
		return nil, err
	}

	exists, err := ledger.Exists(ctx, a.UserID, cp.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, passport.Reject(passport.KindAlreadyCheckedIn, "%s", cp.ID)
	}

	if err := validate(cp, a); err != nil {
		return nil, err
	}

	points, err := passport.PointsFor(route.Difficulty)
	if err != nil {
		return nil, err
	}

	stamp := &passport.Stamp{
		ID:           s.newID(),
		UserID:       a.UserID,
		CheckpointID: cp.ID,
		RouteID:      route.ID,
		Position:     a.Position,
		PhotoRef:     a.PhotoRef,
		Points:       points,
		CreatedAt:    at,
		RecordedAt:   s.now().UTC(),
	}
	if err := ledger.Append(ctx, stamp); err != nil {
		if errors.Is(err, common.ErrDuplicateStamp) {
			return nil, passport.Reject(passport.KindAlreadyCheckedIn, "%s", cp.ID)
		}
		return nil, err
	}

	if err := s.repos.Passports(tx).AddStamp(ctx, a.UserID, points); err != nil {
		return nil, err
	}

	progress, err := s.progress.Compute(ctx, tx, a.UserID, route.ID)
	if err != nil {
		return nil, err
	}

	verdict := &passport.Verdict{
		Stamp:          stamp,
		Progress:       *progress,
		RouteCompleted: progress.Complete(),
	}
	if verdict.RouteCompleted {
		if verdict.Rewards, err = s.rewards.UnlockRewards(ctx, tx, a.UserID, route.ID); err != nil {
			return nil, err
		}
	}
	return verdict, nil
}

// validate applies the checkpoint's validation mode. In mixed mode both the
// geofence and the partner code must pass; the geofence is checked first.
func validate(cp *passport.Checkpoint, a passport.Attempt) error {
	if cp.Mode.NeedsGeofence() {
		if !a.Position.Valid() {
			return passport.Reject(passport.KindOutOfRange, "invalid coordinates")
		}
		if cp.Center == nil || !geo.Within(*cp.Center, cp.RadiusM, a.Position) {
			return passport.Reject(passport.KindOutOfRange, "")
		}
	}

	if cp.Mode.NeedsCode() {
		code := passport.NormalizeCode(a.PartnerCode)
		if code == "" {
			return passport.Reject(passport.KindMissingCode, "")
		}
		want := passport.NormalizeCode(cp.PartnerCode)
		if subtle.ConstantTimeCompare([]byte(code), []byte(want)) != 1 {
			return passport.Reject(passport.KindInvalidCode, "")
		}
	}
	return nil
}

func (s *CheckinService) publish(ctx context.Context, cp *passport.Checkpoint, v *passport.Verdict) {
	stamp := v.Stamp
	s.emit(ctx, events.SubjectStampCreated, events.StampCreated{Stamp: *stamp})

	// Stamps are unique per checkpoint, so only the stamp that collected the
	// last fragment sees a complete route on a fragment checkpoint.
	if v.RouteCompleted && cp.HasFragment() {
		s.emit(ctx, events.SubjectRouteCompleted, events.RouteCompleted{
			UserID:      stamp.UserID,
			RouteID:     stamp.RouteID,
			CompletedAt: stamp.RecordedAt,
		})
	}
	for _, rw := range v.Rewards {
		s.emit(ctx, events.SubjectRewardUnlocked, events.RewardUnlocked{UserID: stamp.UserID, Reward: rw})
	}
}

func (s *CheckinService) emit(ctx context.Context, subject string, payload any) {
	if err := s.publisher.Publish(ctx, subject, payload); err != nil {
		s.logger.Warn(ctx, "event publish failed", "subject", subject, "error", err)
	}
}

func (s *CheckinService) logRefusal(ctx context.Context, a passport.Attempt, err error) {
	var ce *passport.CheckinError
	if errors.As(err, &ce) {
		s.logger.Info(ctx, "check-in refused",
			"user_id", a.UserID,
			"checkpoint_id", a.CheckpointID,
			"kind", string(ce.Kind),
			"detail", ce.Detail,
		)
		return
	}
	s.logger.Error(ctx, "check-in failed", "user_id", a.UserID, "checkpoint_id", a.CheckpointID, "error", err)
}

func outcome(err error) string {
	if err == nil {
		return outcomeAccepted
	}
	var ce *passport.CheckinError
	if errors.As(err, &ce) {
		return string(ce.Kind)
	}
	return "error"
}

// GetProgress is a read-only view of the user's progress on a route.
func (s *CheckinService) GetProgress(ctx context.Context, userID, routeID string) (*passport.Progress, error) {
	p, err := s.progress.GetProgress(ctx, userID, routeID)
	if err != nil {
		return nil, fmt.Errorf("progress for route %s: %w", routeID, err)
	}
	return p, nil
}
