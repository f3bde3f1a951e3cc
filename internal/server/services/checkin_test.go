package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gopassport/internal/geo"
	"github.com/dmitrijs2005/gopassport/internal/passport"
	"github.com/dmitrijs2005/gopassport/internal/server/events"
)

func TestCheckIn_IssuesStamp(t *testing.T) {
	h := newHarness(t)

	v, err := h.attempt("u1", "a", center, "")
	require.NoError(t, err)

	require.NotNil(t, v.Stamp)
	assert.Equal(t, "a", v.Stamp.CheckpointID)
	assert.Equal(t, "r1", v.Stamp.RouteID)
	assert.Equal(t, 20, v.Stamp.Points)
	assert.Equal(t, base, v.Stamp.CreatedAt)
	assert.Equal(t, 33, v.Progress.CompletionPercentage)
	assert.False(t, v.RouteCompleted)
	assert.Empty(t, v.Rewards)

	p, err := h.store.Passports(nil).Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, p.TotalStamps)
	assert.Equal(t, 20, p.TotalPoints)
	assert.Regexp(t, `^BP-[0-9A-Z]{4}-[0-9A-Z]{4}$`, p.Number)

	assert.Equal(t, []string{events.SubjectStampCreated}, h.publisher.subjects())
}

func TestCheckIn_GeofenceBoundary(t *testing.T) {
	h := newHarness(t)

	_, err := h.attempt("u1", "a", geo.Offset(center, 45, 51), "")
	require.ErrorIs(t, err, passport.ErrOutOfRange)

	_, err = h.attempt("u1", "a", geo.Offset(center, 45, 49.9), "")
	require.NoError(t, err)
}

func TestCheckIn_InvalidCoordinates(t *testing.T) {
	h := newHarness(t)

	_, err := h.attempt("u1", "a", geo.Point{Lat: 91, Lng: 0}, "")
	require.ErrorIs(t, err, passport.ErrOutOfRange)
}

func TestCheckIn_MixedMode(t *testing.T) {
	h := newHarness(t)
	fishMarket := geo.Offset(center, 180, 800)

	tests := []struct {
		name    string
		user    string
		pos     geo.Point
		code    string
		wantErr error
	}{
		{name: "wrong code", user: "u1", pos: fishMarket, code: "BONITO2026", wantErr: passport.ErrInvalidCode},
		{name: "no code", user: "u2", pos: fishMarket, code: "  ", wantErr: passport.ErrMissingCode},
		{name: "right code far away", user: "u3", pos: center, code: "BONITO2025", wantErr: passport.ErrOutOfRange},
		{name: "normalised code inside radius", user: "u4", pos: fishMarket, code: "bonito2025 "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := h.attempt(tt.user, "c", tt.pos, tt.code)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, v)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "c", v.Stamp.CheckpointID)
		})
	}
}

func TestCheckIn_CodeOnlyIgnoresPosition(t *testing.T) {
	h := newHarness(t)

	_, err := h.attempt("u1", "d", geo.Point{Lat: -33.86, Lng: 151.2}, "coffee")
	require.NoError(t, err)
}

func TestCheckIn_UnknownOrInactive(t *testing.T) {
	h := newHarness(t)

	_, err := h.attempt("u1", "nope", center, "")
	require.ErrorIs(t, err, passport.ErrCheckpointNotFound)

	_, err = h.attempt("u1", "x", center, "")
	require.ErrorIs(t, err, passport.ErrCheckpointNotFound)

	_, err = h.store.Passports(nil).Get(context.Background(), "u1")
	assert.Error(t, err, "a refused attempt must not create a passport")
}

func TestCheckIn_Duplicate(t *testing.T) {
	h := newHarness(t)

	_, err := h.attempt("u1", "a", center, "")
	require.NoError(t, err)

	h.clock.Set(base.Add(time.Hour))
	_, err = h.attempt("u1", "a", center, "")
	require.ErrorIs(t, err, passport.ErrAlreadyCheckedIn)

	p, err := h.store.Passports(nil).Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, p.TotalStamps)
	assert.Equal(t, 20, p.TotalPoints)
}

func TestCheckIn_CadenceBoundary(t *testing.T) {
	h := newHarness(t)

	_, err := h.attempt("u1", "a", center, "")
	require.NoError(t, err)

	h.clock.Set(base.Add(29 * time.Second))
	_, err = h.attempt("u1", "d", center, "COFFEE")
	require.ErrorIs(t, err, passport.ErrTooFast)

	h.clock.Set(base.Add(30 * time.Second))
	_, err = h.attempt("u1", "d", center, "COFFEE")
	require.NoError(t, err)
}

func TestCheckIn_RateCeiling(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	// ten stamps between 59 and 5 minutes ago
	for i := 0; i < 10; i++ {
		created := base.Add(-59*time.Minute + time.Duration(i)*6*time.Minute)
		require.NoError(t, h.store.Stamps(nil).Append(ctx, &passport.Stamp{
			ID: fmt.Sprintf("old-%d", i), UserID: "u1", CheckpointID: fmt.Sprintf("old-%d", i),
			RouteID: "elsewhere", CreatedAt: created, RecordedAt: created,
		}))
	}

	_, err := h.attempt("u1", "a", center, "")
	require.ErrorIs(t, err, passport.ErrRateLimited)

	// the oldest stamp is now more than an hour old
	h.clock.Set(base.Add(2 * time.Minute))
	_, err = h.attempt("u1", "a", center, "")
	require.NoError(t, err)
}

func TestCheckIn_CompletionGrantsRewardOnce(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	steps := []struct {
		checkpoint string
		pos        geo.Point
		code       string
		pct        int
		completed  bool
		rewards    int
	}{
		{"a", center, "", 33, false, 0},
		{"b", geo.Offset(center, 90, 500), "", 67, false, 0},
		{"c", geo.Offset(center, 180, 800), "BONITO2025", 100, true, 1},
		{"d", center, "COFFEE", 100, true, 0},
	}

	last := -1
	for i, s := range steps {
		h.clock.Set(base.Add(time.Duration(i) * time.Minute))
		v, err := h.attempt("u1", s.checkpoint, s.pos, s.code)
		require.NoError(t, err, s.checkpoint)

		assert.Equal(t, s.pct, v.Progress.CompletionPercentage, s.checkpoint)
		assert.GreaterOrEqual(t, v.Progress.CompletionPercentage, last)
		assert.Equal(t, s.completed, v.RouteCompleted, s.checkpoint)
		assert.Len(t, v.Rewards, s.rewards, s.checkpoint)
		last = v.Progress.CompletionPercentage
	}

	progress, err := h.checkin.GetProgress(ctx, "u1", "r1")
	require.NoError(t, err)
	assert.Equal(t, 100, progress.CompletionPercentage)

	again, err := h.checkin.rewards.UnlockRewards(ctx, nil, "u1", "r1")
	require.NoError(t, err)
	assert.Empty(t, again)

	grants, err := h.checkin.rewards.Granted(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, grants, 1)
	assert.Equal(t, "rw1", grants[0].RewardID)

	p, err := h.store.Passports(nil).Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, p.CompletedRoutes)
	assert.Equal(t, 4, p.TotalStamps)

	assert.Equal(t, []string{
		events.SubjectStampCreated,
		events.SubjectStampCreated,
		events.SubjectStampCreated,
		events.SubjectRouteCompleted,
		events.SubjectRewardUnlocked,
		events.SubjectStampCreated,
	}, h.publisher.subjects())
}

func TestCheckIn_ConcurrentAttemptsYieldOneStamp(t *testing.T) {
	h := newHarness(t)

	const n = 16
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		refusals []error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.attempt("u1", "a", center, "")
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				accepted++
				return
			}
			refusals = append(refusals, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	for _, err := range refusals {
		assert.True(t, errors.Is(err, passport.ErrAlreadyCheckedIn) || errors.Is(err, passport.ErrTooFast), err)
	}

	list, err := h.store.Stamps(nil).ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCheckIn_ReplayUsesCaptureTime(t *testing.T) {
	h := newHarness(t)
	captured := base.Add(-2 * time.Hour)

	v, err := h.checkin.CheckIn(context.Background(), passport.Attempt{
		UserID: "u1", CheckpointID: "a", Position: at(center), CapturedAt: captured,
	})
	require.NoError(t, err)
	assert.Equal(t, captured, v.Stamp.CreatedAt)
	assert.Equal(t, base, v.Stamp.RecordedAt)
}

// importCodeStops adds an active route r3 with n code-mode checkpoints
// s0..s(n-1), all accepting the code "STOP".
func (h *harness) importCodeStops(t *testing.T, n int) {
	t.Helper()
	route := passport.Route{ID: "r3", Name: "Markets", Difficulty: passport.DifficultyEasy, Active: true}
	for i := 0; i < n; i++ {
		route.Checkpoints = append(route.Checkpoints, passport.Checkpoint{
			ID: fmt.Sprintf("s%d", i), Name: fmt.Sprintf("Stall %d", i), Mode: passport.ModeCode, PartnerCode: "STOP",
		})
	}
	seed := &Seed{Routes: []passport.Route{route}}
	require.NoError(t, NewCatalogService(h.store, h.store).Import(context.Background(), seed))
}

func TestCheckIn_BackdatedReplaysHitCeiling(t *testing.T) {
	h := newHarness(t)
	h.importCodeStops(t, 12)

	// newest first, each capture 31s older than the previous one
	var accepted, limited int
	for i := 0; i < 12; i++ {
		_, err := h.checkin.CheckIn(context.Background(), passport.Attempt{
			UserID: "u1", CheckpointID: fmt.Sprintf("s%d", i), PartnerCode: "STOP",
			CapturedAt: base.Add(-time.Duration(i) * 31 * time.Second),
		})
		switch {
		case err == nil:
			accepted++
		case errors.Is(err, passport.ErrRateLimited):
			limited++
		default:
			t.Fatalf("attempt %d: %v", i, err)
		}
	}

	assert.Equal(t, 10, accepted)
	assert.Equal(t, 2, limited)
}

func TestCheckIn_BackdatedReplayRespectsCadence(t *testing.T) {
	h := newHarness(t)

	_, err := h.attempt("u1", "d", center, "COFFEE")
	require.NoError(t, err)

	_, err = h.checkin.CheckIn(context.Background(), passport.Attempt{
		UserID: "u1", CheckpointID: "a", Position: at(center), CapturedAt: base.Add(-10 * time.Second),
	})
	require.ErrorIs(t, err, passport.ErrTooFast)

	v, err := h.checkin.CheckIn(context.Background(), passport.Attempt{
		UserID: "u1", CheckpointID: "a", Position: at(center), CapturedAt: base.Add(-30 * time.Second),
	})
	require.NoError(t, err)
	assert.Equal(t, base.Add(-30*time.Second), v.Stamp.CreatedAt)
}

func TestAttemptTime(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name     string
		captured time.Time
		want     time.Time
	}{
		{"live", time.Time{}, base},
		{"future", base.Add(time.Minute), base},
		{"recent", base.Add(-time.Hour), base.Add(-time.Hour)},
		{"at the limit", base.Add(-7 * 24 * time.Hour), base.Add(-7 * 24 * time.Hour)},
		{"too old", base.Add(-8 * 24 * time.Hour), base},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.checkin.AttemptTime(tt.captured))
		})
	}
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "accepted", outcome(nil))
	assert.Equal(t, "TOO_FAST", outcome(passport.Reject(passport.KindTooFast, "x")))
	assert.Equal(t, "error", outcome(errors.New("db down")))
}
