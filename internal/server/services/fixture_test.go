package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gopassport/internal/geo"
	"github.com/dmitrijs2005/gopassport/internal/logging"
	"github.com/dmitrijs2005/gopassport/internal/passport"
	"github.com/dmitrijs2005/gopassport/internal/server/metrics"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/memory"
)

var (
	base   = time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	center = geo.Point{Lat: 56.9496, Lng: 24.1052}
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

type published struct {
	subject string
	payload any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []published
}

func (p *recordingPublisher) Publish(_ context.Context, subject string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{subject, payload})
	return nil
}

func (p *recordingPublisher) subjects() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.subject)
	}
	return out
}

func fragment(i int) *int { return &i }

func pt(p geo.Point) *geo.Point { return &p }

// testSeed: route r1 has three fragments (a, b, c) plus an unnumbered partner
// stop d; route r2 is inactive.
func testSeed() *Seed {
	return &Seed{
		Routes: []passport.Route{
			{
				ID: "r1", Name: "Old Town", Difficulty: passport.DifficultyMedium, Active: true,
				Checkpoints: []passport.Checkpoint{
					{ID: "a", Name: "Cathedral", Center: pt(center), RadiusM: 50, Mode: passport.ModeGeofence, FragmentIndex: fragment(0)},
					{ID: "b", Name: "Town Hall", Center: pt(geo.Offset(center, 90, 500)), RadiusM: 50, Mode: passport.ModeGeofence, FragmentIndex: fragment(1)},
					{ID: "c", Name: "Fish Market", Center: pt(geo.Offset(center, 180, 800)), RadiusM: 40, Mode: passport.ModeMixed, PartnerCode: "BONITO2025", FragmentIndex: fragment(2)},
					{ID: "d", Name: "Cafe", Mode: passport.ModeCode, PartnerCode: "COFFEE"},
				},
			},
			{
				ID: "r2", Name: "Closed", Difficulty: passport.DifficultyEasy, Active: false,
				Checkpoints: []passport.Checkpoint{
					{ID: "x", Name: "Gone", Center: pt(center), RadiusM: 50, Mode: passport.ModeGeofence},
				},
			},
		},
		Rewards: []passport.Reward{
			{ID: "rw1", RouteID: "r1", Title: "Old Town badge"},
		},
	}
}

type harness struct {
	store     *memory.Manager
	clock     *clock
	publisher *recordingPublisher
	passports *PassportService
	checkin   *CheckinService
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	store := memory.NewManager()
	require.NoError(t, NewCatalogService(store, store).Import(context.Background(), testSeed()))

	h := &harness{
		store:     store,
		clock:     &clock{t: base},
		publisher: &recordingPublisher{},
	}

	h.passports = NewPassportService(nil, store, store)
	h.passports.now = h.clock.Now

	h.checkin = NewCheckinService(nil, store, store, NewGuard(10, time.Hour, 30*time.Second),
		h.passports, h.publisher, metrics.Nop(), logging.Nop(), 7*24*time.Hour)
	h.checkin.now = h.clock.Now
	h.checkin.rewards.now = h.clock.Now

	return h
}

func (h *harness) checkpointCenter(t *testing.T, id string) geo.Point {
	t.Helper()
	cp, err := h.store.Routes(nil).GetCheckpoint(context.Background(), id)
	require.NoError(t, err)
	return *cp.Center
}

func at(p geo.Point) geo.Position { return geo.Position{Point: p} }

func (h *harness) attempt(user, checkpointID string, pos geo.Point, code string) (*passport.Verdict, error) {
	return h.checkin.CheckIn(context.Background(), passport.Attempt{
		UserID:       user,
		CheckpointID: checkpointID,
		Position:     at(pos),
		PartnerCode:  code,
	})
}
