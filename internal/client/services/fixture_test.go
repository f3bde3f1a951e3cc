package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gopassport/internal/client/client"
	"github.com/dmitrijs2005/gopassport/internal/client/connectivity"
	"github.com/dmitrijs2005/gopassport/internal/client/models"
	"github.com/dmitrijs2005/gopassport/internal/logging"
	"github.com/dmitrijs2005/gopassport/internal/passport"
)

var base = time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

// fakeClient answers CheckIn from a per-checkpoint script; an empty script
// accepts. Every request is recorded.
type fakeClient struct {
	mu      sync.Mutex
	calls   []passport.Attempt
	scripts map[string][]error

	progress *passport.Progress
	passport *passport.View
	photoKey string
	photoURL string
	err      error
}

func newFakeClient() *fakeClient {
	return &fakeClient{scripts: map[string][]error{}}
}

func (f *fakeClient) script(checkpointID string, errs ...error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scripts[checkpointID] = append(f.scripts[checkpointID], errs...)
}

func (f *fakeClient) checkpoints() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		ids = append(ids, c.CheckpointID)
	}
	return ids
}

func (f *fakeClient) Close() error                 { return nil }
func (f *fakeClient) Ping(ctx context.Context) error { return f.err }

func (f *fakeClient) CheckIn(ctx context.Context, req passport.Attempt) (*passport.Verdict, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)

	if s := f.scripts[req.CheckpointID]; len(s) > 0 {
		f.scripts[req.CheckpointID] = s[1:]
		if s[0] != nil {
			return nil, s[0]
		}
	}
	return &passport.Verdict{
		Stamp:    &passport.Stamp{ID: "stamp-" + req.CheckpointID, CheckpointID: req.CheckpointID, Points: 20},
		Progress: passport.Progress{RouteID: "r1", CompletionPercentage: 33},
	}, nil
}

func (f *fakeClient) GetProgress(ctx context.Context, routeID string) (*passport.Progress, error) {
	return f.progress, f.err
}

func (f *fakeClient) GetPassport(ctx context.Context) (*passport.View, error) {
	return f.passport, f.err
}

func (f *fakeClient) PresignPhotoUpload(ctx context.Context, contentType string) (string, string, error) {
	return f.photoKey, f.photoURL, f.err
}

type harness struct {
	svc     *CheckinService
	client  *fakeClient
	monitor *connectivity.Monitor
	repos   *client.Repositories
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repos := client.NewRepositories(db)
	fc := newFakeClient()
	mon := connectivity.NewMonitor(logging.Nop())

	svc := NewCheckinService(fc, repos, mon, logging.Nop(), 7*24*time.Hour, time.Second)
	svc.backoffInitial = 5 * time.Millisecond
	svc.now = func() time.Time { return base }

	return &harness{svc: svc, client: fc, monitor: mon, repos: repos}
}

func (h *harness) queue(t *testing.T, checkpointID string, captured time.Time) string {
	t.Helper()
	id, err := h.repos.Pending.Enqueue(context.Background(), attempt(checkpointID, captured))
	require.NoError(t, err)
	return id
}

func attempt(checkpointID string, captured time.Time) *models.PendingCheckin {
	return &models.PendingCheckin{
		UserID:       "u1",
		CheckpointID: checkpointID,
		Latitude:     56.9496,
		Longitude:    24.1052,
		CapturedAt:   captured,
	}
}
