package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gopassport/internal/client/client"
	"github.com/dmitrijs2005/gopassport/internal/passport"
)

func TestSyncPending_Empty(t *testing.T) {
	h := newHarness(t)

	res, err := h.svc.SyncPending(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, SyncResult{}, res)
	assert.Empty(t, h.client.checkpoints())
}

func TestSyncPending_MarksOutcomesInOrder(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.queue(t, "a", base.Add(-30*time.Minute))
	far := h.queue(t, "b", base.Add(-20*time.Minute))
	h.queue(t, "c", base.Add(-10*time.Minute))
	h.client.script("b", passport.Reject(passport.KindOutOfRange, "120 m from checkpoint"))

	res, err := h.svc.SyncPending(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Synced)
	assert.Equal(t, 1, res.Failed)
	assert.Zero(t, res.Remaining)
	require.Len(t, res.Failures, 1)
	f := res.Failures[0]
	assert.Equal(t, far, f.LocalID)
	assert.Equal(t, "b", f.CheckpointID)
	assert.Equal(t, 2, f.Position)
	assert.Equal(t, "OUT_OF_RANGE", f.Reason)
	assert.True(t, f.CapturedAt.Equal(base.Add(-20*time.Minute)))
	assert.ErrorIs(t, f.Err, passport.ErrOutOfRange)

	assert.Equal(t, []string{"a", "b", "c"}, h.client.checkpoints())
	for _, c := range h.client.calls {
		assert.False(t, c.CapturedAt.IsZero())
	}
	assert.True(t, h.client.calls[0].CapturedAt.Equal(base.Add(-30*time.Minute)))

	last, err := h.repos.Metadata.LastSyncAt(ctx)
	require.NoError(t, err)
	assert.True(t, last.Equal(base))
}

func TestSyncPending_AlreadyCheckedInIsFailure(t *testing.T) {
	h := newHarness(t)
	h.queue(t, "a", base)
	h.client.script("a", passport.ErrAlreadyCheckedIn)

	res, err := h.svc.SyncPending(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, "ALREADY_CHECKED_IN", res.Failures[0].Reason)
}

func TestSyncPending_InvalidRequestIsFailure(t *testing.T) {
	h := newHarness(t)
	h.queue(t, "a", base)
	h.client.script("a", errors.Join(client.ErrInvalidRequest, errors.New("latitude out of range")))

	res, err := h.svc.SyncPending(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, res.Failures, 1)
	assert.Contains(t, res.Failures[0].Reason, "invalid request")
}

func TestSyncPending_TransientStopsPass(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.queue(t, "a", base.Add(-3*time.Minute))
	h.queue(t, "b", base.Add(-2*time.Minute))
	h.queue(t, "c", base.Add(-time.Minute))
	h.client.script("b", client.ErrUnavailable)

	res, err := h.svc.SyncPending(ctx, "u1")
	assert.ErrorIs(t, err, ErrSyncInterrupted)
	assert.ErrorIs(t, err, client.ErrUnavailable)
	assert.Equal(t, 1, res.Synced)
	assert.Equal(t, 2, res.Remaining)
	assert.Equal(t, []string{"a", "b"}, h.client.checkpoints())

	pending, err := h.svc.Pending(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "b", pending[0].CheckpointID)
	assert.Equal(t, "c", pending[1].CheckpointID)

	last, err := h.repos.Metadata.LastSyncAt(ctx)
	require.NoError(t, err)
	assert.True(t, last.IsZero())

	res, err = h.svc.SyncPending(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Synced)
	assert.Equal(t, []string{"a", "b", "b", "c"}, h.client.checkpoints())
}

func TestSyncPending_UnauthorizedStops(t *testing.T) {
	h := newHarness(t)
	h.queue(t, "a", base.Add(-time.Minute))
	h.queue(t, "b", base)
	h.client.script("a", client.ErrUnauthorized)

	res, err := h.svc.SyncPending(context.Background(), "u1")
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrSyncInterrupted)
	assert.Equal(t, 2, res.Remaining)
	assert.Equal(t, []string{"a"}, h.client.checkpoints())
}

func TestSyncPending_OtherUsersUntouched(t *testing.T) {
	h := newHarness(t)
	other := attempt("x", base)
	other.UserID = "u2"
	_, err := h.repos.Pending.Enqueue(context.Background(), other)
	require.NoError(t, err)

	res, err := h.svc.SyncPending(context.Background(), "u1")
	require.NoError(t, err)
	assert.Zero(t, res.Synced)
	assert.Empty(t, h.client.checkpoints())
}

func TestWatchConnectivity_RetriesUntilDrained(t *testing.T) {
	h := newHarness(t)
	h.queue(t, "a", base.Add(-time.Minute))
	h.queue(t, "b", base)
	h.client.script("a", client.ErrUnavailable, client.ErrUnavailable)

	var (
		mu     sync.Mutex
		report *SyncResult
		repErr error
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := h.svc.WatchConnectivity(ctx, "u1", func(res SyncResult, err error) {
		mu.Lock()
		defer mu.Unlock()
		report = &res
		repErr = err
	})
	defer stop()

	h.monitor.Set(true)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return report != nil
	}, 5*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.NoError(t, repErr)
	assert.Equal(t, 2, report.Synced)
	assert.Zero(t, report.Remaining)
	assert.Equal(t, []string{"a", "a", "a", "b"}, h.client.checkpoints())
}

func TestWatchConnectivity_UnauthorizedIsPermanent(t *testing.T) {
	h := newHarness(t)
	h.queue(t, "a", base)
	h.client.script("a", client.ErrUnauthorized)

	done := make(chan error, 1)
	stop := h.svc.WatchConnectivity(context.Background(), "u1", func(_ SyncResult, err error) { done <- err })
	defer stop()

	h.monitor.Set(true)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, client.ErrUnauthorized)
	case <-time.After(5 * time.Second):
		t.Fatal("no report")
	}
	assert.Equal(t, []string{"a"}, h.client.checkpoints())
}

func TestWatchConnectivity_StopWaitsForSync(t *testing.T) {
	h := newHarness(t)
	h.queue(t, "a", base)
	errs := make([]error, 100)
	for i := range errs {
		errs[i] = client.ErrUnavailable
	}
	h.client.script("a", errs...)

	reported := make(chan error, 1)
	ctx, cancel := context.WithCancel(context.Background())
	stop := h.svc.WatchConnectivity(ctx, "u1", func(_ SyncResult, err error) { reported <- err })

	h.monitor.Set(true)
	require.Eventually(t, func() bool { return len(h.client.checkpoints()) > 0 }, 5*time.Second, 5*time.Millisecond)

	cancel()
	stop()

	select {
	case err := <-reported:
		assert.Error(t, err)
	default:
		t.Fatal("stop returned before the sync in flight finished")
	}

	h.monitor.Set(false)
	h.monitor.Set(true)
	select {
	case <-reported:
		t.Fatal("sync started after stop")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWatchConnectivity_IgnoresOffline(t *testing.T) {
	h := newHarness(t)
	h.monitor.Set(true)

	called := make(chan struct{}, 1)
	stop := h.svc.WatchConnectivity(context.Background(), "u1", func(SyncResult, error) { called <- struct{}{} })
	defer stop()

	h.monitor.Set(false)

	select {
	case <-called:
		t.Fatal("sync started on offline transition")
	case <-time.After(50 * time.Millisecond):
	}
}
