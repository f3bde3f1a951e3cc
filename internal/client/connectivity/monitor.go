// Package connectivity tracks whether the passport server is reachable and
// tells interested components when that changes.
package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gopassport/internal/logging"
)

// Monitor holds the current online state. Subscribers are called
// synchronously, once per transition, in transition order. A callback must
// not call Set.
type Monitor struct {
	// notify serialises transitions so callbacks observe them in order.
	notify sync.Mutex

	mu     sync.Mutex
	online bool
	nextID int
	subs   map[int]func(online bool)

	logger logging.Logger
}

func NewMonitor(logger logging.Logger) *Monitor {
	return &Monitor{
		subs:   make(map[int]func(bool)),
		logger: logger.With("module", "connectivity"),
	}
}

func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Set records the observed state. Callbacks run only if it differs from the
// previous one.
func (m *Monitor) Set(online bool) {
	m.notify.Lock()
	defer m.notify.Unlock()

	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	subs := make([]func(bool), 0, len(m.subs))
	for id := 0; id < m.nextID; id++ {
		if fn, ok := m.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	m.mu.Unlock()

	m.logger.Info(context.Background(), "connectivity changed", "online", online)
	for _, fn := range subs {
		fn(online)
	}
}

// Subscribe registers fn for future transitions. The returned function
// removes the subscription.
func (m *Monitor) Subscribe(fn func(online bool)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
		})
	}
}

// Run pings immediately and then every interval until ctx is done. A ping
// error means offline.
func (m *Monitor) Run(ctx context.Context, interval time.Duration, ping func(ctx context.Context) error) {
	check := func() {
		pctx, cancel := context.WithTimeout(ctx, interval)
		err := ping(pctx)
		cancel()
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			m.logger.Debug(ctx, "ping failed", "error", err)
		}
		m.Set(err == nil)
	}

	check()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			check()
		case <-ctx.Done():
			return
		}
	}
}
