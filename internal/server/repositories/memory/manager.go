// Package memory is an in-process implementation of the repository manager
// used for local development (DatabaseDSN=memory) and tests. Transactions
// are serialized by a single mutex; a failed transaction restores the state
// captured when it began.
package memory

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/dmitrijs2005/gopassport/internal/dbx"
	"github.com/dmitrijs2005/gopassport/internal/passport"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/passports"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/rewards"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/routes"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/stamps"
)

type pairKey struct {
	a, b string
}

type state struct {
	routes      map[string]passport.Route
	checkpoints map[string]passport.Checkpoint
	rewards     map[string]passport.Reward
	passports   map[string]passport.Passport
	stamps      map[pairKey]passport.Stamp
	completions map[pairKey]time.Time
	grants      map[pairKey]passport.Grant
}

func newState() *state {
	return &state{
		routes:      map[string]passport.Route{},
		checkpoints: map[string]passport.Checkpoint{},
		rewards:     map[string]passport.Reward{},
		passports:   map[string]passport.Passport{},
		stamps:      map[pairKey]passport.Stamp{},
		completions: map[pairKey]time.Time{},
		grants:      map[pairKey]passport.Grant{},
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// clone copies the maps; stored values are never mutated in place.
func (s *state) clone() *state {
	return &state{
		routes:      cloneMap(s.routes),
		checkpoints: cloneMap(s.checkpoints),
		rewards:     cloneMap(s.rewards),
		passports:   cloneMap(s.passports),
		stamps:      cloneMap(s.stamps),
		completions: cloneMap(s.completions),
		grants:      cloneMap(s.grants),
	}
}

// txHandle marks calls made from inside WithTx, where the lock is already held.
type txHandle struct {
	dbx.DBTX
}

type Manager struct {
	mu sync.Mutex
	st *state
}

func NewManager() *Manager {
	return &Manager{st: newState()}
}

// RunMigrations is a no-op; the schema is implicit.
func (m *Manager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *Manager) WithTx(ctx context.Context, fn dbx.TxFunc) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := m.st.clone()
	defer func() {
		if p := recover(); p != nil {
			m.st = snapshot
			panic(p)
		}
		if err != nil {
			m.st = snapshot
		}
	}()

	return fn(ctx, txHandle{})
}

func (m *Manager) do(db dbx.DBTX, fn func(s *state) error) error {
	if _, ok := db.(txHandle); ok {
		return fn(m.st)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(m.st)
}

func (m *Manager) Routes(db dbx.DBTX) routes.Repository {
	return &routeRepository{m: m, db: db}
}

func (m *Manager) Stamps(db dbx.DBTX) stamps.Repository {
	return &stampRepository{m: m, db: db}
}

func (m *Manager) Passports(db dbx.DBTX) passports.Repository {
	return &passportRepository{m: m, db: db}
}

func (m *Manager) Rewards(db dbx.DBTX) rewards.Repository {
	return &rewardRepository{m: m, db: db}
}
