package memory

import (
	"context"
	"sort"
	"time"

	"github.com/dmitrijs2005/gopassport/internal/common"
	"github.com/dmitrijs2005/gopassport/internal/dbx"
	"github.com/dmitrijs2005/gopassport/internal/passport"
)

type routeRepository struct {
	m  *Manager
	db dbx.DBTX
}

func (r *routeRepository) GetRoute(_ context.Context, routeID string) (*passport.Route, error) {
	var out *passport.Route
	err := r.m.do(r.db, func(s *state) error {
		route, ok := s.routes[routeID]
		if !ok {
			return common.ErrorNotFound
		}
		out = &route
		return nil
	})
	return out, err
}

func (r *routeRepository) GetCheckpoint(_ context.Context, checkpointID string) (*passport.Checkpoint, error) {
	var out *passport.Checkpoint
	err := r.m.do(r.db, func(s *state) error {
		cp, ok := s.checkpoints[checkpointID]
		if !ok {
			return common.ErrorNotFound
		}
		out = &cp
		return nil
	})
	return out, err
}

func (r *routeRepository) FragmentCheckpoints(_ context.Context, routeID string) ([]passport.Checkpoint, error) {
	var out []passport.Checkpoint
	err := r.m.do(r.db, func(s *state) error {
		for _, cp := range s.checkpoints {
			if cp.RouteID == routeID && cp.FragmentIndex != nil {
				out = append(out, cp)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return *out[i].FragmentIndex < *out[j].FragmentIndex })
	return out, err
}

func (r *routeRepository) Save(_ context.Context, route *passport.Route) error {
	return r.m.do(r.db, func(s *state) error {
		stored := *route
		stored.Checkpoints = nil
		s.routes[route.ID] = stored
		for _, cp := range route.Checkpoints {
			cp.RouteID = route.ID
			s.checkpoints[cp.ID] = cp
		}
		return nil
	})
}

type stampRepository struct {
	m  *Manager
	db dbx.DBTX
}

func (r *stampRepository) Exists(_ context.Context, userID, checkpointID string) (bool, error) {
	var ok bool
	err := r.m.do(r.db, func(s *state) error {
		_, ok = s.stamps[pairKey{userID, checkpointID}]
		return nil
	})
	return ok, err
}

func (r *stampRepository) CreatedBetween(_ context.Context, userID string, from, to time.Time) ([]time.Time, error) {
	var out []time.Time
	err := r.m.do(r.db, func(s *state) error {
		for k, st := range s.stamps {
			if k.a == userID && st.CreatedAt.After(from) && st.CreatedAt.Before(to) {
				out = append(out, st.CreatedAt)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out, err
}

func (r *stampRepository) MostRecent(_ context.Context, userID string, asOf time.Time) (*passport.Stamp, error) {
	var out *passport.Stamp
	err := r.m.do(r.db, func(s *state) error {
		for k, st := range s.stamps {
			if k.a != userID || st.CreatedAt.After(asOf) {
				continue
			}
			if out == nil || st.CreatedAt.After(out.CreatedAt) {
				cp := st
				out = &cp
			}
		}
		if out == nil {
			return common.ErrorNotFound
		}
		return nil
	})
	return out, err
}

func (r *stampRepository) FirstSince(_ context.Context, userID string, from time.Time) (*passport.Stamp, error) {
	var out *passport.Stamp
	err := r.m.do(r.db, func(s *state) error {
		for k, st := range s.stamps {
			if k.a != userID || st.CreatedAt.Before(from) {
				continue
			}
			if out == nil || st.CreatedAt.Before(out.CreatedAt) {
				cp := st
				out = &cp
			}
		}
		if out == nil {
			return common.ErrorNotFound
		}
		return nil
	})
	return out, err
}

func (r *stampRepository) Append(_ context.Context, st *passport.Stamp) error {
	return r.m.do(r.db, func(s *state) error {
		k := pairKey{st.UserID, st.CheckpointID}
		if _, ok := s.stamps[k]; ok {
			return common.ErrDuplicateStamp
		}
		s.stamps[k] = *st
		return nil
	})
}

func (r *stampRepository) StampedCheckpoints(_ context.Context, userID, routeID string) (map[string]time.Time, error) {
	out := map[string]time.Time{}
	err := r.m.do(r.db, func(s *state) error {
		for k, st := range s.stamps {
			if k.a == userID && st.RouteID == routeID {
				out[st.CheckpointID] = st.CreatedAt
			}
		}
		return nil
	})
	return out, err
}

func (r *stampRepository) ListByUser(_ context.Context, userID string) ([]passport.Stamp, error) {
	var out []passport.Stamp
	err := r.m.do(r.db, func(s *state) error {
		for k, st := range s.stamps {
			if k.a == userID {
				out = append(out, st)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, err
}

type passportRepository struct {
	m  *Manager
	db dbx.DBTX
}

func (r *passportRepository) Create(_ context.Context, p *passport.Passport) (bool, error) {
	var created bool
	err := r.m.do(r.db, func(s *state) error {
		if _, ok := s.passports[p.UserID]; ok {
			return nil
		}
		for _, other := range s.passports {
			if other.Number == p.Number {
				return nil
			}
		}
		s.passports[p.UserID] = *p
		created = true
		return nil
	})
	return created, err
}

func (r *passportRepository) Get(_ context.Context, userID string) (*passport.Passport, error) {
	var out *passport.Passport
	err := r.m.do(r.db, func(s *state) error {
		p, ok := s.passports[userID]
		if !ok {
			return common.ErrorNotFound
		}
		out = &p
		return nil
	})
	return out, err
}

// GetForUpdate needs no extra locking: transactions are already serialized.
func (r *passportRepository) GetForUpdate(ctx context.Context, userID string) (*passport.Passport, error) {
	return r.Get(ctx, userID)
}

func (r *passportRepository) AddStamp(_ context.Context, userID string, points int) error {
	return r.update(userID, func(p *passport.Passport) {
		p.TotalStamps++
		p.TotalPoints += points
	})
}

func (r *passportRepository) IncrementCompletedRoutes(_ context.Context, userID string) error {
	return r.update(userID, func(p *passport.Passport) { p.CompletedRoutes++ })
}

func (r *passportRepository) update(userID string, fn func(p *passport.Passport)) error {
	return r.m.do(r.db, func(s *state) error {
		p, ok := s.passports[userID]
		if !ok {
			return common.ErrorNotFound
		}
		fn(&p)
		s.passports[userID] = p
		return nil
	})
}

type rewardRepository struct {
	m  *Manager
	db dbx.DBTX
}

func (r *rewardRepository) ListByRoute(_ context.Context, routeID string) ([]passport.Reward, error) {
	var out []passport.Reward
	err := r.m.do(r.db, func(s *state) error {
		for _, rw := range s.rewards {
			if rw.RouteID == routeID {
				out = append(out, rw)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}

func (r *rewardRepository) Save(_ context.Context, rw *passport.Reward) error {
	return r.m.do(r.db, func(s *state) error {
		s.rewards[rw.ID] = *rw
		return nil
	})
}

func (r *rewardRepository) RecordCompletion(_ context.Context, userID, routeID string, at time.Time) (bool, error) {
	var created bool
	err := r.m.do(r.db, func(s *state) error {
		k := pairKey{userID, routeID}
		if _, ok := s.completions[k]; ok {
			return nil
		}
		s.completions[k] = at
		created = true
		return nil
	})
	return created, err
}

func (r *rewardRepository) Grant(_ context.Context, g passport.Grant) (bool, error) {
	var created bool
	err := r.m.do(r.db, func(s *state) error {
		k := pairKey{g.UserID, g.RewardID}
		if _, ok := s.grants[k]; ok {
			return nil
		}
		s.grants[k] = g
		created = true
		return nil
	})
	return created, err
}

func (r *rewardRepository) ListGrants(_ context.Context, userID string) ([]passport.Grant, error) {
	var out []passport.Grant
	err := r.m.do(r.db, func(s *state) error {
		for k, g := range s.grants {
			if k.a == userID {
				out = append(out, g)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].GrantedAt.Equal(out[j].GrantedAt) {
			return out[i].RewardID < out[j].RewardID
		}
		return out[i].GrantedAt.Before(out[j].GrantedAt)
	})
	return out, err
}
