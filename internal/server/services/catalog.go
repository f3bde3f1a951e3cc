package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gopassport/internal/dbx"
	"github.com/dmitrijs2005/gopassport/internal/passport"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/repomanager"
)

// Seed is the on-disk catalogue format used for development and tests.
type Seed struct {
	Routes  []passport.Route  `json:"routes"`
	Rewards []passport.Reward `json:"rewards"`
}

func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", path, err)
	}
	return &seed, nil
}

type CatalogService struct {
	tx    dbx.TxRunner
	repos repomanager.RepositoryManager
}

func NewCatalogService(tx dbx.TxRunner, repos repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{tx: tx, repos: repos}
}

// Validate checks every route and checkpoint before anything is written.
func (s *Seed) Validate() error {
	routeIDs := make(map[string]bool, len(s.Routes))
	for _, r := range s.Routes {
		if r.ID == "" {
			return fmt.Errorf("route %q: empty id", r.Name)
		}
		if _, err := passport.PointsFor(r.Difficulty); err != nil {
			return fmt.Errorf("route %s: %w", r.ID, err)
		}
		fragments := map[int]string{}
		for _, cp := range r.Checkpoints {
			if cp.RouteID != "" && cp.RouteID != r.ID {
				return fmt.Errorf("checkpoint %s: belongs to route %s, listed under %s", cp.ID, cp.RouteID, r.ID)
			}
			if err := cp.Validate(); err != nil {
				return fmt.Errorf("checkpoint %s: %w", cp.ID, err)
			}
			if cp.HasFragment() {
				if other, dup := fragments[*cp.FragmentIndex]; dup {
					return fmt.Errorf("checkpoint %s: fragment %d already used by %s", cp.ID, *cp.FragmentIndex, other)
				}
				fragments[*cp.FragmentIndex] = cp.ID
			}
		}
		routeIDs[r.ID] = true
	}
	for _, rw := range s.Rewards {
		if !routeIDs[rw.RouteID] {
			return fmt.Errorf("reward %s: unknown route %s", rw.ID, rw.RouteID)
		}
	}
	return nil
}

// Import upserts the seed in one transaction.
func (s *CatalogService) Import(ctx context.Context, seed *Seed) error {
	if err := seed.Validate(); err != nil {
		return err
	}
	return s.tx.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		for i := range seed.Routes {
			if err := s.repos.Routes(tx).Save(ctx, &seed.Routes[i]); err != nil {
				return fmt.Errorf("save route %s: %w", seed.Routes[i].ID, err)
			}
		}
		for i := range seed.Rewards {
			if err := s.repos.Rewards(tx).Save(ctx, &seed.Rewards[i]); err != nil {
				return fmt.Errorf("save reward %s: %w", seed.Rewards[i].ID, err)
			}
		}
		return nil
	})
}
