package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gopassport/internal/passport"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/memory"
)

func TestSeed_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Seed)
		wantErr string
	}{
		{name: "valid", mutate: func(*Seed) {}},
		{
			name:    "unknown difficulty",
			mutate:  func(s *Seed) { s.Routes[0].Difficulty = "brutal" },
			wantErr: "route r1",
		},
		{
			name:    "mixed without code",
			mutate:  func(s *Seed) { s.Routes[0].Checkpoints[2].PartnerCode = "" },
			wantErr: "checkpoint c",
		},
		{
			name:    "fragment index reused",
			mutate:  func(s *Seed) { s.Routes[0].Checkpoints[1].FragmentIndex = fragment(0) },
			wantErr: "fragment 0 already used by a",
		},
		{
			name:    "checkpoint under the wrong route",
			mutate:  func(s *Seed) { s.Routes[0].Checkpoints[0].RouteID = "r2" },
			wantErr: "belongs to route r2",
		},
		{
			name:    "reward for unknown route",
			mutate:  func(s *Seed) { s.Rewards[0].RouteID = "r9" },
			wantErr: "unknown route r9",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := testSeed()
			tt.mutate(seed)
			err := seed.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCatalogService_ImportRejectsInvalidSeed(t *testing.T) {
	store := memory.NewManager()
	seed := testSeed()
	seed.Routes[1].Checkpoints[0].Mode = "telepathy"

	err := NewCatalogService(store, store).Import(context.Background(), seed)
	require.ErrorIs(t, err, passport.ErrUnknownMode)

	_, err = store.Routes(nil).GetRoute(context.Background(), "r1")
	assert.Error(t, err, "nothing is written when validation fails")
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	data := `{
	  "routes": [{
	    "id": "harbour", "name": "Harbour walk", "difficulty": "hard", "active": true,
	    "checkpoints": [
	      {"id": "pier", "name": "Pier", "center": {"lat": 41.38, "lng": 2.18}, "radius_m": 30, "mode": "geofence", "fragment_index": 0},
	      {"id": "stall", "name": "Stall", "mode": "code", "partner_code": "TUNA", "fragment_index": 1}
	    ]
	  }],
	  "rewards": [{"id": "sticker", "route_id": "harbour", "title": "Sticker"}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	seed, err := LoadSeed(path)
	require.NoError(t, err)
	require.NoError(t, seed.Validate())

	store := memory.NewManager()
	require.NoError(t, NewCatalogService(store, store).Import(context.Background(), seed))

	cp, err := store.Routes(nil).GetCheckpoint(context.Background(), "stall")
	require.NoError(t, err)
	assert.Equal(t, "harbour", cp.RouteID)
	assert.Equal(t, passport.ModeCode, cp.Mode)

	rewards, err := store.Rewards(nil).ListByRoute(context.Background(), "harbour")
	require.NoError(t, err)
	assert.Len(t, rewards, 1)
}

func TestLoadSeed_Errors(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	_, err = LoadSeed(path)
	assert.ErrorContains(t, err, "parse seed")
}
