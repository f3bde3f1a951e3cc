// Package passport defines the core domain types of the digital passport:
// routes and their checkpoints, stamps, rewards, progress and the typed
// check-in verdict. It depends only on the geo package.
package passport

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/gopassport/internal/geo"
)

// Difficulty is a route tier that determines points per stamp.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var pointsByDifficulty = map[Difficulty]int{
	DifficultyEasy:   10,
	DifficultyMedium: 20,
	DifficultyHard:   35,
}

// PointsFor returns the base stamp award for a difficulty tier.
func PointsFor(d Difficulty) (int, error) {
	p, ok := pointsByDifficulty[d]
	if !ok {
		return 0, fmt.Errorf("unknown difficulty %q", d)
	}
	return p, nil
}

// ValidationMode selects which proofs of visit a checkpoint requires.
type ValidationMode string

const (
	ModeGeofence ValidationMode = "geofence"
	ModeCode     ValidationMode = "code"
	ModeMixed    ValidationMode = "mixed"
)

// NeedsGeofence reports whether the mode checks the device position.
func (m ValidationMode) NeedsGeofence() bool { return m == ModeGeofence || m == ModeMixed }

// NeedsCode reports whether the mode checks a partner code.
func (m ValidationMode) NeedsCode() bool { return m == ModeCode || m == ModeMixed }

// Route is one published itinerary. Routes are immutable once published.
type Route struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Difficulty  Difficulty   `json:"difficulty"`
	Active      bool         `json:"active"`
	Checkpoints []Checkpoint `json:"checkpoints,omitempty"`
}

// Checkpoint is a physical point of interest belonging to exactly one route.
type Checkpoint struct {
	ID            string         `json:"id"`
	RouteID       string         `json:"route_id"`
	Name          string         `json:"name"`
	Center        *geo.Point     `json:"center,omitempty"`
	RadiusM       float64        `json:"radius_m,omitempty"`
	Mode          ValidationMode `json:"mode"`
	PartnerCode   string         `json:"partner_code,omitempty"`
	FragmentIndex *int           `json:"fragment_index,omitempty"`
	RequiresPhoto bool           `json:"requires_photo"`
}

var (
	ErrUnknownMode         = errors.New("unknown validation mode")
	ErrPartnerCodeRequired = errors.New("partner code required by validation mode")
	ErrGeofenceRequired    = errors.New("center and radius required by validation mode")
)

// Validate checks the mode invariants of a checkpoint definition.
func (c Checkpoint) Validate() error {
	switch c.Mode {
	case ModeGeofence, ModeCode, ModeMixed:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, c.Mode)
	}
	if c.Mode.NeedsCode() && NormalizeCode(c.PartnerCode) == "" {
		return ErrPartnerCodeRequired
	}
	if c.Mode.NeedsGeofence() && (c.Center == nil || c.RadiusM <= 0) {
		return ErrGeofenceRequired
	}
	return nil
}

// HasFragment reports whether the checkpoint counts toward route completion.
func (c Checkpoint) HasFragment() bool { return c.FragmentIndex != nil }

// NormalizeCode strips every whitespace rune and upper-cases the rest, so
// partner codes compare case-insensitively.
func NormalizeCode(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
}
