package passport

import (
	"time"

	"github.com/dmitrijs2005/gopassport/internal/geo"
)

// Passport is a user's cumulative record. One per user, created lazily and
// never deleted.
type Passport struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Number          string    `json:"number"`
	TotalStamps     int       `json:"total_stamps"`
	CompletedRoutes int       `json:"completed_routes"`
	TotalPoints     int       `json:"total_points"`
	CreatedAt       time.Time `json:"created_at"`
}

// Stamp is the immutable record of one accepted check-in.
//
// CreatedAt is the moment the attempt happened on the device (the capture
// time for replayed attempts); RecordedAt is when the ledger accepted it.
type Stamp struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	CheckpointID string       `json:"checkpoint_id"`
	RouteID      string       `json:"route_id"`
	Position     geo.Position `json:"position"`
	PhotoRef     string       `json:"photo_ref,omitempty"`
	Points       int          `json:"points"`
	CreatedAt    time.Time    `json:"created_at"`
	RecordedAt   time.Time    `json:"recorded_at"`
}

// Reward belongs to a route and is granted once per user on completion.
type Reward struct {
	ID          string `json:"id"`
	RouteID     string `json:"route_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Grant records that a reward was unlocked for a user.
type Grant struct {
	UserID    string    `json:"user_id"`
	RouteID   string    `json:"route_id"`
	RewardID  string    `json:"reward_id"`
	GrantedAt time.Time `json:"granted_at"`
}

// View is a user's passport with everything it has collected.
type View struct {
	Passport Passport `json:"passport"`
	Stamps   []Stamp  `json:"stamps"`
	Grants   []Grant  `json:"grants"`
}

// Attempt is one check-in attempt as captured on the device.
type Attempt struct {
	UserID       string
	CheckpointID string
	Position     geo.Position
	PartnerCode  string
	PhotoRef     string
	// CapturedAt is zero for live attempts evaluated at server time.
	CapturedAt time.Time
}

// FragmentProgress is the collection state of one fragment-bearing checkpoint.
type FragmentProgress struct {
	CheckpointID  string     `json:"checkpoint_id"`
	FragmentIndex int        `json:"fragment_index"`
	Collected     bool       `json:"collected"`
	CollectedAt   *time.Time `json:"collected_at,omitempty"`
}

// Progress is a user's completion state on one route.
type Progress struct {
	RouteID              string             `json:"route_id"`
	TotalFragments       int                `json:"total_fragments"`
	CollectedFragments   int                `json:"collected_fragments"`
	CompletionPercentage int                `json:"completion_percentage"`
	Fragments            []FragmentProgress `json:"fragments"`
}

// Complete reports whether every fragment of a route with at least one
// fragment has been collected.
func (p Progress) Complete() bool {
	return p.TotalFragments > 0 && p.CollectedFragments == p.TotalFragments
}

// Verdict is the outcome of an accepted check-in.
type Verdict struct {
	Stamp          *Stamp   `json:"stamp"`
	Progress       Progress `json:"progress"`
	RouteCompleted bool     `json:"route_completed"`
	Rewards        []Reward `json:"rewards,omitempty"`
}
