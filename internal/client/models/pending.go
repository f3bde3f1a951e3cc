// Package models defines client-side data models used by the passport CLI.
package models

import "time"

// State is the lifecycle position of a queued check-in.
type State string

const (
	StateUnsynced State = "unsynced"
	StateSynced   State = "synced"
	StateFailed   State = "failed"
)

// PendingCheckin is a check-in attempt captured on the device and held until
// the server has ruled on it.
type PendingCheckin struct {
	LocalID      string
	UserID       string
	CheckpointID string
	RouteID      string
	Latitude     float64
	Longitude    float64
	// AccuracyM is the reported GPS accuracy; nil when the device gave none.
	AccuracyM   *float64
	PhotoRef    string
	PartnerCode string
	// CapturedAt is the device time of the attempt, replayed to the server.
	CapturedAt time.Time
	State      State
	SyncError  string
	UpdatedAt  time.Time
}
