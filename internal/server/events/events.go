// Package events publishes passport domain events after a check-in commits.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/dmitrijs2005/gopassport/internal/passport"
)

const (
	SubjectStampCreated   = "passport.stamp.created"
	SubjectRouteCompleted = "passport.route.completed"
	SubjectRewardUnlocked = "passport.reward.unlocked"
)

type StampCreated struct {
	Stamp passport.Stamp `json:"stamp"`
}

type RouteCompleted struct {
	UserID      string    `json:"user_id"`
	RouteID     string    `json:"route_id"`
	CompletedAt time.Time `json:"completed_at"`
}

type RewardUnlocked struct {
	UserID string          `json:"user_id"`
	Reward passport.Reward `json:"reward"`
}

type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

// conn is the part of *nats.Conn the publisher needs.
type conn interface {
	Publish(subj string, data []byte) error
}

type NATSPublisher struct {
	nc conn
}

func NewNATSPublisher(nc *nats.Conn) *NATSPublisher {
	return &NATSPublisher{nc: nc}
}

// Connect dials NATS with reconnects enabled for the lifetime of the server.
func Connect(url string) (*nats.Conn, error) {
	return nats.Connect(url,
		nats.Name("passport-server"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
}

func (p *NATSPublisher) Publish(ctx context.Context, subject string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", subject, err)
	}
	if err := p.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// NopPublisher drops every event. Used when no NATS URL is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
