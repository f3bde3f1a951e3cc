package client

import (
	"context"

	"github.com/dmitrijs2005/gopassport/internal/passport"
)

// Client is the device's view of the passport server.
//
// CheckIn sends a without its UserID; a zero CapturedAt marks a live
// attempt. It returns a *passport.CheckinError for rejections decided by the
// server; transport failures come back as ErrUnavailable, ErrUnauthorized or
// ErrInvalidRequest.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	CheckIn(ctx context.Context, a passport.Attempt) (*passport.Verdict, error)
	GetProgress(ctx context.Context, routeID string) (*passport.Progress, error)
	GetPassport(ctx context.Context) (*passport.View, error)
	PresignPhotoUpload(ctx context.Context, contentType string) (key, url string, err error)
}
