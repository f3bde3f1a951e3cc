package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gopassport/internal/client/client"
	"github.com/dmitrijs2005/gopassport/internal/netx"
	"github.com/dmitrijs2005/gopassport/internal/passport"
)

// uploadPhoto is a seam for netx.UploadPhoto.
var uploadPhoto = netx.UploadPhoto

// PassportService serves read-only views and photo uploads. These need the
// server and are not queued.
type PassportService struct {
	client client.Client
}

func NewPassportService(c client.Client) *PassportService {
	return &PassportService{client: c}
}

func (s *PassportService) Progress(ctx context.Context, routeID string) (*passport.Progress, error) {
	return s.client.GetProgress(ctx, routeID)
}

func (s *PassportService) Passport(ctx context.Context) (*passport.View, error) {
	return s.client.GetPassport(ctx)
}

// UploadPhoto stores a photo in object storage and returns the key to attach
// to a check-in as its photo reference.
func (s *PassportService) UploadPhoto(ctx context.Context, data []byte, contentType string) (string, error) {
	key, url, err := s.client.PresignPhotoUpload(ctx, contentType)
	if err != nil {
		return "", err
	}
	if err := uploadPhoto(ctx, url, contentType, data); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return key, nil
}
