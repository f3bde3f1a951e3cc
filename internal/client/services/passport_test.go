package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gopassport/internal/client/client"
	"github.com/dmitrijs2005/gopassport/internal/passport"
)

func stubUpload(t *testing.T, fn func(ctx context.Context, url, contentType string, data []byte) error) {
	t.Helper()
	orig := uploadPhoto
	uploadPhoto = fn
	t.Cleanup(func() { uploadPhoto = orig })
}

func TestPassportService_Reads(t *testing.T) {
	fc := newFakeClient()
	fc.progress = &passport.Progress{RouteID: "r1", CompletionPercentage: 66}
	fc.passport = &passport.View{Passport: passport.Passport{Number: "BP-0000-0001"}}
	s := NewPassportService(fc)

	p, err := s.Progress(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, 66, p.CompletionPercentage)

	v, err := s.Passport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "BP-0000-0001", v.Passport.Number)
}

func TestPassportService_UploadPhoto(t *testing.T) {
	fc := newFakeClient()
	fc.photoKey = "checkins/u1/2025/07/01/k"
	fc.photoURL = "http://s3/put"
	s := NewPassportService(fc)

	var gotURL, gotCT string
	var gotData []byte
	stubUpload(t, func(_ context.Context, url, ct string, data []byte) error {
		gotURL, gotCT, gotData = url, ct, data
		return nil
	})

	key, err := s.UploadPhoto(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "checkins/u1/2025/07/01/k", key)
	assert.Equal(t, "http://s3/put", gotURL)
	assert.Equal(t, "image/png", gotCT)
	assert.Equal(t, []byte("img"), gotData)
}

func TestPassportService_UploadPhotoErrors(t *testing.T) {
	stubUpload(t, func(context.Context, string, string, []byte) error { return errors.New("403") })

	fc := newFakeClient()
	fc.photoKey = "k"
	_, err := NewPassportService(fc).UploadPhoto(context.Background(), []byte("img"), "image/jpeg")
	assert.ErrorContains(t, err, "upload k: 403")

	fc.err = client.ErrUnavailable
	_, err = NewPassportService(fc).UploadPhoto(context.Background(), []byte("img"), "image/jpeg")
	assert.ErrorIs(t, err, client.ErrUnavailable)
}
