package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gopassport/internal/common"
	"github.com/dmitrijs2005/gopassport/internal/dbx"
	"github.com/dmitrijs2005/gopassport/internal/passport"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/repomanager"
)

// crockford is the Crockford base32 alphabet: no I, L, O or U.
const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const passportNumberAttempts = 5

var errPassportNumberExhausted = errors.New("could not allocate a unique passport number")

// NewPassportNumber returns a number of the form BP-XXXX-XXXX.
func NewPassportNumber(r io.Reader) (string, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return "", err
	}
	out := []byte("BP-XXXX-XXXX")
	pos := []int{3, 4, 5, 6, 8, 9, 10, 11}
	for i, v := range b {
		out[pos[i]] = crockford[int(v)%len(crockford)]
	}
	return string(out), nil
}

type PassportService struct {
	db      dbx.DBTX
	tx      dbx.TxRunner
	repos   repomanager.RepositoryManager
	now     func() time.Time
	entropy io.Reader
}

func NewPassportService(db dbx.DBTX, tx dbx.TxRunner, repos repomanager.RepositoryManager) *PassportService {
	return &PassportService{db: db, tx: tx, repos: repos, now: time.Now, entropy: rand.Reader}
}

// Ensure creates the user's passport on first access. A number collision
// inserts nothing, so the loop retries with a fresh number.
func (s *PassportService) Ensure(ctx context.Context, db dbx.DBTX, userID string) (*passport.Passport, error) {
	repo := s.repos.Passports(db)

	p, err := repo.Get(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	for i := 0; i < passportNumberAttempts; i++ {
		number, err := NewPassportNumber(s.entropy)
		if err != nil {
			return nil, err
		}
		candidate := &passport.Passport{
			ID:        uuid.NewString(),
			UserID:    userID,
			Number:    number,
			CreatedAt: s.now().UTC(),
		}
		if _, err := repo.Create(ctx, candidate); err != nil {
			return nil, err
		}
		p, err := repo.Get(ctx, userID)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w for user %s", errPassportNumberExhausted, userID)
}

// View returns the passport, lazily creating it, with stamps and grants.
func (s *PassportService) View(ctx context.Context, userID string) (*passport.View, error) {
	view := &passport.View{}
	err := s.tx.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		p, err := s.Ensure(ctx, tx, userID)
		if err != nil {
			return err
		}
		view.Passport = *p

		if view.Stamps, err = s.repos.Stamps(tx).ListByUser(ctx, userID); err != nil {
			return err
		}
		view.Grants, err = s.repos.Rewards(tx).ListGrants(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
