package passports

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gopassport/internal/common"
	"github.com/dmitrijs2005/gopassport/internal/dbx"
	"github.com/dmitrijs2005/gopassport/internal/passport"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const passportColumns = `id, user_id, number, total_stamps, completed_routes, total_points, created_at`

func (r *PostgresRepository) Create(ctx context.Context, p *passport.Passport) (bool, error) {
	query :=
		`INSERT INTO passports (id, user_id, number, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT DO NOTHING`

	res, err := r.db.ExecContext(ctx, query, p.ID, p.UserID, p.Number, p.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n == 1, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*passport.Passport, error) {
	query :=
		`SELECT ` + passportColumns + ` FROM passports
		 WHERE user_id = $1`
	return r.get(ctx, query, userID)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, userID string) (*passport.Passport, error) {
	query :=
		`SELECT ` + passportColumns + ` FROM passports
		 WHERE user_id = $1
		 FOR UPDATE`
	return r.get(ctx, query, userID)
}

func (r *PostgresRepository) get(ctx context.Context, query, userID string) (*passport.Passport, error) {
	p := &passport.Passport{}
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&p.ID, &p.UserID, &p.Number, &p.TotalStamps, &p.CompletedRoutes, &p.TotalPoints, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) AddStamp(ctx context.Context, userID string, points int) error {
	query :=
		`UPDATE passports
		 SET total_stamps = total_stamps + 1, total_points = total_points + $2
		 WHERE user_id = $1`
	return r.update(ctx, query, userID, points)
}

func (r *PostgresRepository) IncrementCompletedRoutes(ctx context.Context, userID string) error {
	query :=
		`UPDATE passports
		 SET completed_routes = completed_routes + 1
		 WHERE user_id = $1`
	return r.update(ctx, query, userID)
}

func (r *PostgresRepository) update(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
