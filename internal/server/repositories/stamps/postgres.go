package stamps

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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

const stampColumns = `id, user_id, checkpoint_id, route_id, lat, lng, accuracy_m, photo_ref, points, created_at, recorded_at`

func (r *PostgresRepository) Exists(ctx context.Context, userID, checkpointID string) (bool, error) {
	query :=
		`SELECT EXISTS (SELECT 1 FROM stamps WHERE user_id = $1 AND checkpoint_id = $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, checkpointID).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) CreatedBetween(ctx context.Context, userID string, from, to time.Time) ([]time.Time, error) {
	query :=
		`SELECT created_at FROM stamps
		 WHERE user_id = $1 AND created_at > $2 AND created_at < $3
		 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []time.Time
	for rows.Next() {
		var at time.Time
		if err := rows.Scan(&at); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, at)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) MostRecent(ctx context.Context, userID string, asOf time.Time) (*passport.Stamp, error) {
	query :=
		`SELECT ` + stampColumns + ` FROM stamps
		 WHERE user_id = $1 AND created_at <= $2
		 ORDER BY created_at DESC
		 LIMIT 1`

	s, err := scanStamp(r.db.QueryRowContext(ctx, query, userID, asOf))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) FirstSince(ctx context.Context, userID string, from time.Time) (*passport.Stamp, error) {
	query :=
		`SELECT ` + stampColumns + ` FROM stamps
		 WHERE user_id = $1 AND created_at >= $2
		 ORDER BY created_at
		 LIMIT 1`

	s, err := scanStamp(r.db.QueryRowContext(ctx, query, userID, from))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) Append(ctx context.Context, s *passport.Stamp) error {
	query :=
		`INSERT INTO stamps (` + stampColumns + `)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (user_id, checkpoint_id) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query,
		s.ID, s.UserID, s.CheckpointID, s.RouteID,
		s.Position.Lat, s.Position.Lng, s.Position.AccuracyM,
		s.PhotoRef, s.Points, s.CreatedAt, s.RecordedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrDuplicateStamp
	}
	return nil
}

func (r *PostgresRepository) StampedCheckpoints(ctx context.Context, userID, routeID string) (map[string]time.Time, error) {
	query :=
		`SELECT checkpoint_id, created_at FROM stamps
		 WHERE user_id = $1 AND route_id = $2`

	rows, err := r.db.QueryContext(ctx, query, userID, routeID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make(map[string]time.Time)
	for rows.Next() {
		var id string
		var at time.Time
		if err := rows.Scan(&id, &at); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result[id] = at
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]passport.Stamp, error) {
	query :=
		`SELECT ` + stampColumns + ` FROM stamps
		 WHERE user_id = $1
		 ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []passport.Stamp
	for rows.Next() {
		s, err := scanStamp(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStamp(row scanner) (*passport.Stamp, error) {
	s := &passport.Stamp{}
	var acc sql.NullFloat64
	err := row.Scan(&s.ID, &s.UserID, &s.CheckpointID, &s.RouteID,
		&s.Position.Lat, &s.Position.Lng, &acc,
		&s.PhotoRef, &s.Points, &s.CreatedAt, &s.RecordedAt)
	if err != nil {
		return nil, err
	}
	if acc.Valid {
		v := acc.Float64
		s.Position.AccuracyM = &v
	}
	return s, nil
}
