package rewards

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gopassport/internal/dbx"
	"github.com/dmitrijs2005/gopassport/internal/passport"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByRoute(ctx context.Context, routeID string) ([]passport.Reward, error) {
	query :=
		`SELECT id, route_id, title, description FROM rewards
		 WHERE route_id = $1
		 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, routeID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []passport.Reward
	for rows.Next() {
		var rw passport.Reward
		if err := rows.Scan(&rw.ID, &rw.RouteID, &rw.Title, &rw.Description); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, rw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Save(ctx context.Context, rw *passport.Reward) error {
	query :=
		`INSERT INTO rewards (id, route_id, title, description)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, description = EXCLUDED.description`

	if _, err := r.db.ExecContext(ctx, query, rw.ID, rw.RouteID, rw.Title, rw.Description); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) RecordCompletion(ctx context.Context, userID, routeID string, at time.Time) (bool, error) {
	query :=
		`INSERT INTO route_completions (user_id, route_id, completed_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, route_id) DO NOTHING`
	return r.insertOnce(ctx, query, userID, routeID, at)
}

func (r *PostgresRepository) Grant(ctx context.Context, g passport.Grant) (bool, error) {
	query :=
		`INSERT INTO reward_grants (user_id, reward_id, route_id, granted_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, reward_id) DO NOTHING`
	return r.insertOnce(ctx, query, g.UserID, g.RewardID, g.RouteID, g.GrantedAt)
}

func (r *PostgresRepository) insertOnce(ctx context.Context, query string, args ...any) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n == 1, nil
}

func (r *PostgresRepository) ListGrants(ctx context.Context, userID string) ([]passport.Grant, error) {
	query :=
		`SELECT user_id, route_id, reward_id, granted_at FROM reward_grants
		 WHERE user_id = $1
		 ORDER BY granted_at, reward_id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []passport.Grant
	for rows.Next() {
		var g passport.Grant
		if err := rows.Scan(&g.UserID, &g.RouteID, &g.RewardID, &g.GrantedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
