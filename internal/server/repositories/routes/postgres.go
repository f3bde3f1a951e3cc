package routes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gopassport/internal/common"
	"github.com/dmitrijs2005/gopassport/internal/dbx"
	"github.com/dmitrijs2005/gopassport/internal/geo"
	"github.com/dmitrijs2005/gopassport/internal/passport"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const checkpointColumns = `id, route_id, name, lat, lng, radius_m, mode, partner_code, fragment_index, requires_photo`

func (r *PostgresRepository) GetRoute(ctx context.Context, routeID string) (*passport.Route, error) {
	query :=
		`SELECT id, name, difficulty, active FROM routes
		 WHERE id = $1`

	route := &passport.Route{}
	err := r.db.QueryRowContext(ctx, query, routeID).Scan(&route.ID, &route.Name, &route.Difficulty, &route.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return route, nil
}

func (r *PostgresRepository) GetCheckpoint(ctx context.Context, checkpointID string) (*passport.Checkpoint, error) {
	query :=
		`SELECT ` + checkpointColumns + ` FROM checkpoints
		 WHERE id = $1`

	cp, err := scanCheckpoint(r.db.QueryRowContext(ctx, query, checkpointID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return cp, nil
}

func (r *PostgresRepository) FragmentCheckpoints(ctx context.Context, routeID string) ([]passport.Checkpoint, error) {
	query :=
		`SELECT ` + checkpointColumns + ` FROM checkpoints
		 WHERE route_id = $1 AND fragment_index IS NOT NULL
		 ORDER BY fragment_index`

	rows, err := r.db.QueryContext(ctx, query, routeID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []passport.Checkpoint
	for rows.Next() {
		cp, err := scanCheckpoint(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *cp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Save(ctx context.Context, route *passport.Route) error {
	query :=
		`INSERT INTO routes (id, name, difficulty, active)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, difficulty = EXCLUDED.difficulty, active = EXCLUDED.active`

	if _, err := r.db.ExecContext(ctx, query, route.ID, route.Name, route.Difficulty, route.Active); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	cpQuery :=
		`INSERT INTO checkpoints (` + checkpointColumns + `)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
		   name = EXCLUDED.name, lat = EXCLUDED.lat, lng = EXCLUDED.lng, radius_m = EXCLUDED.radius_m,
		   mode = EXCLUDED.mode, partner_code = EXCLUDED.partner_code,
		   fragment_index = EXCLUDED.fragment_index, requires_photo = EXCLUDED.requires_photo`

	for _, cp := range route.Checkpoints {
		var lat, lng, radius sql.NullFloat64
		if cp.Center != nil {
			lat = sql.NullFloat64{Float64: cp.Center.Lat, Valid: true}
			lng = sql.NullFloat64{Float64: cp.Center.Lng, Valid: true}
			radius = sql.NullFloat64{Float64: cp.RadiusM, Valid: true}
		}
		var code sql.NullString
		if cp.PartnerCode != "" {
			code = sql.NullString{String: cp.PartnerCode, Valid: true}
		}
		var fragment sql.NullInt64
		if cp.FragmentIndex != nil {
			fragment = sql.NullInt64{Int64: int64(*cp.FragmentIndex), Valid: true}
		}

		_, err := r.db.ExecContext(ctx, cpQuery,
			cp.ID, route.ID, cp.Name, lat, lng, radius, cp.Mode, code, fragment, cp.RequiresPhoto)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCheckpoint(row scanner) (*passport.Checkpoint, error) {
	cp := &passport.Checkpoint{}
	var lat, lng, radius sql.NullFloat64
	var code sql.NullString
	var fragment sql.NullInt64

	err := row.Scan(&cp.ID, &cp.RouteID, &cp.Name, &lat, &lng, &radius, &cp.Mode, &code, &fragment, &cp.RequiresPhoto)
	if err != nil {
		return nil, err
	}

	if lat.Valid && lng.Valid {
		cp.Center = &geo.Point{Lat: lat.Float64, Lng: lng.Float64}
		cp.RadiusM = radius.Float64
	}
	cp.PartnerCode = code.String
	if fragment.Valid {
		idx := int(fragment.Int64)
		cp.FragmentIndex = &idx
	}
	return cp, nil
}
