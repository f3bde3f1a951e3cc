package pending

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gopassport/internal/client/models"
	"github.com/dmitrijs2005/gopassport/internal/common"
	"github.com/dmitrijs2005/gopassport/internal/dbx"
)

const selectColumns = `local_id, user_id, checkpoint_id, route_id, lat, lng, accuracy_m,
	photo_ref, partner_code, captured_at, state, sync_error, updated_at`

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
// Timestamps are stored as unix nanoseconds so ordering is exact.
type SQLiteRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func (r *SQLiteRepository) Enqueue(ctx context.Context, c *models.PendingCheckin) (string, error) {
	if c.LocalID == "" {
		c.LocalID = uuid.NewString()
	}
	if c.CapturedAt.IsZero() {
		c.CapturedAt = r.now()
	}
	c.State = models.StateUnsynced
	c.SyncError = ""
	c.UpdatedAt = r.now()

	var accuracy sql.NullFloat64
	if c.AccuracyM != nil {
		accuracy = sql.NullFloat64{Float64: *c.AccuracyM, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pending_checkins (local_id, user_id, checkpoint_id, route_id, lat, lng, accuracy_m,
			photo_ref, partner_code, captured_at, state, sync_error, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, '', ?)`,
		c.LocalID, c.UserID, c.CheckpointID, c.RouteID, c.Latitude, c.Longitude, accuracy,
		c.PhotoRef, c.PartnerCode, c.CapturedAt.UnixNano(), string(c.State), c.UpdatedAt.UnixNano())
	if err != nil {
		return "", fmt.Errorf("failed to enqueue check-in: %w", err)
	}
	return c.LocalID, nil
}

func (r *SQLiteRepository) ListUnsynced(ctx context.Context, userID string) ([]*models.PendingCheckin, error) {
	return r.list(ctx, `SELECT `+selectColumns+` FROM pending_checkins
		WHERE user_id = ? AND state = 'unsynced'
		ORDER BY captured_at ASC, local_id ASC`, userID)
}

func (r *SQLiteRepository) ListFailed(ctx context.Context, userID string) ([]*models.PendingCheckin, error) {
	return r.list(ctx, `SELECT `+selectColumns+` FROM pending_checkins
		WHERE user_id = ? AND state = 'failed'
		ORDER BY captured_at DESC, local_id ASC`, userID)
}

func (r *SQLiteRepository) MarkSynced(ctx context.Context, localID string) error {
	return r.transition(ctx, localID, models.StateSynced, "")
}

func (r *SQLiteRepository) MarkFailed(ctx context.Context, localID, reason string) error {
	return r.transition(ctx, localID, models.StateFailed, reason)
}

// transition moves an unsynced entry to state. Any other starting state is
// rejected with common.ErrInvalidTransition.
func (r *SQLiteRepository) transition(ctx context.Context, localID string, state models.State, reason string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pending_checkins SET state = ?, sync_error = ?, updated_at = ?
		WHERE local_id = ? AND state = 'unsynced'`,
		string(state), reason, r.now().UnixNano(), localID)
	if err != nil {
		return fmt.Errorf("failed to mark %s %s: %w", localID, state, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return fmt.Errorf("mark %s %s: %w", localID, state, common.ErrInvalidTransition)
	}
	return nil
}

func (r *SQLiteRepository) PurgeSyncedOlderThan(ctx context.Context, d time.Duration) (int64, error) {
	cutoff := r.now().Add(-d).UnixNano()
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM pending_checkins WHERE state = 'synced' AND updated_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge synced check-ins: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) Dismiss(ctx context.Context, localID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM pending_checkins WHERE local_id = ? AND state = 'failed'`, localID)
	if err != nil {
		return fmt.Errorf("failed to dismiss %s: %w", localID, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return fmt.Errorf("dismiss %s: %w", localID, common.ErrorNotFound)
	}
	return nil
}

func (r *SQLiteRepository) CountUnsynced(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pending_checkins WHERE user_id = ? AND state = 'unsynced'`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count unsynced check-ins: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]*models.PendingCheckin, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select check-ins: %w", err)
	}
	defer rows.Close()

	var result []*models.PendingCheckin
	for rows.Next() {
		var (
			c                   models.PendingCheckin
			accuracy            sql.NullFloat64
			state               string
			captured, updatedAt int64
		)
		if err := rows.Scan(&c.LocalID, &c.UserID, &c.CheckpointID, &c.RouteID, &c.Latitude, &c.Longitude,
			&accuracy, &c.PhotoRef, &c.PartnerCode, &captured, &state, &c.SyncError, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan check-in row: %w", err)
		}
		if accuracy.Valid {
			v := accuracy.Float64
			c.AccuracyM = &v
		}
		c.State = models.State(state)
		c.CapturedAt = time.Unix(0, captured).UTC()
		c.UpdatedAt = time.Unix(0, updatedAt).UTC()
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate check-in rows: %w", err)
	}
	return result, nil
}
