package passports

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gopassport/internal/common"
	"github.com/dmitrijs2005/gopassport/internal/passport"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewPostgresRepository(db), mock
}

var columns = []string{"id", "user_id", "number", "total_stamps", "completed_routes", "total_points", "created_at"}

func TestCreate(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	p := &passport.Passport{ID: "p1", UserID: "u1", Number: "BP-0000-0001", CreatedAt: now}
	q := `(?s)^INSERT\s+INTO\s+passports\s*\(id,\s*user_id,\s*number,\s*created_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*ON\s+CONFLICT\s+DO\s+NOTHING$`

	for _, tc := range []struct {
		name     string
		affected int64
		want     bool
	}{
		{"inserted", 1, true},
		{"conflict", 0, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			mock.ExpectExec(q).WithArgs("p1", "u1", "BP-0000-0001", now).WillReturnResult(sqlmock.NewResult(0, tc.affected))

			got, err := repo.Create(context.Background(), p)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetForUpdate_LocksRow(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now().UTC()
	mock.ExpectQuery(`(?s)FROM\s+passports\s+WHERE\s+user_id\s*=\s*\$1\s+FOR\s+UPDATE$`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("p1", "u1", "BP-AAAA-BBBB", 3, 1, 60, now))

	p, err := repo.GetForUpdate(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, p.TotalStamps)
	assert.Equal(t, 1, p.CompletedRoutes)
	assert.Equal(t, 60, p.TotalPoints)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`(?s)FROM\s+passports\s+WHERE\s+user_id\s*=\s*\$1$`).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAddStamp(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(`(?s)^UPDATE\s+passports\s+SET\s+total_stamps\s*=\s*total_stamps\s*\+\s*1,\s*total_points\s*=\s*total_points\s*\+\s*\$2\s+WHERE\s+user_id\s*=\s*\$1$`).
		WithArgs("u1", 35).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.AddStamp(context.Background(), "u1", 35))
}

func TestIncrementCompletedRoutes_Missing(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(`UPDATE\s+passports\s+SET\s+completed_routes`).WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.IncrementCompletedRoutes(context.Background(), "u1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
