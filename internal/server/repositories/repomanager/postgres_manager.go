package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/gopassport/internal/dbx"
	"github.com/dmitrijs2005/gopassport/internal/server/migrations"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/passports"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/rewards"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/routes"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/stamps"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Routes(db dbx.DBTX) routes.Repository {
	return routes.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Stamps(db dbx.DBTX) stamps.Repository {
	return stamps.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Passports(db dbx.DBTX) passports.Repository {
	return passports.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Rewards(db dbx.DBTX) rewards.Repository {
	return rewards.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}
