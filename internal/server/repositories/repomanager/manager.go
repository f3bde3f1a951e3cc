// Package repomanager vends repositories bound to a database handle, so the
// same service code can run on a plain connection or inside a transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gopassport/internal/dbx"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/passports"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/rewards"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/routes"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/stamps"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Routes(db dbx.DBTX) routes.Repository
	Stamps(db dbx.DBTX) stamps.Repository
	Passports(db dbx.DBTX) passports.Repository
	Rewards(db dbx.DBTX) rewards.Repository
}
