// Package server wires the passport service together: storage, the route
// catalogue, the check-in pipeline, the gRPC endpoint and the operational
// HTTP endpoint.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/gopassport/internal/common"
	"github.com/dmitrijs2005/gopassport/internal/dbx"
	"github.com/dmitrijs2005/gopassport/internal/logging"
	"github.com/dmitrijs2005/gopassport/internal/server/config"
	"github.com/dmitrijs2005/gopassport/internal/server/events"
	"github.com/dmitrijs2005/gopassport/internal/server/httpserver"
	"github.com/dmitrijs2005/gopassport/internal/server/metrics"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/memory"
	"github.com/dmitrijs2005/gopassport/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gopassport/internal/server/services"
	"github.com/dmitrijs2005/gopassport/internal/server/throttle"

	gs "github.com/dmitrijs2005/gopassport/internal/server/grpc"
)

// storage is either PostgreSQL or the in-process store. db is nil for the
// latter, and so is handle: repositories treat a nil handle as direct access.
type storage struct {
	db     *sql.DB
	handle dbx.DBTX
	tx     dbx.TxRunner
	repos  repomanager.RepositoryManager
}

var sqlOpen = sql.Open

func openStorage(ctx context.Context, dsn string) (*storage, error) {
	if dsn == common.MemoryDSN {
		m := memory.NewManager()
		return &storage{tx: m, repos: m}, nil
	}

	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	repos := repomanager.NewPostgresRepositoryManager()
	if err := repos.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return &storage{db: db, handle: db, tx: dbx.NewSQLRunner(db, nil), repos: repos}, nil
}

func (s *storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ImportSeed loads the catalogue file at path into the store described by c.
func ImportSeed(ctx context.Context, c *config.Config, path string) (*services.Seed, error) {
	st, err := openStorage(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	defer st.Close()
	return importSeed(ctx, st, path)
}

func importSeed(ctx context.Context, st *storage, path string) (*services.Seed, error) {
	seed, err := services.LoadSeed(path)
	if err != nil {
		return nil, err
	}
	if err := services.NewCatalogService(st.tx, st.repos).Import(ctx, seed); err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return seed, nil
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	storage *storage
	rdb     *redis.Client
	nc      *nats.Conn
	grpc    *gs.GRPCServer
	http    *httpserver.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogBackend, os.Stdout)
	if err != nil {
		return nil, err
	}

	st, err := openStorage(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	app := &App{config: c, logger: logger, storage: st}

	if c.SeedFile != "" {
		seed, err := importSeed(ctx, st, c.SeedFile)
		if err != nil {
			app.close()
			return nil, err
		}
		logger.Info(ctx, "route catalogue imported", "routes", len(seed.Routes), "rewards", len(seed.Rewards))
	}

	var publisher events.Publisher = events.NopPublisher{}
	if c.NATSURL != "" {
		nc, err := events.Connect(c.NATSURL)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("nats connect error: %w", err)
		}
		app.nc = nc
		publisher = events.NewNATSPublisher(nc)
	}

	limiter := throttle.Nop()
	if rdb := throttle.Connect(c.RedisAddr); rdb != nil {
		app.rdb = rdb
		limiter = throttle.NewRedisLimiter(rdb, c.ThrottleLimit, c.ThrottleWindow)
	}

	m := metrics.New()

	passports := services.NewPassportService(st.handle, st.tx, st.repos)
	checkins := services.NewCheckinService(st.handle, st.tx, st.repos,
		services.NewGuard(c.RateLimitMax, c.RateLimitWindow, c.MinCadence),
		passports, publisher, m, logger.With("module", "checkin"), c.MaxReplayAge)
	photos := services.NewPhotoService(c)

	app.grpc, err = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, checkins, passports, photos, limiter, c.SecretKey)
	if err != nil {
		app.close()
		return nil, err
	}
	app.http = httpserver.New(c.EndpointAddrHTTP, logger.With("module", "http_server"), app.healthChecks(), m.Handler())

	return app, nil
}

func (app *App) healthChecks() map[string]httpserver.Checker {
	checks := map[string]httpserver.Checker{}
	if app.storage.db != nil {
		checks["postgres"] = httpserver.CheckFunc(app.storage.db.PingContext)
	}
	if app.rdb != nil {
		checks["redis"] = httpserver.CheckFunc(func(ctx context.Context) error {
			return app.rdb.Ping(ctx).Err()
		})
	}
	if app.nc != nil {
		checks["nats"] = httpserver.CheckFunc(func(context.Context) error {
			if !app.nc.IsConnected() {
				return errors.New(app.nc.Status().String())
			}
			return nil
		})
	}
	return checks
}

// Run serves gRPC and HTTP until ctx is cancelled or a signal arrives. If
// either server fails the other is stopped too.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...", "storage", app.storageKind())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.grpc.Run(gctx) })
	g.Go(func() error { return app.http.Run(gctx) })

	err := g.Wait()
	app.close()
	app.logger.Info(context.Background(), "App stopped")
	return err
}

func (app *App) storageKind() string {
	if app.storage.db == nil {
		return common.MemoryDSN
	}
	return "postgres"
}

func (app *App) close() {
	if app.nc != nil {
		app.nc.Close()
	}
	if app.rdb != nil {
		_ = app.rdb.Close()
	}
	if err := app.storage.Close(); err != nil {
		app.logger.Error(context.Background(), "db close", "error", err)
	}
}
