package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/gopassport/internal/auth"
	"github.com/dmitrijs2005/gopassport/internal/client/client"
	"github.com/dmitrijs2005/gopassport/internal/client/config"
	"github.com/dmitrijs2005/gopassport/internal/client/connectivity"
	"github.com/dmitrijs2005/gopassport/internal/client/models"
	"github.com/dmitrijs2005/gopassport/internal/client/services"
	"github.com/dmitrijs2005/gopassport/internal/logging"
	"github.com/dmitrijs2005/gopassport/internal/passport"
)

type checkinService interface {
	CheckIn(ctx context.Context, a *models.PendingCheckin) (*services.CheckinResult, error)
	SyncPending(ctx context.Context, userID string) (services.SyncResult, error)
	WatchConnectivity(ctx context.Context, userID string, report func(services.SyncResult, error)) (stop func())
	Pending(ctx context.Context, userID string) ([]*models.PendingCheckin, error)
	Failed(ctx context.Context, userID string) ([]*models.PendingCheckin, error)
	Dismiss(ctx context.Context, localID string) error
	Purge(ctx context.Context) (int64, error)
	Status(ctx context.Context, userID string) (services.Status, error)
}

type passportService interface {
	Progress(ctx context.Context, routeID string) (*passport.Progress, error)
	Passport(ctx context.Context) (*passport.View, error)
	UploadPhoto(ctx context.Context, data []byte, contentType string) (string, error)
}

type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	api       client.Client
	monitor   *connectivity.Monitor
	checkins  checkinService
	passports passportService
	userID    string

	in     io.Reader
	outMu  sync.Mutex
	out    io.Writer
	closer func() error
}

// NewApp opens the queue database and prepares the server client. When no
// access token is configured it is read from in.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out io.Writer) (*App, error) {
	logger, err := logging.New(c.LogBackend, os.Stderr)
	if err != nil {
		return nil, err
	}

	token := c.AccessToken
	if token == "" {
		token, err = GetSecret("Access token", in, out)
		if err != nil {
			return nil, fmt.Errorf("read access token: %w", err)
		}
	}
	userID, err := auth.UserIDUnverified(token)
	if err != nil {
		return nil, fmt.Errorf("access token: %w", err)
	}

	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	api, err := client.NewPassportClient(c.ServerEndpointAddr, token, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	monitor := connectivity.NewMonitor(logger)
	repos := client.NewRepositories(db)

	return &App{
		config:    c,
		logger:    logger,
		db:        db,
		api:       api,
		monitor:   monitor,
		checkins:  services.NewCheckinService(api, repos, monitor, logger, c.RetentionPeriod, c.SyncBackoffMax),
		passports: services.NewPassportService(api),
		userID:    userID,
		in:        in,
		out:       out,
		closer: func() error {
			return errors.Join(api.Close(), db.Close())
		},
	}, nil
}

// Run starts the connectivity watcher and background sync, then blocks in
// the REPL until the user exits or ctx is done. On return the background
// work is cancelled and waited for before the database is closed.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	stop := a.checkins.WatchConnectivity(ctx, a.userID, func(res services.SyncResult, err error) {
		a.printSync("Background sync", res, err)
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.monitor.Run(ctx, a.config.OnlineCheckInterval, a.api.Ping)
	}()

	defer func() {
		cancel()
		wg.Wait()
		stop()
		if err := a.Close(); err != nil {
			a.logger.Warn(context.Background(), "close", "error", err)
		}
	}()

	if n, err := a.checkins.Purge(ctx); err != nil {
		a.logger.Warn(ctx, "purge synced check-ins", "error", err)
	} else if n > 0 {
		a.logger.Debug(ctx, "purged synced check-ins", "count", n)
	}

	a.Root(ctx)
	return nil
}

func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer()
	a.closer = nil
	return err
}

func (a *App) isOnline() bool {
	return a.monitor != nil && a.monitor.Online()
}

func (a *App) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}
