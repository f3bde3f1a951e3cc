// Package config loads runtime configuration for the passport client:
// defaults, an optional JSON file, environment variables and command-line
// flags, in that order of precedence.
package config

import (
	"time"

	"github.com/dmitrijs2005/gopassport/internal/logging"
)

// Config holds runtime settings for the passport CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - OnlineCheckInterval: how often the client pings the server for reachability.
//   - RequestTimeout: upper bound for a single server call.
//   - DBPath: SQLite file holding the pending check-in queue.
//   - AccessToken: JWT sent with every call except Ping.
//   - RetentionPeriod: synced queue entries older than this are purged.
//   - SyncBackoffMax: give up retrying a background sync after this long.
type Config struct {
	ServerEndpointAddr  string        `env:"PASSPORT_SERVER_ADDR"`
	OnlineCheckInterval time.Duration `env:"PASSPORT_ONLINE_CHECK_INTERVAL"`
	RequestTimeout      time.Duration `env:"PASSPORT_REQUEST_TIMEOUT"`
	DBPath              string        `env:"PASSPORT_DB_PATH"`
	AccessToken         string        `env:"PASSPORT_ACCESS_TOKEN"`
	RetentionPeriod     time.Duration `env:"PASSPORT_RETENTION_PERIOD"`
	SyncBackoffMax      time.Duration `env:"PASSPORT_SYNC_BACKOFF_MAX"`
	LogBackend          string        `env:"PASSPORT_LOG_BACKEND"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 10 * time.Second
	c.DBPath = "passport.db"
	c.RetentionPeriod = 7 * 24 * time.Hour
	c.SyncBackoffMax = 5 * time.Minute
	c.LogBackend = logging.BackendSlog
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if -c/-config is given), the environment and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
