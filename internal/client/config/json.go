package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gopassport/internal/flagx"
	"github.com/dmitrijs2005/gopassport/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals use
// timex.Duration so they may be strings like "3s" or integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	DBPath              string         `json:"db_path"`
	AccessToken         string         `json:"access_token"`
	RetentionPeriod     timex.Duration `json:"retention_period"`
	SyncBackoffMax      timex.Duration `json:"sync_backoff_max"`
	LogBackend          string         `json:"log_backend"`
}

// parseJson overlays cfg with the file named by -c/-config. Keys missing from
// the file keep their current values.
func parseJson(cfg *Config, args []string) error {
	path := flagx.JsonConfigFlags(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	jc := JsonConfig{
		ServerEndpointAddr:  cfg.ServerEndpointAddr,
		OnlineCheckInterval: timex.Duration{Duration: cfg.OnlineCheckInterval},
		RequestTimeout:      timex.Duration{Duration: cfg.RequestTimeout},
		DBPath:              cfg.DBPath,
		AccessToken:         cfg.AccessToken,
		RetentionPeriod:     timex.Duration{Duration: cfg.RetentionPeriod},
		SyncBackoffMax:      timex.Duration{Duration: cfg.SyncBackoffMax},
		LogBackend:          cfg.LogBackend,
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	cfg.RequestTimeout = jc.RequestTimeout.Duration
	cfg.DBPath = jc.DBPath
	cfg.AccessToken = jc.AccessToken
	cfg.RetentionPeriod = jc.RetentionPeriod.Duration
	cfg.SyncBackoffMax = jc.SyncBackoffMax.Duration
	cfg.LogBackend = jc.LogBackend
	return nil
}
