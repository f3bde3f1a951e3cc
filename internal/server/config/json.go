package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gopassport/internal/flagx"
	"github.com/dmitrijs2005/gopassport/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration. Durations use
// timex.Duration so they may be written as "30s" or as nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP            string         `json:"endpoint_addr_http"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SeedFile                    string         `json:"seed_file"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	RateLimitMax                int            `json:"rate_limit_max"`
	RateLimitWindow             timex.Duration `json:"rate_limit_window"`
	MinCadence                  timex.Duration `json:"min_cadence"`
	MaxReplayAge                timex.Duration `json:"max_replay_age"`
	RedisAddr                   string         `json:"redis_addr"`
	ThrottleLimit               int            `json:"throttle_limit"`
	ThrottleWindow              timex.Duration `json:"throttle_window"`
	NATSURL                     string         `json:"nats_url"`
	S3RootUser                  string         `json:"s3_root_user"`
	S3RootPassword              string         `json:"s3_root_password"`
	S3Bucket                    string         `json:"s3_bucket"`
	S3Region                    string         `json:"s3_region"`
	S3BaseEndpoint              string         `json:"s3_base_endpoint"`
	LogBackend                  string         `json:"log_backend"`
}

// parseJson overlays cfg with the file given by -c/-config. Keys missing from
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

	jc := toJson(cfg)
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	fromJson(cfg, jc)
	return nil
}

func toJson(c *Config) JsonConfig {
	return JsonConfig{
		EndpointAddrGRPC:            c.EndpointAddrGRPC,
		EndpointAddrHTTP:            c.EndpointAddrHTTP,
		DatabaseDSN:                 c.DatabaseDSN,
		SeedFile:                    c.SeedFile,
		SecretKey:                   c.SecretKey,
		AccessTokenValidityDuration: timex.Duration{Duration: c.AccessTokenValidityDuration},
		RateLimitMax:                c.RateLimitMax,
		RateLimitWindow:             timex.Duration{Duration: c.RateLimitWindow},
		MinCadence:                  timex.Duration{Duration: c.MinCadence},
		MaxReplayAge:                timex.Duration{Duration: c.MaxReplayAge},
		RedisAddr:                   c.RedisAddr,
		ThrottleLimit:               c.ThrottleLimit,
		ThrottleWindow:              timex.Duration{Duration: c.ThrottleWindow},
		NATSURL:                     c.NATSURL,
		S3RootUser:                  c.S3RootUser,
		S3RootPassword:              c.S3RootPassword,
		S3Bucket:                    c.S3Bucket,
		S3Region:                    c.S3Region,
		S3BaseEndpoint:              c.S3BaseEndpoint,
		LogBackend:                  c.LogBackend,
	}
}

func fromJson(c *Config, jc JsonConfig) {
	c.EndpointAddrGRPC = jc.EndpointAddrGRPC
	c.EndpointAddrHTTP = jc.EndpointAddrHTTP
	c.DatabaseDSN = jc.DatabaseDSN
	c.SeedFile = jc.SeedFile
	c.SecretKey = jc.SecretKey
	c.AccessTokenValidityDuration = jc.AccessTokenValidityDuration.Duration
	c.RateLimitMax = jc.RateLimitMax
	c.RateLimitWindow = jc.RateLimitWindow.Duration
	c.MinCadence = jc.MinCadence.Duration
	c.MaxReplayAge = jc.MaxReplayAge.Duration
	c.RedisAddr = jc.RedisAddr
	c.ThrottleLimit = jc.ThrottleLimit
	c.ThrottleWindow = jc.ThrottleWindow.Duration
	c.NATSURL = jc.NATSURL
	c.S3RootUser = jc.S3RootUser
	c.S3RootPassword = jc.S3RootPassword
	c.S3Bucket = jc.S3Bucket
	c.S3Region = jc.S3Region
	c.S3BaseEndpoint = jc.S3BaseEndpoint
	c.LogBackend = jc.LogBackend
}
