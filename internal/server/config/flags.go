package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/gopassport/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string           gRPC bind address (e.g., ":50051")
//	-m string           HTTP bind address for health and metrics
//	-d string           PostgreSQL DSN or "memory"
//	-f string           route catalogue seed file
//	-s string           JWT HMAC secret key
//	-r string           redis address for the request throttle
//	-n string           NATS URL for domain events
//	-l string           log backend (slog|zap)
//	-rate-max int       stamps allowed per rate window
//	-rate-window dur    rate window
//	-min-cadence dur    minimum interval between stamps
//	-max-replay-age dur oldest accepted capture time
//	-u, -p, -b, -g, -e  S3 user, password, bucket, region, endpoint
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{
		"-a", "-m", "-d", "-f", "-s", "-r", "-n", "-l",
		"-rate-max", "-rate-window", "-min-cadence", "-max-replay-age",
		"-u", "-p", "-b", "-g", "-e",
	})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.EndpointAddrHTTP, "m", config.EndpointAddrHTTP, "address and port for health and metrics")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SeedFile, "f", config.SeedFile, "route catalogue seed file")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address")
	fs.StringVar(&config.NATSURL, "n", config.NATSURL, "NATS URL")
	fs.StringVar(&config.LogBackend, "l", config.LogBackend, "log backend")

	fs.IntVar(&config.RateLimitMax, "rate-max", config.RateLimitMax, "stamps per rate window")
	fs.DurationVar(&config.RateLimitWindow, "rate-window", config.RateLimitWindow, "rate window")
	fs.DurationVar(&config.MinCadence, "min-cadence", config.MinCadence, "minimum interval between stamps")
	fs.DurationVar(&config.MaxReplayAge, "max-replay-age", config.MaxReplayAge, "oldest accepted capture time")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	return fs.Parse(args)
}
