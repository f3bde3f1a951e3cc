// Command server runs the passport check-in service.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/gopassport/internal/auth"
	"github.com/dmitrijs2005/gopassport/internal/server"
	"github.com/dmitrijs2005/gopassport/internal/server/config"
)

func main() {
	if err := rootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passport-server",
		Short: "Digital passport check-in service",
		Long: `Runs the gRPC check-in endpoint and the HTTP health/metrics endpoint.

Flags use the single-dash form and are layered over defaults, a JSON file
(-c), PASSPORT_* environment variables and .env:

  -a  gRPC address          -m  HTTP address        -d  database DSN or "memory"
  -f  seed file             -s  JWT secret          -r  redis address
  -n  NATS URL              -l  log backend         -rate-max, -rate-window,
  -min-cadence, -max-replay-age, -u/-p/-b/-g/-e (S3)`,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(args)
			if err != nil {
				return err
			}
			app, err := server.NewApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context())
		},
	}
	cmd.SetOut(out)
	cmd.SetContext(context.Background())

	cmd.AddCommand(tokenCmd(), seedCmd())
	return cmd
}

// tokenCmd mints an access token for local testing.
func tokenCmd() *cobra.Command {
	var (
		userID string
		secret string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print an access token for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(nil)
			if err != nil {
				return err
			}
			if secret == "" {
				secret = cfg.SecretKey
			}
			if ttl == 0 {
				ttl = cfg.AccessTokenValidityDuration
			}

			token, err := auth.GenerateToken(userID, []byte(secret), ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id to put in the token")
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret (defaults to the configured one)")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token validity (defaults to the configured one)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

// seedCmd imports a route catalogue into the configured database.
func seedCmd() *cobra.Command {
	var (
		file string
		dsn  string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import routes, checkpoints and rewards from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(nil)
			if err != nil {
				return err
			}
			if dsn != "" {
				cfg.DatabaseDSN = dsn
			}

			seed, err := server.ImportSeed(cmd.Context(), cfg, file)
			if err != nil {
				return err
			}
			checkpoints := 0
			for _, r := range seed.Routes {
				checkpoints += len(r.Checkpoints)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d routes, %d checkpoints, %d rewards\n",
				len(seed.Routes), checkpoints, len(seed.Rewards))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "seed file")
	cmd.Flags().StringVar(&dsn, "dsn", "", "database DSN (defaults to the configured one)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
