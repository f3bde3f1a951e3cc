// Command client is the traveller's check-in shell. Attempts made while the
// server is unreachable are queued locally and replayed on reconnect.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/gopassport/internal/client/cli"
	"github.com/dmitrijs2005/gopassport/internal/client/config"
)

func main() {
	if err := rootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd(in io.Reader, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passport",
		Short: "Collect passport stamps, online or offline",
		Long: `Starts an interactive shell for check-ins against the passport server.

Flags use the single-dash form and are layered over defaults, a JSON file
(-c), PASSPORT_* environment variables and .env:

  -a  server address        -i  online check interval (seconds)
  -t  request timeout       -db local queue database
  -token access token       -l  log backend (slog|zap)`,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(args)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := cli.NewApp(ctx, cfg, in, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return app.Run(ctx)
		},
	}
	cmd.SetOut(out)
	cmd.SetContext(context.Background())
	return cmd
}
