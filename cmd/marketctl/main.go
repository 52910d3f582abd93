// Command marketctl is the operator CLI: demo data, outbox retention and event inspection.
package main

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/spanner"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
	"github.com/light-bringer/aptmart-service/internal/pkg/config"
	"github.com/light-bringer/aptmart-service/internal/pkg/logging"
)

// env is what every subcommand shares.
type env struct {
	cfg    config.Config
	log    *logging.Logger
	client *spanner.Client
	clock  clock.Clock
}

func (e *env) committer() *committer.Committer {
	return committer.NewCommitter(e.client)
}

// close releases the Spanner client. It runs after Execute returns, whether or not a command failed.
func (e *env) close() {
	if e.client != nil {
		e.client.Close()
		e.client = nil
	}
}

func newRootCmd(e *env) *cobra.Command {
	var database string

	root := &cobra.Command{
		Use:           "marketctl",
		Short:         "Operate the apartment marketplace",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()
			if err := config.ParseEnv(&e.cfg); err != nil {
				return err
			}
			if database != "" {
				e.cfg.SpannerDatabase = database
			}
			e.log = logging.New(e.cfg.LogLevel, "text")

			client, err := spanner.NewClient(cmd.Context(), e.cfg.SpannerDatabase)
			if err != nil {
				return fmt.Errorf("failed to create Spanner client: %w", err)
			}
			e.client = client
			return nil
		},
	}
	root.PersistentFlags().StringVar(&database, "database", "", "Spanner database path (defaults to SPANNER_DATABASE)")

	root.AddCommand(
		newSeedCmd(e),
		newCleanupOutboxCmd(e),
		newEventsCmd(e),
	)
	return root
}

func main() {
	e := &env{clock: clock.NewRealClock()}
	err := newRootCmd(e).ExecuteContext(context.Background())
	e.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
