// Package cli is the operator command line: migrations, withdrawal review, stale
// cooldown cleanup and account management.
package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/watchearn/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Database string
	Format   string // "json" | "text"
	Verbose  bool
}

var ValidFormats = []string{"text", "json"}

// Connector opens the backend a command acts on. The returned func releases it.
type Connector func(ctx context.Context, opts *RootOptions) (Backend, func(), error)

func NewRootCommand(connect Connector) *cobra.Command {
	opts := &RootOptions{}
	// A broken environment is reported by Connect; here it only loses the default DSN.
	var defaultDSN string
	if cfg, err := config.FromEnv(); err == nil {
		defaultDSN = cfg.Database
	}

	cmd := &cobra.Command{
		Use:   "watchearnctl",
		Short: "watchearn operator tool",
		Long:  "Administrative commands for a watchearn deployment. Reads DATABASE_URI unless --database is given.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.Database, "database", "d", defaultDSN, "database DSN")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging")

	cmd.AddCommand(NewMigrateCommand(opts, connect))
	cmd.AddCommand(NewWithdrawalsCommand(opts, connect))
	cmd.AddCommand(NewStatsCommand(opts, connect))
	cmd.AddCommand(NewCooldownsCommand(opts, connect))
	cmd.AddCommand(NewUsersCommand(opts, connect))

	return cmd
}

// withBackend connects, runs fn and releases the backend.
func withBackend(cmd *cobra.Command, opts *RootOptions, connect Connector, fn func(ctx context.Context, b Backend) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	b, release, err := connect(ctx, opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "connect", err)
	}
	defer release()
	return fn(ctx, b)
}
