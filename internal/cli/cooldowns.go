package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func NewCooldownsCommand(rootOpts *RootOptions, connect Connector) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cooldowns",
		Short: "Maintain cooldowns",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "reap",
		Short: "Interrupt active cooldowns that were never confirmed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd, rootOpts, connect, func(ctx context.Context, b Backend) error {
				n, err := b.ReapCooldowns(ctx)
				if err != nil {
					return WrapExitError(ExitFailure, "reap cooldowns", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "interrupted %d stale cooldowns\n", n)
				return nil
			})
		},
	})
	return cmd
}
