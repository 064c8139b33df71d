package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/watchearn/pkg/money"
)

func NewUsersCommand(rootOpts *RootOptions, connect Connector) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage accounts",
	}
	cmd.AddCommand(newSetActiveCommand(rootOpts, connect, "activate", true))
	cmd.AddCommand(newSetActiveCommand(rootOpts, connect, "deactivate", false))
	cmd.AddCommand(newSetRoleCommand(rootOpts, connect))
	cmd.AddCommand(newBalanceCommand(rootOpts, connect))
	return cmd
}

func parseUserID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, WrapExitError(ExitCommandError, fmt.Sprintf("invalid user id %q", raw), err)
	}
	return id, nil
}

func newSetActiveCommand(rootOpts *RootOptions, connect Connector, use string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <user-id>",
		Short: "Mark an account as able to earn and withdraw, or not",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUserID(args[0])
			if err != nil {
				return err
			}
			return withBackend(cmd, rootOpts, connect, func(ctx context.Context, b Backend) error {
				if err := b.SetActive(ctx, id, active); err != nil {
					return WrapExitError(ExitFailure, use, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "user %d %sd\n", id, use)
				return nil
			})
		},
	}
}

func newSetRoleCommand(rootOpts *RootOptions, connect Connector) *cobra.Command {
	return &cobra.Command{
		Use:   "role <user-id> <user|admin>",
		Short: "Change an account's role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUserID(args[0])
			if err != nil {
				return err
			}
			return withBackend(cmd, rootOpts, connect, func(ctx context.Context, b Backend) error {
				if err := b.SetRole(ctx, id, args[1]); err != nil {
					return WrapExitError(ExitFailure, "set role", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "user %d is now %s\n", id, args[1])
				return nil
			})
		},
	}
}

type balanceOutput struct {
	UserID    int    `json:"user_id"`
	Available string `json:"available"`
}

func newBalanceCommand(rootOpts *RootOptions, connect Connector) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <user-id>",
		Short: "Show the amount a user can withdraw",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUserID(args[0])
			if err != nil {
				return err
			}
			return withBackend(cmd, rootOpts, connect, func(ctx context.Context, b Backend) error {
				cents, err := b.AvailableBalance(ctx, id)
				if err != nil {
					return WrapExitError(ExitFailure, "balance", err)
				}
				out := balanceOutput{UserID: id, Available: money.Format(cents)}
				f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
				return f.Print(out, func(w io.Writer) {
					fmt.Fprintln(w, "USER\tAVAILABLE")
					fmt.Fprintf(w, "%d\t%s\n", out.UserID, out.Available)
				})
			})
		},
	}
}
