package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/internal/dto"
)

func NewWithdrawalsCommand(rootOpts *RootOptions, connect Connector) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdrawals",
		Short: "Review withdrawal requests",
	}
	cmd.AddCommand(newWithdrawalsListCommand(rootOpts, connect))
	cmd.AddCommand(newWithdrawalsResolveCommand(rootOpts, connect))
	return cmd
}

func newWithdrawalsListCommand(rootOpts *RootOptions, connect Connector) *cobra.Command {
	var (
		status string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List withdrawals, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd, rootOpts, connect, func(ctx context.Context, b Backend) error {
				withdrawals, err := b.ListWithdrawals(ctx, domain.WithdrawalStatus(status), limit)
				if err != nil {
					return WrapExitError(ExitFailure, "list withdrawals", err)
				}
				out := make([]dto.WithdrawalDTO, len(withdrawals))
				for i := range withdrawals {
					out[i] = dto.NewWithdrawal(&withdrawals[i])
				}
				f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
				return f.Print(out, func(w io.Writer) {
					fmt.Fprintln(w, "ID\tUSER\tAMOUNT\tMETHOD\tSTATUS\tCREATED")
					for _, wd := range out {
						fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n",
							wd.ID, wd.UserID, wd.Amount, wd.PaymentMethod, wd.Status, wd.CreatedAt.Format("2006-01-02 15:04"))
					}
				})
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by status (pending|completed|rejected)")
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum rows")
	return cmd
}

func newWithdrawalsResolveCommand(rootOpts *RootOptions, connect Connector) *cobra.Command {
	var outcome, notes string
	cmd := &cobra.Command{
		Use:   "resolve <id>",
		Short: "Complete or reject a pending withdrawal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid withdrawal id", err)
			}
			return withBackend(cmd, rootOpts, connect, func(ctx context.Context, b Backend) error {
				wd, err := b.ResolveWithdrawal(ctx, id, domain.WithdrawalStatus(outcome), notes)
				if err != nil {
					return WrapExitError(ExitFailure, "resolve withdrawal", err)
				}
				out := dto.NewWithdrawal(wd)
				f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
				return f.Print(out, func(w io.Writer) {
					fmt.Fprintf(w, "withdrawal %s %s\t%s\n", out.ID, out.Status, out.Amount)
				})
			})
		},
	}
	cmd.Flags().StringVar(&outcome, "outcome", "", "completed or rejected")
	cmd.Flags().StringVar(&notes, "notes", "", "note stored with the decision")
	_ = cmd.MarkFlagRequired("outcome")
	return cmd
}

func NewStatsCommand(rootOpts *RootOptions, connect Connector) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show platform totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd, rootOpts, connect, func(ctx context.Context, b Backend) error {
				stats, err := b.Stats(ctx)
				if err != nil {
					return WrapExitError(ExitFailure, "stats", err)
				}
				out := dto.NewStats(stats)
				f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
				return f.Print(out, func(w io.Writer) {
					fmt.Fprintln(w, "\tAMOUNT\tCOUNT")
					fmt.Fprintf(w, "earned\t%s\t%d\n", out.Earnings.Amount, out.Earnings.Count)
					fmt.Fprintf(w, "withdrawn\t%s\t%d\n", out.CompletedWithdrawals.Amount, out.CompletedWithdrawals.Count)
					fmt.Fprintf(w, "pending\t%s\t%d\n", out.PendingWithdrawals.Amount, out.PendingWithdrawals.Count)
				})
			})
		},
	}
}
