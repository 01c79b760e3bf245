package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/fekuna/omnipos-register/internal/api/posv1"
	"github.com/spf13/cobra"
)

func NewSalesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Inspect and refund recorded sales",
	}
	cmd.AddCommand(newSalesListCommand(rootOpts))
	cmd.AddCommand(newSalesRefundCommand(rootOpts))
	cmd.AddCommand(newSalesSummaryCommand(rootOpts))
	return cmd
}

func newSalesListCommand(rootOpts *RootOptions) *cobra.Command {
	var refundedOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the sales ledger in checkout order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, ctx, closeFn, err := rootOpts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			resp, err := posv1.NewSaleClient(conn).ListSales(ctx, &posv1.ListSalesRequest{RefundedOnly: refundedOnly})
			if err != nil {
				return fmt.Errorf("list sales: %w", err)
			}
			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), resp)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TRANSACTION\tDATE\tTOTAL\tPAYMENT\tSTATUS")
			for _, s := range resp.Sales {
				state := "completed"
				if s.Refunded {
					state = "refunded: " + s.RefundReason
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					s.TransactionId, s.Date.AsTime().Local().Format(time.DateTime), s.Total, s.PaymentMethod, state)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&refundedOnly, "refunded", false, "only refunded sales")
	return cmd
}

func newSalesRefundCommand(rootOpts *RootOptions) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "refund <transaction-id>",
		Short: "Mark a sale as refunded",
		Long: `Mark a sale as refunded. A reason is required and a sale can only be
refunded once. Stock is not restored.

Examples:
  pos sales refund 3f1c... --reason "damaged on arrival"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, ctx, closeFn, err := rootOpts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			resp, err := posv1.NewSaleClient(conn).RefundSale(ctx, &posv1.RefundSaleRequest{Id: args[0], Reason: reason})
			if err != nil {
				return fmt.Errorf("refund sale %s: %w", args[0], err)
			}
			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Refunded %s (%s): %s\n", resp.Sale.TransactionId, resp.Sale.Total, resp.Sale.RefundReason)
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "refund reason (required)")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func newSalesSummaryCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show gross, refunded and net takings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, ctx, closeFn, err := rootOpts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			resp, err := posv1.NewSaleClient(conn).GetSummary(ctx, &posv1.GetSummaryRequest{})
			if err != nil {
				return fmt.Errorf("sales summary: %w", err)
			}
			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), resp)
			}

			s := resp.Summary
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sales:    %d (%d refunded)\n", s.Count, s.RefundedCount)
			fmt.Fprintf(out, "Gross:    %s\n", s.Gross)
			fmt.Fprintf(out, "Refunded: %s\n", s.Refunded)
			fmt.Fprintf(out, "Net:      %s\n", s.Net)
			return nil
		},
	}
}
