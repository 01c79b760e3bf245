// Package cli implements the pos command: the register server and a small
// operator client for it.
package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/fekuna/omnipos-register/config"
	"github.com/fekuna/omnipos-register/internal/auth"
	"github.com/fekuna/omnipos-register/internal/pkg/rpc"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Config     *config.Config
	Addr       string
	OperatorID string
	Format     string // "json" | "text"

	dial func(addr string) (grpc.ClientConnInterface, func() error, error)
}

var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command. Flag defaults come from the
// environment.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{Config: config.LoadEnv(), dial: dialInsecure})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pos",
		Short: "Single-register point of sale",
		Long:  "Runs the register's gRPC server and talks to a running register.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Addr, "addr", opts.Config.Client.Addr, "register address")
	cmd.PersistentFlags().StringVar(&opts.OperatorID, "operator", opts.Config.Client.OperatorID, "operator id sent with every call")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewProductsCommand(opts))
	cmd.AddCommand(NewSalesCommand(opts))

	return cmd
}

func dialInsecure(addr string) (grpc.ClientConnInterface, func() error, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		rpc.DialOption(),
	)
	if err != nil {
		return nil, nil, err
	}
	return conn, conn.Close, nil
}

// connect dials the register and returns a context carrying the operator id.
func (o *RootOptions) connect(ctx context.Context) (grpc.ClientConnInterface, context.Context, func() error, error) {
	conn, closeFn, err := o.dial(o.Addr)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect to %s: %w", o.Addr, err)
	}
	if o.OperatorID != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, auth.OperatorHeader, o.OperatorID)
	}
	return conn, ctx, closeFn, nil
}
