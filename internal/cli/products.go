package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/fekuna/omnipos-register/internal/api/posv1"
	"github.com/spf13/cobra"
)

type ProductsListOptions struct {
	*RootOptions
	Category string
	Query    string
}

func NewProductsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the catalog",
	}
	cmd.AddCommand(newProductsListCommand(rootOpts))
	return cmd
}

func newProductsListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProductsListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products with their price and stock",
		Long: `List the catalog as the cashier grid shows it.

Examples:
  pos products list
  pos products list --category drinks --query cola
  pos products list --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProductsList(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", "", "only products in this category id")
	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "case-insensitive name search")

	return cmd
}

func runProductsList(cmd *cobra.Command, opts *ProductsListOptions) error {
	conn, ctx, closeFn, err := opts.connect(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	resp, err := posv1.NewProductClient(conn).ListProducts(ctx, &posv1.ListProductsRequest{
		CategoryId: opts.Category,
		Query:      opts.Query,
	})
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), resp)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tCATEGORY\tSTOCK")
	for _, p := range resp.Products {
		stock := fmt.Sprint(p.TotalStock)
		if p.HasVariations {
			stock = fmt.Sprintf("%d (%d variations)", p.TotalStock, len(p.Variations))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.Id, p.Name, p.Price, p.CategoryId, stock)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d products\n", resp.Total)
	return nil
}
