package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"restodesk/pricing"
)

var totalsRates = pricing.DefaultRates

var totalsCmd = &cobra.Command{
	Use:   "totals <line-items.json>",
	Short: "Compute the totals cascade for a line-item file",
	Long: `Totals reads a JSON array of line items ({description, quantity,
unit_price}) and prints the full breakdown: subtotal, overhead, profit on
the overhead-loaded subtotal, tax on everything, and the grand total.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		var items []pricing.LineItem
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		totals := pricing.ComputeTotals(items, totalsRates)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
		for _, item := range items {
			fmt.Fprintf(w, "%s\t%s\t\n", item.Description,
				pricing.FormatUSD(pricing.Round2(pricing.LineTotal(item))))
		}
		fmt.Fprintf(w, "Subtotal\t%s\t\n", pricing.FormatUSD(pricing.Round2(totals.Subtotal)))
		fmt.Fprintf(w, "Overhead (%.4g%%)\t%s\t\n", totalsRates.OverheadPct,
			pricing.FormatUSD(pricing.Round2(totals.Overhead)))
		fmt.Fprintf(w, "Profit (%.4g%%)\t%s\t\n", totalsRates.ProfitPct,
			pricing.FormatUSD(pricing.Round2(totals.Profit)))
		if totalsRates.TaxPct > 0 {
			fmt.Fprintf(w, "Tax (%.4g%%)\t%s\t\n", totalsRates.TaxPct,
				pricing.FormatUSD(pricing.Round2(totals.Tax)))
		}
		fmt.Fprintf(w, "Total\t%s\t\n", pricing.FormatUSD(pricing.Round2(totals.Total)))
		return w.Flush()
	},
}

func init() {
	totalsCmd.Flags().Float64Var(&totalsRates.OverheadPct, "overhead", pricing.DefaultRates.OverheadPct, "overhead percentage")
	totalsCmd.Flags().Float64Var(&totalsRates.ProfitPct, "profit", pricing.DefaultRates.ProfitPct, "profit percentage")
	totalsCmd.Flags().Float64Var(&totalsRates.TaxPct, "tax", pricing.DefaultRates.TaxPct, "tax percentage")
	rootCmd.AddCommand(totalsCmd)
}
