package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/entttom/quartabill/internal/money"
	"github.com/entttom/quartabill/internal/tax"
)

var breakdownJSON bool

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Show the monetary breakdown per customer",
	Long: `Compute subtotal, tax groups and total per customer without
rendering any document. The same figures end up in the printed
summary box and in history records.

Examples:
  quartabill breakdown -c quartabill.yaml
  quartabill breakdown -c quartabill.yaml --json`,
	RunE: runBreakdown,
}

func init() {
	rootCmd.AddCommand(breakdownCmd)

	breakdownCmd.Flags().BoolVar(&breakdownJSON, "json", false, "Output as JSON")
}

func runBreakdown(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	if breakdownJSON {
		out := make(map[string]interface{}, len(settings.Customers))
		for _, c := range settings.Customers {
			out[c.Name] = tax.ComputeBreakdown(c.LineItems, settings.Issuer.SmallBusiness)
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CUSTOMER\tNET\tVAT\tTOTAL\tGROUPS")
	for _, c := range settings.Customers {
		b := tax.ComputeBreakdown(c.LineItems, settings.Issuer.SmallBusiness)
		groups := ""
		for i, g := range b.Groups {
			if i > 0 {
				groups += ", "
			}
			groups += fmt.Sprintf("%s: %s", g.Key, money.FormatPlain(g.Tax))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			c.Name,
			money.FormatPlain(b.Subtotal),
			money.FormatPlain(b.VAT),
			money.FormatPlain(b.Total),
			groups)
	}
	return w.Flush()
}
