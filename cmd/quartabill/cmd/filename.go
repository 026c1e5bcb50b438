package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/entttom/quartabill/internal/fname"
	"github.com/entttom/quartabill/internal/model"
	"github.com/entttom/quartabill/internal/numbering"
)

var (
	filenameQuarter string
	filenameYear    int
)

var filenameCmd = &cobra.Command{
	Use:   "filename",
	Short: "Preview output file names",
	Long: `Show the invoice number and the PDF/EML file names each customer
would get, without generating anything.

Examples:
  quartabill filename -c quartabill.yaml --quarter Q2 --year 2024`,
	RunE: runFilename,
}

func init() {
	rootCmd.AddCommand(filenameCmd)

	filenameCmd.Flags().StringVarP(&filenameQuarter, "quarter", "q", "", "Quarter (Q1..Q4, default: current)")
	filenameCmd.Flags().IntVarP(&filenameYear, "year", "y", 0, "Year (default: current)")
}

func runFilename(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	now := time.Now()
	quarter := model.QuarterOf(now)
	if filenameQuarter != "" {
		quarter, err = model.ParseQuarter(filenameQuarter)
		if err != nil {
			return err
		}
	}
	year := now.Year()
	if filenameYear != 0 {
		year = filenameYear
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CUSTOMER\tINVOICE\tPDF\tEML")
	for _, c := range settings.Customers {
		number := numbering.Format(settings.InvoiceNumberFormat, quarter, year, c.Abbrev, now)
		name := fname.Build(c.PDFFileNameFormat, number, c.Name, quarter, year, now)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Name, number, name, fname.EMLSibling(name))
	}
	return w.Flush()
}
