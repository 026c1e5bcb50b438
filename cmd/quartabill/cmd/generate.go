package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/entttom/quartabill/internal/config"
	"github.com/entttom/quartabill/internal/generator"
	"github.com/entttom/quartabill/internal/logger"
	"github.com/entttom/quartabill/internal/model"
	"github.com/entttom/quartabill/internal/money"
	"github.com/entttom/quartabill/internal/platform"
)

var (
	generateQuarter string
	generateYear    int
	generateDate    string
	outputDir       string
	customerFilter  string
	generateTimeout time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate invoices for one quarter",
	Long: `Generate the quarterly invoice PDF for every customer in the
settings file.

One customer's failure does not abort the run; the remaining
customers are processed and the failure is reported at the end.

Examples:
  quartabill generate -c quartabill.yaml
  quartabill generate -c quartabill.yaml --quarter Q3 --year 2024 -o ./out
  quartabill generate -c quartabill.yaml --customer "Praxis Dr. Berger"`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateQuarter, "quarter", "q", "", "Quarter to bill (Q1..Q4, default: current)")
	generateCmd.Flags().IntVarP(&generateYear, "year", "y", 0, "Billing year (default: current)")
	generateCmd.Flags().StringVar(&generateDate, "date", "", "Invoice date as YYYY-MM-DD (default: today)")
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Output directory for PDFs")
	generateCmd.Flags().StringVar(&customerFilter, "customer", "", "Generate only for this customer name")
	generateCmd.Flags().DurationVar(&generateTimeout, "timeout", 2*time.Minute, "Timeout for the whole run")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	invoiceDate := time.Now()
	if generateDate != "" {
		invoiceDate, err = time.Parse("2006-01-02", generateDate)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
	}

	quarter := model.QuarterOf(invoiceDate)
	if generateQuarter != "" {
		quarter, err = model.ParseQuarter(generateQuarter)
		if err != nil {
			return err
		}
	}
	year := invoiceDate.Year()
	if generateYear != 0 {
		year = generateYear
	}

	customers := settings.Customers
	if customerFilter != "" {
		customers = nil
		for _, c := range settings.Customers {
			if c.Name == customerFilter {
				customers = append(customers, c)
			}
		}
		if len(customers) == 0 {
			return fmt.Errorf("customer not found: %s", customerFilter)
		}
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	gen := generator.New(
		generator.WithLogoLoader(platform.NewFileLogoLoader(settings.Issuer, platform.Current())),
		generator.WithLogger(logger.Get()),
	)

	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	printVerbose("Generating %s/%d for %d customers\n", quarter, year, len(customers))

	batch := gen.GenerateBatch(ctx, generator.BatchRequest{
		Customers:    customers,
		Issuer:       settings.Issuer,
		Quarter:      quarter,
		Year:         year,
		InvoiceDate:  invoiceDate,
		NumberFormat: settings.InvoiceNumberFormat,
	})

	for _, item := range batch.Items {
		if item.Err != nil {
			continue
		}
		path := filepath.Join(outputDir, item.Result.FileName)
		if err := os.WriteFile(path, item.Result.PDF, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	printBatchSummary(batch)

	if batch.Failed > 0 {
		return fmt.Errorf("%d of %d invoices failed", batch.Failed, len(batch.Items))
	}
	return nil
}

func printBatchSummary(batch *generator.BatchResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CUSTOMER\tINVOICE\tFILE\tPAGES\tTOTAL\tSTATUS")
	for _, item := range batch.Items {
		if item.Err != nil {
			fmt.Fprintf(w, "-\t-\t-\t-\t-\t%v\n", item.Err)
			continue
		}
		r := item.Result
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\tok\n",
			r.Customer, r.InvoiceNo, r.FileName, r.PageCount, money.FormatPlain(r.Breakdown.Total))
	}
	w.Flush()
}

func loadSettings() (*config.Settings, error) {
	if configPath == "" {
		return nil, fmt.Errorf("no settings file: use --config or QUARTABILL_CONFIG")
	}
	return config.Load(configPath)
}
