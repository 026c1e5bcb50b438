package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/entttom/quartabill/internal/logger"
)

var (
	version = "1.0.0"

	// Global flags
	configPath string
	verbose    bool
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "quartabill",
	Short: "Generate quarterly service invoices as PDF",
	Long: `QuartaBill generates quarterly service invoices from a settings file
holding the issuer record and the customer list.

Each run computes a tax-group-aware monetary breakdown, lays out a
paginated PDF document and derives a collision-resistant file name.

Examples:
  # Generate all invoices for the current quarter
  quartabill generate --config quartabill.yaml

  # Generate Q3/2024 into a target directory
  quartabill generate -c quartabill.yaml --quarter Q3 --year 2024 -o ./out

  # Preview the monetary breakdown without rendering
  quartabill breakdown -c quartabill.yaml

  # Inspect a generated PDF
  quartabill info out/0324BE_Praxis_Dr__Berger.pdf`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Settings file (env: QUARTABILL_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format (console, json)")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// A .env next to the binary may hold the config path
	_ = godotenv.Load()

	if configPath == "" {
		configPath = os.Getenv("QUARTABILL_CONFIG")
	}

	level := "info"
	if verbose {
		level = "debug"
	}
	if err := logger.Setup(logger.Config{Level: level, Format: logFormat}); err != nil {
		fmt.Fprintf(os.Stderr, "logger setup: %v\n", err)
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
