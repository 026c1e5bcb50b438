package cmd

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [files...]",
	Short: "Inspect generated PDF files",
	Long: `Validate generated PDFs and show their page count.

Examples:
  quartabill info out/0124BE_Praxis_Dr__Berger.pdf
  quartabill info out/*.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	var failed int
	for _, file := range args {
		if err := printFileInfo(file); err != nil {
			failed++
		}
		fmt.Println()
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed inspection", failed, len(args))
	}
	return nil
}

func printFileInfo(path string) error {
	fmt.Printf("File: %s\n", path)

	info, err := os.Stat(path)
	if err != nil {
		fmt.Printf("  Error: %v\n", err)
		return err
	}
	fmt.Printf("  Size: %d bytes\n", info.Size())
	fmt.Printf("  Modified: %s\n", info.ModTime().Format("2006-01-02 15:04:05"))

	if err := api.ValidateFile(path, nil); err != nil {
		fmt.Printf("  Valid: no (%v)\n", err)
		return err
	}
	fmt.Println("  Valid: yes")

	pages, err := api.PageCountFile(path)
	if err != nil {
		fmt.Printf("  Error: %v\n", err)
		return err
	}
	fmt.Printf("  Pages: %d\n", pages)
	return nil
}
