// Package quartabill provides a public API for generating quarterly
// service invoices: tax-group-aware breakdowns, paginated PDF
// documents and deterministic output file names.
//
// Example usage:
//
//	gen := quartabill.NewGenerator()
//	result, err := gen.Generate(ctx, customer, issuer, invoiceCtx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(result.FileName, result.PDF, 0o644)
package quartabill

import (
	"time"

	"github.com/entttom/quartabill/internal/fname"
	"github.com/entttom/quartabill/internal/generator"
	"github.com/entttom/quartabill/internal/model"
	"github.com/entttom/quartabill/internal/numbering"
	"github.com/entttom/quartabill/internal/tax"
)

// Re-export core types for public API
type (
	Customer       = model.Customer
	Issuer         = model.Issuer
	LineItem       = model.LineItem
	InvoiceContext = model.InvoiceContext
	Quarter        = model.Quarter
	TaxType        = model.TaxType
	Breakdown      = model.Breakdown
	TaxGroup       = model.TaxGroup

	Generator    = generator.Generator
	Result       = generator.Result
	BatchRequest = generator.BatchRequest
	BatchResult  = generator.BatchResult
)

// Re-export quarters
const (
	Q1 = model.Q1
	Q2 = model.Q2
	Q3 = model.Q3
	Q4 = model.Q4
)

// TaxTypeMixed marks the 90%@20% + 10%@0% split rate
const TaxTypeMixed = model.TaxTypeMixed

// Re-export error types
type (
	LayoutError     = model.LayoutError
	RenderError     = model.RenderError
	GenerationError = model.GenerationError
)

// Generator options
var (
	WithRenderer   = generator.WithRenderer
	WithLogoLoader = generator.WithLogoLoader
	WithLogger     = generator.WithLogger
)

// NewGenerator creates an invoice generator with the given options
func NewGenerator(opts ...generator.Option) *Generator {
	return generator.New(opts...)
}

// ComputeBreakdown aggregates line items into the monetary breakdown
// consumed by documents and history records alike.
func ComputeBreakdown(items []LineItem, smallBusiness bool) Breakdown {
	return tax.ComputeBreakdown(items, smallBusiness)
}

// BuildFileName resolves a file-name template into a sanitized
// ".pdf" name.
func BuildFileName(template, invoiceNumber, customerName string, quarter Quarter, year int, date time.Time) string {
	return fname.Build(template, invoiceNumber, customerName, quarter, year, date)
}

// FormatInvoiceNumber resolves a brace-grammar invoice-number
// template, e.g. "{QQ}{JJ}{KK}" -> "0124MA".
func FormatInvoiceNumber(format string, quarter Quarter, year int, customerAbbrev string, date time.Time) string {
	return numbering.Format(format, quarter, year, customerAbbrev, date)
}

// ParseQuarter parses "Q1".."Q4" or "1".."4"
func ParseQuarter(s string) (Quarter, error) {
	return model.ParseQuarter(s)
}
