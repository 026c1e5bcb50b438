// Package generator drives one invoice end to end: tax breakdown,
// layout, rendering and file naming. A batch run wraps the same
// pipeline in a per-customer loop that records failures without
// aborting the remaining customers.
package generator

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/entttom/quartabill/internal/fname"
	"github.com/entttom/quartabill/internal/layout"
	"github.com/entttom/quartabill/internal/model"
	"github.com/entttom/quartabill/internal/placeholder"
	"github.com/entttom/quartabill/internal/render"
	"github.com/entttom/quartabill/internal/tax"
)

// Renderer turns a composed document into final bytes.
type Renderer interface {
	Render(layout.Document) ([]byte, error)
}

// LogoLoader supplies raw logo bytes; see the platform package for
// the file-based implementation.
type LogoLoader interface {
	Load() ([]byte, error)
}

// Generator generates invoice documents. Safe for concurrent use as
// long as the shared Customer/Issuer inputs are treated as read-only;
// each run composes on its own cursor.
type Generator struct {
	renderer   Renderer
	logoLoader LogoLoader
	log        zerolog.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithRenderer sets the rendering backend
func WithRenderer(r Renderer) Option {
	return func(g *Generator) {
		g.renderer = r
	}
}

// WithLogoLoader sets the logo source
func WithLogoLoader(l LogoLoader) Option {
	return func(g *Generator) {
		g.logoLoader = l
	}
}

// WithLogger sets the logger for batch progress
func WithLogger(log zerolog.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// New creates a generator. Without options it renders real PDFs and
// has no logo source.
func New(opts ...Option) *Generator {
	g := &Generator{
		renderer: render.NewPDF(),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Result describes one generated invoice.
type Result struct {
	Customer     string          `json:"customer"`
	InvoiceNo    string          `json:"invoice_number"`
	FileName     string          `json:"file_name"`
	EMLName      string          `json:"eml_name"`
	PageCount    int             `json:"page_count"`
	Breakdown    model.Breakdown `json:"breakdown"`
	EmailSubject string          `json:"email_subject,omitempty"`
	EmailBody    string          `json:"email_body,omitempty"`
	PDF          []byte          `json:"-"`
}

// Generate produces one customer's invoice document.
//
// A missing or unreadable logo is recovered with the placeholder box
// and never fails the invoice. Rendering failures are returned as
// RenderError.
func (g *Generator) Generate(ctx context.Context, customer model.Customer, issuer model.Issuer, ic model.InvoiceContext) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	breakdown := tax.ComputeBreakdown(customer.LineItems, issuer.SmallBusiness)

	var logo []byte
	if g.logoLoader != nil {
		data, err := g.logoLoader.Load()
		if err != nil {
			g.log.Debug().Err(err).Str("customer", customer.Name).
				Msg("logo unavailable, using placeholder")
		} else {
			logo = data
		}
	}

	doc := layout.Compose(layout.Input{
		Customer:  customer,
		Issuer:    issuer,
		Context:   ic,
		Breakdown: breakdown,
		Logo:      logo,
	})

	pdf, err := g.renderer.Render(doc)
	if err != nil {
		return nil, err
	}

	name := fname.Build(customer.PDFFileNameFormat, ic.InvoiceNumber, customer.Name,
		ic.Quarter, ic.Year, ic.InvoiceDate)

	// Email text shares the description variable universe; kept as an
	// explicit map at this call site.
	emailVars := map[string]string{
		"Quartal":         ic.Quarter.String(),
		"Jahr":            strconv.Itoa(ic.Year),
		"Rechnungsnummer": ic.InvoiceNumber,
		"Kunde":           customer.Name,
	}

	return &Result{
		Customer:     customer.Name,
		InvoiceNo:    ic.InvoiceNumber,
		FileName:     name,
		EMLName:      fname.EMLSibling(name),
		PageCount:    doc.Pages,
		Breakdown:    breakdown,
		EmailSubject: placeholder.Brackets(customer.EmailSubject, emailVars),
		EmailBody:    placeholder.Brackets(customer.EmailBody, emailVars),
		PDF:          pdf,
	}, nil
}
