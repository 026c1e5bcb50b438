// Package model defines the core domain types for quarterly invoice
// generation: line items, customers, the issuing business and the
// per-invoice context. All monetary values are shopspring decimals.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Quarter identifies one billing quarter.
type Quarter int

const (
	Q1 Quarter = iota + 1
	Q2
	Q3
	Q4
)

// String returns the display form, e.g. "Q1".
func (q Quarter) String() string {
	return fmt.Sprintf("Q%d", int(q))
}

// Valid reports whether q is one of Q1..Q4.
func (q Quarter) Valid() bool {
	return q >= Q1 && q <= Q4
}

// ParseQuarter parses "Q1".."Q4" or "1".."4".
func ParseQuarter(s string) (Quarter, error) {
	v := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "Q")
	switch v {
	case "1":
		return Q1, nil
	case "2":
		return Q2, nil
	case "3":
		return Q3, nil
	case "4":
		return Q4, nil
	}
	return 0, fmt.Errorf("invalid quarter: %q", s)
}

// QuarterOf returns the quarter containing t.
func QuarterOf(t time.Time) Quarter {
	return Quarter((int(t.Month())-1)/3 + 1)
}

// TaxType is either an integer-percent string ("0".."30") or the
// sentinel "mixed". Values outside that set are a caller contract
// violation; the tax engine treats any non-"mixed" value as a
// percentage string without range checking.
type TaxType string

// TaxTypeMixed marks the split rate: 90% of the base taxed at 20%,
// the remaining 10% untaxed.
const TaxTypeMixed TaxType = "mixed"

// LineItem is one billable row of a customer's quarterly invoice.
// Immutable once handed to the engines.
type LineItem struct {
	Description string          `json:"description" yaml:"description"`
	Quantity    decimal.Decimal `json:"quantity" yaml:"quantity"`
	Unit        string          `json:"unit" yaml:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price" yaml:"unitPrice"`
	TaxType     TaxType         `json:"tax_type" yaml:"taxType"`
}

// Subtotal returns quantity * unitPrice rounded to 2 places.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice).Round(2)
}

// Customer holds one billed party and its line items. Item order is
// display order and is preserved everywhere downstream.
type Customer struct {
	Name              string     `json:"name" yaml:"name"`
	Abbrev            string     `json:"abbrev" yaml:"abbrev"`
	Address           string     `json:"address" yaml:"address"`
	Email             string     `json:"email,omitempty" yaml:"email"`
	EmailSubject      string     `json:"email_subject,omitempty" yaml:"emailSubject"`
	EmailBody         string     `json:"email_body,omitempty" yaml:"emailBody"`
	PDFFileNameFormat string     `json:"pdf_file_name_format,omitempty" yaml:"pdfFileNameFormat"`
	LineItems         []LineItem `json:"line_items" yaml:"lineItems"`
}

// Issuer is the billing entity printed on every invoice.
type Issuer struct {
	Name          string `json:"name" yaml:"name"`
	Title         string `json:"title,omitempty" yaml:"title"`
	Address       string `json:"address" yaml:"address"`
	Phone         string `json:"phone,omitempty" yaml:"phone"`
	Website       string `json:"website,omitempty" yaml:"website"`
	Email         string `json:"email,omitempty" yaml:"email"`
	IBAN          string `json:"iban" yaml:"iban"`
	UID           string `json:"uid,omitempty" yaml:"uid"`
	Bank          string `json:"bank,omitempty" yaml:"bank"`
	PaymentTerms  int    `json:"payment_terms" yaml:"paymentTerms"`
	FooterText    string `json:"footer_text,omitempty" yaml:"footerText"`
	SmallBusiness bool   `json:"small_business" yaml:"smallBusiness"`

	// Platform-specific logo locations; the host picks one via
	// the platform package.
	LogoPathWindows string `json:"logo_path_windows,omitempty" yaml:"logoPathWindows"`
	LogoPathMac     string `json:"logo_path_mac,omitempty" yaml:"logoPathMac"`
	LogoPathLinux   string `json:"logo_path_linux,omitempty" yaml:"logoPathLinux"`
}

// InvoiceContext carries the per-invoice facts that are not part of
// the customer or issuer records. The invoice number is generated
// upstream and treated as opaque here.
type InvoiceContext struct {
	InvoiceNumber string    `json:"invoice_number"`
	Quarter       Quarter   `json:"quarter"`
	Year          int       `json:"year"`
	InvoiceDate   time.Time `json:"invoice_date"`
}

// TaxGroup aggregates all line items sharing one effective tax key.
type TaxGroup struct {
	Key  string          `json:"key"`
	Base decimal.Decimal `json:"base"`
	Tax  decimal.Decimal `json:"tax"`
}

// Breakdown is the monetary summary of one invoice. Groups are in
// first-seen order of their keys while iterating line items.
type Breakdown struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	VAT      decimal.Decimal `json:"vat"`
	Total    decimal.Decimal `json:"total"`
	Groups   []TaxGroup      `json:"vat_breakdown"`
}
