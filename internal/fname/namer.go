// Package fname builds deterministic, filesystem-safe output names
// for generated invoice documents.
package fname

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/entttom/quartabill/internal/model"
	"github.com/entttom/quartabill/internal/placeholder"
)

// DefaultTemplate is used when a customer carries no file-name format.
const DefaultTemplate = "[invoiceNumber]_[customerName]"

var (
	namePart = regexp.MustCompile(`[^A-Za-z0-9]`)
	unsafe   = regexp.MustCompile(`[^A-Za-z0-9._-]`)
)

// Build resolves the file-name template and returns a sanitized name
// ending in ".pdf".
//
// The customer name is sanitized to [A-Za-z0-9] before substitution;
// afterwards the whole result is sanitized again to [A-Za-z0-9._-] so
// that path separators or punctuation from any template field cannot
// survive into the name.
func Build(template, invoiceNumber, customerName string, quarter model.Quarter, year int, date time.Time) string {
	if template == "" {
		template = DefaultTemplate
	}

	vars := map[string]string{
		"invoiceNumber": invoiceNumber,
		"customerName":  namePart.ReplaceAllString(customerName, "_"),
		"quarter":       quarter.String(),
		"year":          strconv.Itoa(year),
		"date":          date.Format("2006-01-02"),
	}

	name := placeholder.Brackets(template, vars)
	name = unsafe.ReplaceAllString(name, "_")

	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	return name
}

// EMLSibling derives the mail-envelope name the host writes next to
// the PDF, by swapping the extension.
func EMLSibling(pdfName string) string {
	if strings.HasSuffix(strings.ToLower(pdfName), ".pdf") {
		return pdfName[:len(pdfName)-4] + ".eml"
	}
	return pdfName + ".eml"
}
