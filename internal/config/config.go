// Package config loads the settings file the CLI host feeds the
// engines from: the issuer record and the customer list with their
// line items. Watching the file and suppressing self-saves are the
// desktop shell's business and have no counterpart here.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/entttom/quartabill/internal/model"
	"github.com/entttom/quartabill/internal/money"
	"github.com/entttom/quartabill/internal/numbering"
)

// Settings is the fully resolved settings document.
type Settings struct {
	Issuer              model.Issuer
	InvoiceNumberFormat string
	Customers           []model.Customer
}

// File-level DTOs: monetary fields come in as plain YAML numbers and
// are converted to decimals on the way into the model.
type fileSettings struct {
	Issuer              model.Issuer   `yaml:"issuer"`
	InvoiceNumberFormat string         `yaml:"invoiceNumberFormat"`
	Customers           []customerSpec `yaml:"customers"`
}

type customerSpec struct {
	Name              string         `yaml:"name"`
	Abbrev            string         `yaml:"abbrev"`
	Address           string         `yaml:"address"`
	Email             string         `yaml:"email"`
	EmailSubject      string         `yaml:"emailSubject"`
	EmailBody         string         `yaml:"emailBody"`
	PDFFileNameFormat string         `yaml:"pdfFileNameFormat"`
	LineItems         []lineItemSpec `yaml:"lineItems"`
}

type lineItemSpec struct {
	Description string  `yaml:"description"`
	Quantity    float64 `yaml:"quantity"`
	Unit        string  `yaml:"unit"`
	UnitPrice   float64 `yaml:"unitPrice"`
	TaxType     string  `yaml:"taxType"`
}

// Load reads and parses a settings file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	return Parse(data)
}

// Parse parses settings from YAML bytes and validates them.
func Parse(data []byte) (*Settings, error) {
	var fs fileSettings
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}

	if strings.TrimSpace(fs.Issuer.Name) == "" {
		return nil, fmt.Errorf("settings: issuer.name is required")
	}

	s := &Settings{
		Issuer:              fs.Issuer,
		InvoiceNumberFormat: fs.InvoiceNumberFormat,
	}
	if s.InvoiceNumberFormat == "" {
		s.InvoiceNumberFormat = numbering.DefaultFormat
	}

	for i, cs := range fs.Customers {
		if strings.TrimSpace(cs.Name) == "" {
			return nil, fmt.Errorf("settings: customers[%d].name is required", i)
		}
		customer := model.Customer{
			Name:              cs.Name,
			Abbrev:            cs.Abbrev,
			Address:           cs.Address,
			Email:             cs.Email,
			EmailSubject:      cs.EmailSubject,
			EmailBody:         cs.EmailBody,
			PDFFileNameFormat: cs.PDFFileNameFormat,
		}
		if customer.Abbrev == "" {
			customer.Abbrev = defaultAbbrev(cs.Name)
		}
		for _, is := range cs.LineItems {
			taxType := is.TaxType
			if taxType == "" {
				taxType = "20"
			}
			customer.LineItems = append(customer.LineItems, model.LineItem{
				Description: is.Description,
				Quantity:    money.FromFloat(is.Quantity),
				Unit:        is.Unit,
				UnitPrice:   money.FromFloat(is.UnitPrice),
				TaxType:     model.TaxType(taxType),
			})
		}
		s.Customers = append(s.Customers, customer)
	}

	return s, nil
}

// defaultAbbrev derives a two-letter customer code from the name for
// invoice numbering when none is configured.
func defaultAbbrev(name string) string {
	letters := make([]rune, 0, 2)
	for _, r := range name {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			letters = append(letters, r)
			if len(letters) == 2 {
				break
			}
		}
	}
	return strings.ToUpper(string(letters))
}
