package server

import (
	"time"

	"github.com/entttom/quartabill/internal/model"
	"github.com/entttom/quartabill/internal/money"
)

// InvoiceRequest is the JSON body for the render, breakdown and
// filename endpoints. Monetary fields come in as plain numbers.
type InvoiceRequest struct {
	Customer CustomerInput `json:"customer" binding:"required"`
	Issuer   IssuerInput   `json:"issuer" binding:"required"`
	Invoice  InvoiceInput  `json:"invoice" binding:"required"`
}

// CustomerInput mirrors model.Customer for request bodies
type CustomerInput struct {
	Name              string          `json:"name" binding:"required"`
	Address           string          `json:"address"`
	PDFFileNameFormat string          `json:"pdf_file_name_format"`
	LineItems         []LineItemInput `json:"line_items"`
}

// LineItemInput mirrors model.LineItem for request bodies
type LineItemInput struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	TaxType     string  `json:"tax_type"`
}

// IssuerInput mirrors model.Issuer for request bodies
type IssuerInput struct {
	Name          string `json:"name" binding:"required"`
	Title         string `json:"title"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Website       string `json:"website"`
	Email         string `json:"email"`
	IBAN          string `json:"iban"`
	UID           string `json:"uid"`
	Bank          string `json:"bank"`
	PaymentTerms  int    `json:"payment_terms"`
	FooterText    string `json:"footer_text"`
	SmallBusiness bool   `json:"small_business"`
}

// InvoiceInput carries the per-invoice context
type InvoiceInput struct {
	InvoiceNumber string `json:"invoice_number" binding:"required"`
	Quarter       string `json:"quarter" binding:"required"`
	Year          int    `json:"year" binding:"required"`
	Date          string `json:"date"` // "2006-01-02"; empty means today
}

// BreakdownResponse is the response for the breakdown endpoint
type BreakdownResponse struct {
	Subtotal string          `json:"subtotal"`
	VAT      string          `json:"vat"`
	Total    string          `json:"total"`
	Groups   []GroupResponse `json:"vat_breakdown"`
}

// GroupResponse is one tax group in a breakdown response
type GroupResponse struct {
	Key  string `json:"key"`
	Base string `json:"base"`
	Tax  string `json:"tax"`
}

// FileNameResponse is the response for the filename endpoint
type FileNameResponse struct {
	FileName string `json:"file_name"`
	EMLName  string `json:"eml_name"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func newBreakdownResponse(b model.Breakdown) BreakdownResponse {
	resp := BreakdownResponse{
		Subtotal: money.FormatPlain(b.Subtotal),
		VAT:      money.FormatPlain(b.VAT),
		Total:    money.FormatPlain(b.Total),
	}
	for _, g := range b.Groups {
		resp.Groups = append(resp.Groups, GroupResponse{
			Key:  g.Key,
			Base: money.FormatPlain(g.Base),
			Tax:  money.FormatPlain(g.Tax),
		})
	}
	return resp
}

func (r InvoiceRequest) toModel() (model.Customer, model.Issuer, model.InvoiceContext, error) {
	quarter, err := model.ParseQuarter(r.Invoice.Quarter)
	if err != nil {
		return model.Customer{}, model.Issuer{}, model.InvoiceContext{}, err
	}

	date := time.Now()
	if r.Invoice.Date != "" {
		date, err = time.Parse("2006-01-02", r.Invoice.Date)
		if err != nil {
			return model.Customer{}, model.Issuer{}, model.InvoiceContext{}, err
		}
	}

	customer := model.Customer{
		Name:              r.Customer.Name,
		Address:           r.Customer.Address,
		PDFFileNameFormat: r.Customer.PDFFileNameFormat,
	}
	for _, li := range r.Customer.LineItems {
		taxType := li.TaxType
		if taxType == "" {
			taxType = "20"
		}
		customer.LineItems = append(customer.LineItems, model.LineItem{
			Description: li.Description,
			Quantity:    money.FromFloat(li.Quantity),
			Unit:        li.Unit,
			UnitPrice:   money.FromFloat(li.UnitPrice),
			TaxType:     model.TaxType(taxType),
		})
	}

	issuer := model.Issuer{
		Name:          r.Issuer.Name,
		Title:         r.Issuer.Title,
		Address:       r.Issuer.Address,
		Phone:         r.Issuer.Phone,
		Website:       r.Issuer.Website,
		Email:         r.Issuer.Email,
		IBAN:          r.Issuer.IBAN,
		UID:           r.Issuer.UID,
		Bank:          r.Issuer.Bank,
		PaymentTerms:  r.Issuer.PaymentTerms,
		FooterText:    r.Issuer.FooterText,
		SmallBusiness: r.Issuer.SmallBusiness,
	}

	ic := model.InvoiceContext{
		InvoiceNumber: r.Invoice.InvoiceNumber,
		Quarter:       quarter,
		Year:          r.Invoice.Year,
		InvoiceDate:   date,
	}

	return customer, issuer, ic, nil
}
