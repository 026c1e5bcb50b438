package render_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entttom/quartabill/internal/layout"
	"github.com/entttom/quartabill/internal/model"
	"github.com/entttom/quartabill/internal/money"
	"github.com/entttom/quartabill/internal/render"
	"github.com/entttom/quartabill/internal/tax"
)

func sampleInput() layout.Input {
	customer := model.Customer{
		Name:    "Praxis Dr. Berger",
		Address: "Hauptplatz 5\n6060 Hall in Tirol",
		LineItems: []model.LineItem{{
			Description: "EDV-Betreuung [Quartal]/[Jahr]",
			Quantity:    money.FromInt(10),
			Unit:        "Std.",
			UnitPrice:   money.FromInt(50),
			TaxType:     model.TaxTypeMixed,
		}},
	}
	issuer := model.Issuer{
		Name:         "Dr. Thomas Entner",
		Address:      "Mustergasse 1\n6020 Innsbruck",
		IBAN:         "AT61 1904 3002 3457 3201",
		PaymentTerms: 14,
	}
	return layout.Input{
		Customer: customer,
		Issuer:   issuer,
		Context: model.InvoiceContext{
			InvoiceNumber: "0124BE",
			Quarter:       model.Q1,
			Year:          2024,
			InvoiceDate:   time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC),
		},
		Breakdown: tax.ComputeBreakdown(customer.LineItems, false),
	}
}

func TestRender(t *testing.T) {
	doc := layout.Compose(sampleInput())
	r := render.NewPDF()

	out, err := r.Render(doc)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRender_EmptyDocument(t *testing.T) {
	r := render.NewPDF()

	_, err := r.Render(layout.Document{})
	require.Error(t, err)

	var renderErr *model.RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestRender_UndecodableLogoFallsBack(t *testing.T) {
	in := sampleInput()
	in.Logo = []byte("definitely not an image")

	doc := layout.Compose(in)
	r := render.NewPDF()

	out, err := r.Render(doc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRender_MultiPage(t *testing.T) {
	in := sampleInput()
	for i := 0; i < 20; i++ {
		in.Customer.LineItems = append(in.Customer.LineItems, in.Customer.LineItems[0])
	}
	in.Breakdown = tax.ComputeBreakdown(in.Customer.LineItems, false)

	doc := layout.Compose(in)
	require.Equal(t, 2, doc.Pages)

	out, err := render.NewPDF().Render(doc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
