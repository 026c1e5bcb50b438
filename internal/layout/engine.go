// Package layout composes one quarterly invoice into a stream of
// draw commands with absolute page coordinates.
//
// Composition is strictly linear: header, invoice-details and
// customer boxes, service table, summary block, then one footer per
// resulting page. The summary block placement is the only page-break
// decision in the document; the service table itself is never split
// across pages. Each block is a pure step function taking and
// returning a Cursor, so blocks are independently testable and carry
// no hidden coupling through shared mutable state.
package layout

import (
	"strconv"
	"strings"

	"github.com/entttom/quartabill/internal/model"
	"github.com/entttom/quartabill/internal/money"
	"github.com/entttom/quartabill/internal/placeholder"
	"github.com/entttom/quartabill/internal/tax"
)

// Input is everything one composition run needs, supplied fully
// formed. Logo is raw image bytes or nil; a missing logo is not an
// error, it selects the placeholder box.
type Input struct {
	Customer  model.Customer
	Issuer    model.Issuer
	Context   model.InvoiceContext
	Breakdown model.Breakdown
	Logo      []byte
}

// Compose lays out one invoice document. Deterministic for a given
// Input; never fails.
func Compose(in Input) Document {
	cur := Cursor{Page: 1, Y: headerTop}
	var cmds []Command

	c, cur := headerBlock(in, cur)
	cmds = append(cmds, c...)

	c, cur = partiesBlock(in, cur)
	cmds = append(cmds, c...)

	if len(in.Customer.LineItems) == 0 {
		// No table, no summary, no pagination: a single diagnostic
		// line marks the empty quarter.
		cmds = append(cmds, Command{
			Kind: KindText, Page: cur.Page,
			X: marginLeft, Y: tableTop, W: contentRight - marginLeft, H: tableRowH,
			Text: "Keine Leistungen für dieses Quartal erfasst.",
			Size: sizeNormal, Style: "I",
		})
	} else {
		c, cur = serviceTable(in, cur)
		cmds = append(cmds, c...)

		c, cur = summaryBlock(in, cur)
		cmds = append(cmds, c...)
	}

	pages := cur.Page
	for page := 1; page <= pages; page++ {
		cmds = append(cmds, footerBlock(in.Issuer, page)...)
	}

	return Document{Commands: cmds, Pages: pages}
}

// descriptionVars is the explicit bracket-variable universe for line
// item descriptions. Kept enumerated here, at its call site.
func descriptionVars(in Input) map[string]string {
	return map[string]string{
		"Quartal":         in.Context.Quarter.String(),
		"Jahr":            strconv.Itoa(in.Context.Year),
		"Rechnungsnummer": in.Context.InvoiceNumber,
		"Kunde":           in.Customer.Name,
	}
}

func headerBlock(in Input, cur Cursor) ([]Command, Cursor) {
	var c []Command
	y := cur.Y

	text := func(s string, size float64, style string, lineH float64) {
		c = append(c, Command{
			Kind: KindText, Page: cur.Page,
			X: marginLeft, Y: y, W: logoX - marginLeft - 5, H: lineH,
			Text: s, Size: size, Style: style,
		})
		y += lineH
	}

	text(in.Issuer.Name, sizeTitle, "B", 8)
	if in.Issuer.Title != "" {
		text(in.Issuer.Title, sizeNormal, "", 5)
	}
	for _, line := range strings.Split(in.Issuer.Address, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			text(line, sizeNormal, "", 5)
		}
	}
	if in.Issuer.Phone != "" {
		text("Tel: "+in.Issuer.Phone, sizeSmall, "", 4)
	}
	if in.Issuer.Website != "" {
		text(in.Issuer.Website, sizeSmall, "", 4)
	}
	if in.Issuer.Email != "" {
		text(in.Issuer.Email, sizeSmall, "", 4)
	}

	if len(in.Logo) > 0 {
		c = append(c, Command{
			Kind: KindImage, Page: cur.Page,
			X: logoX, Y: logoY, W: logoW, H: logoH,
			Image: in.Logo,
		})
	} else {
		// Placeholder box with centered label
		c = append(c, Command{
			Kind: KindRect, Page: cur.Page,
			X: logoX, Y: logoY, W: logoW, H: logoH,
		})
		c = append(c, Command{
			Kind: KindText, Page: cur.Page,
			X: logoX, Y: logoY + logoH/2 - 2, W: logoW, H: 4,
			Text: "Logo", Size: sizeSmall, Align: AlignCenter,
		})
	}

	return c, Cursor{Page: cur.Page, Y: partiesTop}
}

// partiesBlock draws the invoice-details box and the customer box
// side by side at the same vertical offset. Both always fit on page
// one; no pagination risk here.
func partiesBlock(in Input, cur Cursor) ([]Command, Cursor) {
	var c []Command

	box := func(x float64, banner string, lines [][2]string, body []string) {
		c = append(c, Command{
			Kind: KindRect, Page: cur.Page,
			X: x, Y: partiesTop, W: partyBoxW, H: partyBannerH,
			Fill: true,
		})
		c = append(c, Command{
			Kind: KindText, Page: cur.Page,
			X: x + 2, Y: partiesTop + 1, W: partyBoxW - 4, H: partyBannerH - 2,
			Text: banner, Size: sizeTable, Style: "B",
		})
		c = append(c, Command{
			Kind: KindRect, Page: cur.Page,
			X: x, Y: partiesTop, W: partyBoxW, H: partyBoxH,
		})

		y := partiesTop + partyBannerH + 2
		for _, kv := range lines {
			c = append(c, Command{
				Kind: KindText, Page: cur.Page,
				X: x + 2, Y: y, W: partyBoxW/2 - 2, H: partyLineH,
				Text: kv[0], Size: sizeTable, Style: "B",
			})
			c = append(c, Command{
				Kind: KindText, Page: cur.Page,
				X: x + partyBoxW/2, Y: y, W: partyBoxW/2 - 2, H: partyLineH,
				Text: kv[1], Size: sizeTable,
			})
			y += partyLineH
		}
		for _, line := range body {
			c = append(c, Command{
				Kind: KindText, Page: cur.Page,
				X: x + 2, Y: y, W: partyBoxW - 4, H: partyLineH,
				Text: line, Size: sizeTable,
			})
			y += partyLineH
		}
	}

	box(marginLeft, "Rechnungsdaten", [][2]string{
		{"Rechnungsnummer", in.Context.InvoiceNumber},
		{"Rechnungsdatum", in.Context.InvoiceDate.Format("02.01.2006")},
		{"Zeitraum", in.Context.Quarter.String() + "/" + strconv.Itoa(in.Context.Year)},
	}, nil)

	customerBody := []string{in.Customer.Name}
	for _, line := range strings.Split(in.Customer.Address, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			customerBody = append(customerBody, line)
		}
	}
	box(marginLeft+partyBoxW+partiesGap, "Rechnungsempfänger", nil, customerBody)

	return c, Cursor{Page: cur.Page, Y: tableTop}
}

// serviceTable draws the header row plus one fixed-height row per
// line item. Its end offset is a deterministic function of the item
// count, which the summary placement relies on.
func serviceTable(in Input, cur Cursor) ([]Command, Cursor) {
	var c []Command
	vars := descriptionVars(in)
	smallBusiness := in.Issuer.SmallBusiness

	// Header row
	c = append(c, Command{
		Kind: KindRect, Page: cur.Page,
		X: marginLeft, Y: tableTop, W: contentRight - marginLeft, H: tableHeaderH,
		Fill: true,
	})
	headers := []struct {
		x, w  float64
		text  string
		align Align
	}{
		{colDescX + 1, colDescW, "Leistung", AlignLeft},
		{colQtyX, colQtyW, "Menge", AlignRight},
		{colUnitX, colUnitW, "Einheit", AlignLeft},
		{colPriceX, colPriceW, "Einzelpreis", AlignRight},
		{colTaxX, colTaxW, "USt.", AlignCenter},
		{colTotalX, colTotalW, "Betrag", AlignRight},
	}
	for _, h := range headers {
		c = append(c, Command{
			Kind: KindText, Page: cur.Page,
			X: h.x, Y: tableTop + 2, W: h.w, H: tableHeaderH - 4,
			Text: h.text, Size: sizeTable, Style: "B", Align: h.align,
		})
	}

	y := tableTop + tableHeaderH
	for _, li := range in.Customer.LineItems {
		subtotal := li.Subtotal()
		rowTotal := subtotal.Add(tax.ItemTax(subtotal, li.TaxType, smallBusiness))

		desc := firstLine(placeholder.Brackets(li.Description, vars), colDescW)

		cells := []struct {
			x, w  float64
			text  string
			align Align
		}{
			{colDescX + 1, colDescW, desc, AlignLeft},
			{colQtyX, colQtyW, li.Quantity.String(), AlignRight},
			{colUnitX, colUnitW, li.Unit, AlignLeft},
			{colPriceX, colPriceW, money.Format(li.UnitPrice), AlignRight},
			{colTaxX, colTaxW, tax.CompactLabel(li.TaxType, smallBusiness), AlignCenter},
			{colTotalX, colTotalW, money.Format(rowTotal), AlignRight},
		}
		for _, cell := range cells {
			c = append(c, Command{
				Kind: KindText, Page: cur.Page,
				X: cell.x, Y: y + 1.5, W: cell.w, H: tableRowH - 3,
				Text: cell.text, Size: sizeTable, Align: cell.align,
			})
		}
		y += tableRowH
		c = append(c, Command{
			Kind: KindLine, Page: cur.Page,
			X: marginLeft, Y: y, W: contentRight - marginLeft,
		})
	}

	return c, Cursor{Page: cur.Page, Y: y}
}

// SummaryHeight returns the summary block height for a breakdown:
// base plus one line per tax group, plus one more line when any tax
// accrued at all.
func SummaryHeight(b model.Breakdown) float64 {
	h := summaryBaseH + summaryGroupH*float64(len(b.Groups))
	if money.IsPositive(b.VAT) {
		h += summaryVATLineH
	}
	return h
}

// summaryBlock places the monetary summary below the table, or at
// the top of a fresh page when it would collide with the reserved
// footer band. This is the single page-break decision of the layout.
func summaryBlock(in Input, cur Cursor) ([]Command, Cursor) {
	top := cur.Y + summaryGap
	height := SummaryHeight(in.Breakdown)
	page := cur.Page

	if top+height > PageHeight-footerReserve {
		page++
		top = newPageTop
	}

	var c []Command
	y := top

	row := func(label, amount string, style string, lineH float64) {
		c = append(c, Command{
			Kind: KindText, Page: page,
			X: summaryLeft, Y: y, W: 48, H: lineH,
			Text: label, Size: sizeTable, Style: style,
		})
		c = append(c, Command{
			Kind: KindText, Page: page,
			X: summaryLeft + 48, Y: y, W: contentRight - summaryLeft - 48, H: lineH,
			Text: amount, Size: sizeTable, Style: style, Align: AlignRight,
		})
		y += lineH
	}

	row("Nettobetrag", money.Format(in.Breakdown.Subtotal), "", summaryLineH)
	for _, g := range in.Breakdown.Groups {
		label := "USt. " + g.Key
		if g.Key == "mixed" {
			label = "USt. " + tax.MixedLabel
		}
		row(label, money.Format(g.Tax), "", summaryGroupH)
	}
	if money.IsPositive(in.Breakdown.VAT) {
		row("USt. gesamt", money.Format(in.Breakdown.VAT), "", summaryVATLineH)
	}

	c = append(c, Command{
		Kind: KindLine, Page: page,
		X: summaryLeft, Y: y, W: contentRight - summaryLeft,
	})
	y += 2
	row("Gesamtbetrag", money.Format(in.Breakdown.Total), "B", summaryLineH)

	return c, Cursor{Page: page, Y: y}
}

// footerBlock paints the footer for one page. Lines are anchored to
// the page bottom and stacked bottom-up with a fixed offset, so an
// optional line pushes the lines above it upward without disturbing
// anything below.
func footerBlock(issuer model.Issuer, page int) []Command {
	c := []Command{{
		Kind: KindLine, Page: page,
		X: marginLeft, Y: footerRuleY, W: contentRight - marginLeft,
	}}

	y := footerBase
	line := func(s string) {
		c = append(c, Command{
			Kind: KindText, Page: page,
			X: marginLeft, Y: y, W: contentRight - marginLeft, H: footerLineH,
			Text: s, Size: sizeSmall, Align: AlignCenter,
		})
		y -= footerLineH
	}

	line("Zahlbar innerhalb von " + strconv.Itoa(issuer.PaymentTerms) + " Tagen ohne Abzug.")
	name := issuer.Name
	if issuer.Title != "" {
		name += ", " + issuer.Title
	}
	line(name)
	if issuer.Bank != "" {
		line("Bank: " + issuer.Bank)
	}
	if issuer.IBAN != "" {
		line("IBAN: " + issuer.IBAN)
	}
	if issuer.UID != "" {
		line("UID: " + issuer.UID)
	}
	if issuer.SmallBusiness {
		line("Umsatzsteuerbefreit gemäß § 6 Abs. 1 Z 27 UStG (Kleinunternehmerregelung).")
	}
	if issuer.FooterText != "" {
		wrapped := wrap(issuer.FooterText, contentRight-marginLeft)
		// Bottom-up stacking: emit the wrapped block in reverse so it
		// reads top-down on the page.
		for i := len(wrapped) - 1; i >= 0; i-- {
			line(wrapped[i])
		}
	}

	return c
}
