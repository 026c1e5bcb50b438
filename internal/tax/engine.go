// Package tax computes per-item tax amounts and the aggregate
// breakdown of an invoice. All functions are pure; the table renderer
// and the summary block both consume the same results so the printed
// figures agree to the cent.
package tax

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/entttom/quartabill/internal/model"
	"github.com/entttom/quartabill/internal/money"
)

// Mixed rate split: 90% of the base is taxed at 20%, the remaining
// 10% is untaxed. The split is a domain rule, not configurable.
var mixedFactor = decimal.RequireFromString("0.18")

// Display labels for the mixed rate.
const (
	MixedLabel        = "90%@20% + 10%@0%"
	MixedLabelCompact = "Mix"
)

// ItemTax computes the tax for one item subtotal.
//
// Precondition (owned by the editing UI upstream): taxType is either
// "mixed" or an integer-percent string in "0".."30". Other values are
// treated as percentage strings without validation.
func ItemTax(subtotal decimal.Decimal, taxType model.TaxType, smallBusiness bool) decimal.Decimal {
	if smallBusiness {
		return money.Zero
	}
	if taxType == model.TaxTypeMixed {
		return subtotal.Mul(mixedFactor).Round(2)
	}
	percent, _ := strconv.Atoi(string(taxType))
	return money.Percent(subtotal, percent)
}

// GroupKey returns the effective aggregation key for a tax type:
// "<n>%" or "mixed", forced to "0%" under the small-business rule.
func GroupKey(taxType model.TaxType, smallBusiness bool) string {
	if smallBusiness {
		return "0%"
	}
	if taxType == model.TaxTypeMixed {
		return "mixed"
	}
	return string(taxType) + "%"
}

// Label returns the long display label for a tax type, used in the
// summary block.
func Label(taxType model.TaxType, smallBusiness bool) string {
	if smallBusiness {
		return "0%"
	}
	if taxType == model.TaxTypeMixed {
		return MixedLabel
	}
	return string(taxType) + "%"
}

// CompactLabel returns the short label used in service-table rows,
// where column width is scarce.
func CompactLabel(taxType model.TaxType, smallBusiness bool) string {
	if smallBusiness {
		return "0%"
	}
	if taxType == model.TaxTypeMixed {
		return MixedLabelCompact
	}
	return string(taxType) + "%"
}

// ComputeBreakdown aggregates all line items into running totals and
// per-tax-group sums. Groups appear in first-seen order of their
// effective key. Deterministic, no side effects.
func ComputeBreakdown(items []model.LineItem, smallBusiness bool) model.Breakdown {
	b := model.Breakdown{
		Subtotal: money.Zero,
		VAT:      money.Zero,
		Total:    money.Zero,
	}
	index := make(map[string]int)

	for _, item := range items {
		subtotal := item.Subtotal()
		itemTax := ItemTax(subtotal, item.TaxType, smallBusiness)

		b.Subtotal = b.Subtotal.Add(subtotal)
		b.VAT = b.VAT.Add(itemTax)

		key := GroupKey(item.TaxType, smallBusiness)
		i, ok := index[key]
		if !ok {
			i = len(b.Groups)
			index[key] = i
			b.Groups = append(b.Groups, model.TaxGroup{
				Key:  key,
				Base: money.Zero,
				Tax:  money.Zero,
			})
		}
		b.Groups[i].Base = b.Groups[i].Base.Add(subtotal)
		b.Groups[i].Tax = b.Groups[i].Tax.Add(itemTax)
	}

	b.Total = b.Subtotal.Add(b.VAT)
	return b
}
