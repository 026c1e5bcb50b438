package layout

// Page geometry in millimetres, A4 portrait. The offsets are fixed
// for this one document class. The pagination rule depends on
// tableTop, tableRowH, the summary heights and footerReserve; the
// rest only affects visual placement.
const (
	PageWidth  = 210.0
	PageHeight = 297.0

	marginLeft   = 20.0
	marginRight  = 20.0
	contentRight = PageWidth - marginRight

	// Header block
	headerTop = 20.0
	logoX     = 140.0
	logoY     = 15.0
	logoW     = 50.0
	logoH     = 25.0

	// Invoice-details and customer boxes, side by side
	partiesTop   = 60.0
	partyBoxW    = 80.0
	partyBoxH    = 34.0
	partyBannerH = 6.0
	partyLineH   = 5.0
	partiesGap   = 10.0

	// Service table
	tableTop     = 102.0
	tableHeaderH = 8.0
	tableRowH    = 7.0

	// Summary block: height grows with the number of tax groups
	summaryGap      = 8.0
	summaryBaseH    = 14.0
	summaryGroupH   = 6.0
	summaryVATLineH = 6.0
	summaryLeft     = 110.0
	summaryLineH    = 6.0

	// Footer: reserved bottom band, built bottom-up
	footerReserve = 40.0
	footerBase    = PageHeight - 14.0
	footerLineH   = 4.5
	footerRuleY   = PageHeight - footerReserve + 3.0

	// Where the summary lands after a page break
	newPageTop = 25.0
)

// Service-table column layout.
const (
	colDescX  = marginLeft
	colDescW  = 66.0
	colQtyX   = 86.0
	colQtyW   = 14.0
	colUnitX  = 102.0
	colUnitW  = 16.0
	colPriceX = 118.0
	colPriceW = 22.0
	colTaxX   = 140.0
	colTaxW   = 18.0
	colTotalX = 158.0
	colTotalW = 32.0
)

// Font sizes in points.
const (
	sizeTitle  = 16.0
	sizeNormal = 10.0
	sizeTable  = 9.0
	sizeSmall  = 8.0
)

// Cursor tracks composition state for a single document: the current
// page and vertical offset. It is created fresh per invoice, threaded
// through the block steps by value and discarded afterwards, so
// concurrent compositions share nothing.
type Cursor struct {
	Page int
	Y    float64
}
