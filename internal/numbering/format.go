// Package numbering formats invoice numbers from brace-grammar
// templates. The generated number is treated as opaque by everything
// downstream.
package numbering

import (
	"fmt"
	"time"

	"github.com/entttom/quartabill/internal/model"
	"github.com/entttom/quartabill/internal/placeholder"
)

// DefaultFormat yields numbers like "0124MA": zero-padded quarter,
// two-digit year, customer abbreviation.
const DefaultFormat = "{QQ}{JJ}{KK}"

// Format resolves a brace-grammar invoice-number template.
//
// Tokens: {Q} quarter digit, {QQ} zero-padded quarter, {JJ} two-digit
// year, {JJJJ} four-digit year, {KK} customer abbreviation, {MM}
// month, {TT} day of month. Unknown tokens are left verbatim.
func Format(format string, quarter model.Quarter, year int, customerAbbrev string, date time.Time) string {
	if format == "" {
		format = DefaultFormat
	}

	vars := map[string]string{
		"Q":    fmt.Sprintf("%d", int(quarter)),
		"QQ":   fmt.Sprintf("%02d", int(quarter)),
		"JJ":   fmt.Sprintf("%02d", year%100),
		"JJJJ": fmt.Sprintf("%04d", year),
		"KK":   customerAbbrev,
		"MM":   fmt.Sprintf("%02d", int(date.Month())),
		"TT":   fmt.Sprintf("%02d", date.Day()),
	}

	return placeholder.Braces(format, vars)
}
