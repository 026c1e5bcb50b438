package layout

import "strings"

// Approximate glyph advance in mm for the body fonts. Used only for
// truncation and wrapping decisions, never for positioning, so the
// approximation cannot shift any coordinate.
const approxCharW = 1.9

// firstLine cuts s at the first newline, then truncates to the column
// width with an ellipsis marker. Only the first visual line of a
// description is ever printed; the rest is dropped, which is the
// documented truncation policy for table rows.
func firstLine(s string, width float64) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimRight(s, " \t")

	maxChars := int(width / approxCharW)
	if maxChars < 2 {
		maxChars = 2
	}
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars-1]) + "…"
}

// wrap word-wraps s into lines that fit the given width. Words longer
// than a whole line are hard-cut.
func wrap(s string, width float64) []string {
	maxChars := int(width / approxCharW)
	if maxChars < 1 {
		maxChars = 1
	}

	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			continue
		}
		line := ""
		for _, w := range words {
			for len([]rune(w)) > maxChars {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				r := []rune(w)
				lines = append(lines, string(r[:maxChars]))
				w = string(r[maxChars:])
			}
			switch {
			case line == "":
				line = w
			case len([]rune(line))+1+len([]rune(w)) <= maxChars:
				line += " " + w
			default:
				lines = append(lines, line)
				line = w
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
