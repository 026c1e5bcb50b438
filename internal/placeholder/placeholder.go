// Package placeholder implements the two template-variable grammars
// used across the document surfaces: bracket tokens like [Kunde] in
// descriptions, email text and file names, and brace tokens like {JJ}
// in invoice-number formats.
//
// The two grammars are deliberately separate functions. They apply to
// different strings with different variable universes, and unifying
// them would invite applying one call site's variables to another's
// templates.
//
// Both are single-pass: replacement text is never re-scanned, so
// variable-looking text inside user-entered values (a customer named
// "[Jahr] GmbH", say) cannot trigger a second expansion. Unknown
// tokens are left verbatim; templates written before a variable
// existed keep rendering.
package placeholder

import "regexp"

var (
	bracketRe = regexp.MustCompile(`\[([A-Za-z]+)\]`)
	braceRe   = regexp.MustCompile(`\{([A-Za-z]+)\}`)
)

// Brackets substitutes [Name] tokens from vars. Pure and total:
// never fails, unknown tokens pass through unchanged.
func Brackets(template string, vars map[string]string) string {
	return substitute(bracketRe, template, vars)
}

// Braces substitutes {Name} tokens from vars, with the same
// best-effort contract as Brackets.
func Braces(template string, vars map[string]string) string {
	return substitute(braceRe, template, vars)
}

func substitute(re *regexp.Regexp, template string, vars map[string]string) string {
	if len(vars) == 0 {
		return template
	}
	return re.ReplaceAllStringFunc(template, func(token string) string {
		// token includes the delimiters; strip them for lookup
		name := token[1 : len(token)-1]
		if value, ok := vars[name]; ok {
			return value
		}
		return token
	})
}
