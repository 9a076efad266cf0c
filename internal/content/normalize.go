// Package content post-processes generated marketing copy before it is
// rendered, measured, or exported.
package content

import "strings"

// escaped markdown sequences that remote backends sometimes emit as
// literal two-character pairs.
var unescaper = strings.NewReplacer(
	`\n`, "\n",
	`\#`, "#",
	`\*`, "*",
	`\-`, "-",
)

// Normalize rewrites literal escape sequences into their markdown
// characters. It must run before any markdown rendering or length-based
// measurement. Applying it twice yields the same result as once.
func Normalize(s string) string {
	return unescaper.Replace(s)
}

// FindExcludedTerms reports which of the given terms occur in the text,
// case-insensitively, preserving the order terms were configured in.
func FindExcludedTerms(text string, terms []string) []string {
	if text == "" || len(terms) == 0 {
		return nil
	}
	lower := strings.ToLower(text)

	var found []string
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(term)) {
			found = append(found, term)
		}
	}
	return found
}
