// Package fulltext builds RediSearch query strings from storefront input.
package fulltext

import (
	"strings"
	"unicode"
)

// CleanUp drops every rune that is not a letter, a number or whitespace, so the
// result can be embedded in a query without escaping.
func CleanUp(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Query is a disjunction of the literal term and its quoted alternatives:
//
//	red shoe|('red shoes')|('red sandals')
type Query struct {
	Base         string
	Alternatives []string
}

// NewQuery sanitizes the base term and every alternative.
func NewQuery(base string, alternatives ...string) Query {
	q := Query{Base: CleanUp(base)}
	for _, alt := range alternatives {
		q.Or(alt)
	}
	return q
}

// Or adds an alternative branch. Empty branches after cleanup are skipped.
func (q *Query) Or(alternative string) {
	alternative = CleanUp(alternative)
	if strings.TrimSpace(alternative) == "" {
		return
	}
	q.Alternatives = append(q.Alternatives, alternative)
}

func (q Query) String() string {
	var b strings.Builder
	b.WriteString(q.Base)
	for _, alt := range q.Alternatives {
		b.WriteString("|('")
		b.WriteString(alt)
		b.WriteString("')")
	}
	return b.String()
}

// UseFuzzy reports whether fuzzy suggestion matching should be enabled for
// term. Terms of minLength runes or fewer are matched exactly.
func UseFuzzy(requested bool, term string, minLength int) bool {
	return requested && len([]rune(term)) > minLength
}
