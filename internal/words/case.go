package words

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Case selects the case transform applied to a normalized word.
type Case string

const (
	// CaseUnset keeps slugify's lowercase output, same as CaseUnchanged.
	CaseUnset     Case = ""
	CaseUpper     Case = "upper"
	CaseLower     Case = "lower"
	CaseTitle     Case = "title"
	CaseUnchanged Case = "unchanged"
)

// Apply transforms value according to c. Title case capitalizes every part
// between non-letters, so "don-t" becomes "Don-T".
func (c Case) Apply(value string) string {
	switch c {
	case CaseUpper:
		return cases.Upper(language.Und).String(value)
	case CaseLower:
		return cases.Lower(language.Und).String(value)
	case CaseTitle:
		return cases.Title(language.Und).String(value)
	default:
		return value
	}
}
