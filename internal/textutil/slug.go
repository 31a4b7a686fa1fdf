package textutil

import (
	"html"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// letterFolds covers Latin letters that NFKD leaves intact.
var letterFolds = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"þ", "th", "Þ", "TH",
	"ı", "i",
)

// ToASCII transliterates Latin letters to their ASCII base form. Runes with no
// such form are returned unchanged.
func ToASCII(value string) string {
	value = letterFolds.Replace(value)
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, value)
	if err != nil {
		return value
	}
	return out
}

// Slugify converts value to a lowercase ASCII slug. Runs of characters outside
// [a-z0-9] become one separator; an empty separator simply glues the
// alphanumeric parts together. HTML character references are decoded first
// and digit grouping commas ("1,000") are dropped.
func Slugify(value, separator string) string {
	value = html.UnescapeString(value)
	value = strings.ToLower(ToASCII(value))
	value = stripDigitGrouping(value)

	var b strings.Builder
	b.Grow(len(value))
	pendingSep := false
	for _, r := range value {
		if !isSlugRune(r) {
			pendingSep = true
			continue
		}
		if pendingSep && b.Len() > 0 {
			b.WriteString(separator)
		}
		pendingSep = false
		b.WriteRune(r)
	}
	return b.String()
}

func isSlugRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func stripDigitGrouping(value string) string {
	if !strings.Contains(value, ",") {
		return value
	}
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		if value[i] == ',' && i > 0 && i+1 < len(value) && isDigit(value[i-1]) && isDigit(value[i+1]) {
			continue
		}
		b.WriteByte(value[i])
	}
	return b.String()
}
