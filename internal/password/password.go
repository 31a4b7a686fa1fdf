package password

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"horsebat/internal/words"
)

// Source yields words one at a time. *words.Sequence satisfies it.
type Source interface {
	Next() (string, error)
}

// Options describes how a password is assembled.
type Options struct {
	Count     int
	Separator string
	// FirstCase overrides the case of the first character. Only CaseUpper and
	// CaseLower have an effect.
	FirstCase words.Case
}

// Assemble pulls opts.Count words from src in order, joins them with
// opts.Separator, and applies opts.FirstCase.
func Assemble(src Source, opts Options) (string, error) {
	if opts.Count < 0 {
		return "", fmt.Errorf("word count must not be negative, got %d", opts.Count)
	}

	tokens := make([]string, 0, opts.Count)
	for i := range opts.Count {
		word, err := src.Next()
		if err != nil {
			return "", fmt.Errorf("word %d of %d: %w", i+1, opts.Count, err)
		}
		tokens = append(tokens, word)
	}

	return applyFirstCase(strings.Join(tokens, opts.Separator), opts.FirstCase), nil
}

func applyFirstCase(value string, c words.Case) string {
	if value == "" {
		return value
	}
	first, size := utf8.DecodeRuneInString(value)
	switch c {
	case words.CaseUpper:
		first = unicode.ToUpper(first)
	case words.CaseLower:
		first = unicode.ToLower(first)
	default:
		return value
	}
	return string(first) + value[size:]
}
