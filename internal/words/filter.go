package words

import "unicode/utf8"

// Bounds limits accepted word lengths, counted in characters. A zero bound is
// disabled.
type Bounds struct {
	Min int
	Max int
}

// Accept reports whether word satisfies both bounds.
func (b Bounds) Accept(word string) bool {
	n := utf8.RuneCountInString(word)
	if b.Min > 0 && n < b.Min {
		return false
	}
	if b.Max > 0 && n > b.Max {
		return false
	}
	return true
}
