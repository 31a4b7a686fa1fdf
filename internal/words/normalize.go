package words

import "horsebat/internal/textutil"

// Normalizer converts a raw dictionary entry into a password word.
type Normalizer struct {
	Case Case
	// Separator replaces punctuation runs inside a word during slugification.
	Separator string
}

// Normalize slugifies raw with n.Separator and then applies n.Case. The
// result may be empty; length filtering is responsible for rejecting it.
func (n Normalizer) Normalize(raw string) string {
	return n.Case.Apply(textutil.Slugify(raw, n.Separator))
}
