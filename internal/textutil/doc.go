// Package textutil turns arbitrary dictionary entries into slugs.
//
// Slugify folds text to ASCII (NFKD decomposition with combining marks
// dropped, plus a small table for Latin letters that do not decompose),
// lowercases it, and collapses every run of characters outside [a-z0-9] into
// a single separator. Leading and trailing separators never appear in the
// output. Characters with no ASCII counterpart are treated as punctuation.
package textutil
