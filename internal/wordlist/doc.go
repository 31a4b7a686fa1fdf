// Package wordlist reads newline-delimited word lists.
//
// Each line becomes one entry with surrounding whitespace removed. Blank lines
// are kept as empty entries; deciding whether an entry is usable belongs to
// the caller. Access failures are reported as *FileAccessError so callers can
// tell a missing dictionary apart from later pipeline errors.
package wordlist
