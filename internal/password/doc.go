// Package password glues words from a Source into the final passphrase.
//
// Assemble is all-or-nothing: it either pulls exactly the requested number of
// words or returns the source's error without a partial result.
package password
