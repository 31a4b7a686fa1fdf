// Package generate runs one password generation end to end: load the word
// list, draw words through a words.Sequence, and assemble the result.
//
// It is the only place that knows about every stage, so the CLI stays a thin
// translation from flags to Options. Each Run logs under its own run_id.
package generate
