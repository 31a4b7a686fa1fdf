// Package words turns a raw word list into a stream of usable password words.
//
// A Normalizer slugifies each entry and applies a case transform, Bounds
// rejects words outside the configured length range, and Sequence draws
// entries from a private copy of the list, one at a time, until it runs dry.
//
// Every draw consumes a pool slot for good, whether or not the drawn word is
// accepted. A Sequence therefore ends with ErrExhausted once the pool is
// empty, and it cannot be rewound; build a new one from the original list to
// start over.
package words
