package words

import (
	"errors"
	"iter"
	"math/rand/v2"
	"slices"
)

// ErrExhausted is returned by Sequence.Next once the candidate pool is empty.
var ErrExhausted = errors.New("word pool exhausted")

// Stats counts what happened to the candidate pool. It never contains words.
type Stats struct {
	PoolSize          int
	Drawn             int
	RejectedLength    int
	RejectedDuplicate int
	Yielded           int
}

// Remaining returns the number of candidates not yet drawn.
func (s Stats) Remaining() int {
	return s.PoolSize - s.Drawn
}

// Option configures a Sequence.
type Option func(*Sequence)

// Random selects uniform random draws (the default) or file order.
func Random(enabled bool) Option {
	return func(s *Sequence) {
		s.random = enabled
	}
}

// Unique controls whether a normalized word may be yielded more than once.
// Enabled by default.
func Unique(enabled bool) Option {
	return func(s *Sequence) {
		s.unique = enabled
	}
}

// WithBounds sets the accepted length range. Both bounds are disabled by
// default.
func WithBounds(b Bounds) Option {
	return func(s *Sequence) {
		s.bounds = b
	}
}

// WithNormalizer sets the normalizer applied to every drawn entry.
func WithNormalizer(n Normalizer) Option {
	return func(s *Sequence) {
		s.normalizer = n
	}
}

// WithRand sets the random source used for draws. Without it the
// automatically seeded top-level math/rand/v2 generator is used.
func WithRand(rng *rand.Rand) Option {
	return func(s *Sequence) {
		s.rng = rng
	}
}

// Sequence lazily yields accepted, normalized words drawn without replacement
// from a private copy of a word list. It is not safe for concurrent use.
type Sequence struct {
	pool       []string
	random     bool
	unique     bool
	bounds     Bounds
	normalizer Normalizer
	rng        *rand.Rand
	seen       map[string]struct{}
	stats      Stats
}

// NewSequence copies list into a fresh candidate pool. The caller's slice is
// never modified.
func NewSequence(list []string, opts ...Option) *Sequence {
	s := &Sequence{
		pool:   slices.Clone(list),
		random: true,
		unique: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.unique {
		s.seen = make(map[string]struct{})
	}
	s.stats.PoolSize = len(s.pool)
	return s
}

// Next draws candidates until one passes the length filter and, when
// uniqueness is enabled, has not been yielded before. Rejected candidates are
// not offered again. It returns ErrExhausted when the pool runs dry.
func (s *Sequence) Next() (string, error) {
	for len(s.pool) > 0 {
		word := s.normalizer.Normalize(s.draw())
		s.stats.Drawn++

		if !s.bounds.Accept(word) {
			s.stats.RejectedLength++
			continue
		}
		if s.unique {
			if _, dup := s.seen[word]; dup {
				s.stats.RejectedDuplicate++
				continue
			}
			s.seen[word] = struct{}{}
		}
		s.stats.Yielded++
		return word, nil
	}
	return "", ErrExhausted
}

// All returns an iterator over the remaining words. It stops at exhaustion;
// words pulled through it are consumed from the Sequence like Next.
func (s *Sequence) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			word, err := s.Next()
			if err != nil || !yield(word) {
				return
			}
		}
	}
}

// Stats returns a snapshot of the pool counters.
func (s *Sequence) Stats() Stats {
	return s.stats
}

// draw removes one raw entry from the pool. Random draws swap the last entry
// into the vacated slot; order is irrelevant once selection is uniform.
func (s *Sequence) draw() string {
	if !s.random {
		raw := s.pool[0]
		s.pool = s.pool[1:]
		return raw
	}

	idx := s.intN(len(s.pool))
	last := len(s.pool) - 1
	raw := s.pool[idx]
	s.pool[idx] = s.pool[last]
	s.pool = s.pool[:last]
	return raw
}

func (s *Sequence) intN(n int) int {
	if s.rng != nil {
		return s.rng.IntN(n)
	}
	return rand.IntN(n)
}
