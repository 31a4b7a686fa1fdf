package generate

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"horsebat/internal/config"
	"horsebat/internal/logging"
	"horsebat/internal/password"
	"horsebat/internal/wordlist"
	"horsebat/internal/words"
)

// Options configures a single run.
type Options struct {
	WordlistPath  string
	Case          words.Case
	FirstCase     words.Case
	Separator     string
	SlugSeparator string
	MinLength     int
	MaxLength     int
	Random        bool
	Unique        bool
	Count         int
	// Rand overrides the random source; nil uses the auto-seeded default.
	Rand *rand.Rand
}

// OptionsFromConfig maps a validated config onto run options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		WordlistPath:  cfg.Wordlist.Path,
		Case:          words.Case(cfg.Cleanup.Case),
		FirstCase:     words.Case(cfg.Cleanup.FirstCase),
		Separator:     cfg.Cleanup.Separator,
		SlugSeparator: cfg.Cleanup.SlugSeparator,
		MinLength:     cfg.Selection.MinLength,
		MaxLength:     cfg.Selection.MaxLength,
		Random:        cfg.Selection.Random,
		Unique:        cfg.Selection.Unique,
		Count:         cfg.Selection.WordCount,
	}
}

// Result is the outcome of a run.
type Result struct {
	Password string
	RunID    string
	Wordlist string
	// Loaded reports whether the word list was read; ListSize and Stats are
	// meaningful only when it is set.
	Loaded    bool
	ListSize  int
	Stats     words.Stats
	Requested int
}

// Run loads the word list and assembles one password. No partial password is
// ever returned: on error Result.Password is empty, but Stats still describe
// how far sequencing got.
func Run(ctx context.Context, opts Options, logger *slog.Logger) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	logger = logging.WithContext(ctx, logging.NewComponentLogger(logger, "generate"))
	result := Result{RunID: runID, Wordlist: opts.WordlistPath, Requested: opts.Count}

	list, err := wordlist.Load(opts.WordlistPath)
	if err != nil {
		logger.Debug("word list unavailable",
			logging.String(logging.FieldEventType, "wordlist_unavailable"),
			logging.String("path", opts.WordlistPath),
			logging.Error(err),
		)
		return result, fmt.Errorf("load word list: %w", err)
	}
	result.Loaded = true
	result.ListSize = len(list)
	logger.Debug("word list loaded",
		logging.String(logging.FieldEventType, "wordlist_loaded"),
		logging.String("path", opts.WordlistPath),
		logging.Int("entries", len(list)),
	)

	seqOpts := []words.Option{
		words.Random(opts.Random),
		words.Unique(opts.Unique),
		words.WithBounds(words.Bounds{Min: opts.MinLength, Max: opts.MaxLength}),
		words.WithNormalizer(words.Normalizer{Case: opts.Case, Separator: opts.SlugSeparator}),
	}
	if opts.Rand != nil {
		seqOpts = append(seqOpts, words.WithRand(opts.Rand))
	}
	seq := words.NewSequence(list, seqOpts...)

	pw, err := password.Assemble(seq, password.Options{
		Count:     opts.Count,
		Separator: opts.Separator,
		FirstCase: opts.FirstCase,
	})
	result.Stats = seq.Stats()
	logger.Debug("sequence finished", statsAttrs(result.Stats)...)
	if err != nil {
		return result, fmt.Errorf("assemble password from %s: %w", opts.WordlistPath, err)
	}

	result.Password = pw
	return result, nil
}

func statsAttrs(s words.Stats) []any {
	return logging.Args(
		logging.String(logging.FieldEventType, "sequence_finished"),
		logging.Int("pool_size", s.PoolSize),
		logging.Int("drawn", s.Drawn),
		logging.Int("rejected_length", s.RejectedLength),
		logging.Int("rejected_duplicate", s.RejectedDuplicate),
		logging.Int("yielded", s.Yielded),
	)
}
