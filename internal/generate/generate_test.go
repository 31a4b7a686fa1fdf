package generate_test

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"horsebat/internal/generate"
	"horsebat/internal/logging"
	"horsebat/internal/testsupport"
	"horsebat/internal/wordlist"
	"horsebat/internal/words"
)

func TestRunScenario(t *testing.T) {
	path := testsupport.TempWordlist(t, "cat", "dog", "eagle", "ox", "pigeon")

	res, err := generate.Run(context.Background(), generate.Options{
		WordlistPath: path,
		Case:         words.CaseLower,
		FirstCase:    words.CaseUnchanged,
		Separator:    "-",
		MinLength:    3,
		MaxLength:    6,
		Random:       false,
		Unique:       true,
		Count:        2,
	}, logging.NewNop())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Password != "cat-dog" {
		t.Fatalf("Password = %q, want %q", res.Password, "cat-dog")
	}
	if res.ListSize != 5 || res.Stats.Drawn != 2 || res.Stats.Remaining() != 3 {
		t.Fatalf("unexpected result bookkeeping: %+v", res)
	}
	if res.RunID == "" {
		t.Fatal("expected run id")
	}
}

func TestRunFromConfigDefaults(t *testing.T) {
	cfg := testsupport.NewConfig(t,
		testsupport.WithWords("correct", "horse", "battery", "staple", "ox", "a"),
		testsupport.Sequential(),
	)

	res, err := generate.Run(context.Background(), generate.OptionsFromConfig(cfg), logging.NewNop())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Password != "correctHorseBatteryStaple" {
		t.Fatalf("Password = %q", res.Password)
	}
}

func TestRunSequentialIsDeterministic(t *testing.T) {
	cfg := testsupport.NewConfig(t,
		testsupport.WithWords("zephyr", "quartz", "jumble", "wizard", "oxygen", "fjord"),
		testsupport.Sequential(),
	)
	opts := generate.OptionsFromConfig(cfg)

	first, err := generate.Run(context.Background(), opts, logging.NewNop())
	if err != nil {
		t.Fatalf("first Run: %v", err)
	}
	second, err := generate.Run(context.Background(), opts, logging.NewNop())
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if first.Password != second.Password {
		t.Fatalf("sequential runs differ: %q vs %q", first.Password, second.Password)
	}
}

func TestRunRandomUniqueWords(t *testing.T) {
	path := testsupport.TempWordlist(t, "amber", "birch", "cedar", "daisy", "amber", "birch")

	for seed := range uint64(25) {
		res, err := generate.Run(context.Background(), generate.Options{
			WordlistPath: path,
			Case:         words.CaseLower,
			Separator:    " ",
			Random:       true,
			Unique:       true,
			Count:        4,
			Rand:         rand.New(rand.NewPCG(seed, 99)),
		}, logging.NewNop())
		if err != nil {
			t.Fatalf("seed %d: Run returned error: %v", seed, err)
		}
		parts := strings.Split(res.Password, " ")
		seen := map[string]bool{}
		for _, part := range parts {
			if seen[part] {
				t.Fatalf("seed %d: repeated word in %q", seed, res.Password)
			}
			seen[part] = true
		}
	}
}

func TestRunExhaustion(t *testing.T) {
	path := testsupport.TempWordlist(t, "alpha", "alpha", "beta", "xy")

	res, err := generate.Run(context.Background(), generate.Options{
		WordlistPath: path,
		MinLength:    3,
		Random:       true,
		Unique:       true,
		Count:        3,
	}, logging.NewNop())
	if !errors.Is(err, words.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if res.Password != "" {
		t.Fatalf("expected no password on exhaustion, got %q", res.Password)
	}
	if res.Stats.Drawn != 4 || res.Stats.Yielded != 2 {
		t.Fatalf("unexpected stats: %+v", res.Stats)
	}
}

func TestRunMissingWordlist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := generate.Run(context.Background(), generate.Options{WordlistPath: path, Count: 1}, logging.NewNop())
	var accessErr *wordlist.FileAccessError
	if !errors.As(err, &accessErr) {
		t.Fatalf("expected FileAccessError, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := generate.Run(ctx, generate.Options{}, logging.NewNop()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunLogsRunIDAtDebug(t *testing.T) {
	path := testsupport.TempWordlist(t, "alpha", "bravo")
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}

	res, err := generate.Run(context.Background(), generate.Options{WordlistPath: path, Count: 2, Random: false}, logger)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "run_id="+res.RunID) {
		t.Fatalf("expected run id in logs, got %q", out)
	}
	if !strings.Contains(out, "generate: word list loaded") {
		t.Fatalf("expected component prefix in logs, got %q", out)
	}
	if strings.Contains(out, res.Password) {
		t.Fatalf("password leaked into logs: %q", out)
	}
}
