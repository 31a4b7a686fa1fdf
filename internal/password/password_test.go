package password

import (
	"errors"
	"testing"

	"horsebat/internal/words"
)

// sliceSource yields a fixed list and then reports exhaustion.
type sliceSource struct {
	words []string
	pulls int
}

func (s *sliceSource) Next() (string, error) {
	if s.pulls >= len(s.words) {
		s.pulls++
		return "", words.ErrExhausted
	}
	w := s.words[s.pulls]
	s.pulls++
	return w, nil
}

func TestAssemble(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		opts  Options
		want  string
	}{
		{"joins in pull order", []string{"Correct", "Horse", "Battery", "Staple"}, Options{Count: 4}, "CorrectHorseBatteryStaple"},
		{"separator", []string{"cat", "dog"}, Options{Count: 2, Separator: "-"}, "cat-dog"},
		{"first lower", []string{"Correct", "Horse"}, Options{Count: 2, FirstCase: words.CaseLower}, "correctHorse"},
		{"first upper", []string{"correct", "horse"}, Options{Count: 2, Separator: " ", FirstCase: words.CaseUpper}, "Correct horse"},
		{"first unchanged", []string{"Correct"}, Options{Count: 1, FirstCase: words.CaseUnchanged}, "Correct"},
		{"first title ignored", []string{"correct"}, Options{Count: 1, FirstCase: words.CaseTitle}, "correct"},
		{"takes only count", []string{"a1", "b2", "c3"}, Options{Count: 2, Separator: "."}, "a1.b2"},
		{"zero count is empty", []string{"unused"}, Options{Count: 0, FirstCase: words.CaseUpper}, ""},
		{"first char is separator", []string{"", "word"}, Options{Count: 2, Separator: "_", FirstCase: words.CaseUpper}, "_word"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Assemble(&sliceSource{words: tt.words}, tt.opts)
			if err != nil {
				t.Fatalf("Assemble returned error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Assemble = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAssembleExhaustionReturnsNoPartialPassword(t *testing.T) {
	src := &sliceSource{words: []string{"only", "two"}}

	got, err := Assemble(src, Options{Count: 3, Separator: "-"})
	if !errors.Is(err, words.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if got != "" {
		t.Fatalf("expected no partial password, got %q", got)
	}
	if err.Error() != "word 3 of 3: word pool exhausted" {
		t.Fatalf("unexpected error text: %q", err.Error())
	}
	if src.pulls != 3 {
		t.Fatalf("expected 3 pulls, got %d", src.pulls)
	}
}

func TestAssembleFromSequenceScenario(t *testing.T) {
	seq := words.NewSequence(
		[]string{"cat", "dog", "eagle", "ox", "pigeon"},
		words.Random(false),
		words.Unique(true),
		words.WithBounds(words.Bounds{Min: 3, Max: 6}),
		words.WithNormalizer(words.Normalizer{Case: words.CaseLower, Separator: "-"}),
	)

	got, err := Assemble(seq, Options{Count: 2, Separator: "-", FirstCase: words.CaseUnchanged})
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if got != "cat-dog" {
		t.Fatalf("Assemble = %q, want %q", got, "cat-dog")
	}
}

func TestAssembleNegativeCount(t *testing.T) {
	if _, err := Assemble(&sliceSource{}, Options{Count: -1}); err == nil {
		t.Fatal("expected error for negative count")
	}
}
