package textutil

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		separator string
		want      string
	}{
		{"simple", "Hello World", "-", "hello-world"},
		{"empty separator", "Hello World", "", "helloworld"},
		{"diacritics", "Café", "", "cafe"},
		{"apostrophe splits", "don't", "-", "don-t"},
		{"apostrophe glued", "don't", "", "dont"},
		{"trims separators", "  --Trim--  ", "-", "trim"},
		{"sharp s", "Straße", "", "strasse"},
		{"slashed o", "Smørrebrød", "", "smorrebrod"},
		{"polish", "Łódź", "", "lodz"},
		{"ligature", "ﬁne", "", "fine"},
		{"digit grouping", "1,000 years", "-", "1000-years"},
		{"list comma kept as separator", "a,b", "-", "a-b"},
		{"html entity", "Fish &amp; Chips", "-", "fish-chips"},
		{"only punctuation", "!!!", "-", ""},
		{"non latin", "東京", "-", ""},
		{"collapses runs", "a__b", "_", "a_b"},
		{"multi character separator", "Ça va", "+=", "ca+=va"},
		{"empty", "", "-", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input, tt.separator); got != tt.want {
				t.Fatalf("Slugify(%q, %q) = %q, want %q", tt.input, tt.separator, got, tt.want)
			}
		})
	}
}

func TestSlugifyAlphabetAndDeterminism(t *testing.T) {
	inputs := []string{
		"Ångström", "naïve résumé", "O'Brien", "co-operate", "ZOË", "x  y\tz",
		"über-cool!!", "42nd street", "Œuvre", "crème brûlée", "", "---",
	}
	for _, sep := range []string{"", "-", "_"} {
		for _, input := range inputs {
			got := Slugify(input, sep)
			if again := Slugify(input, sep); again != got {
				t.Fatalf("Slugify(%q, %q) not deterministic: %q then %q", input, sep, got, again)
			}
			for _, r := range got {
				if isSlugRune(r) || strings.ContainsRune(sep, r) {
					continue
				}
				t.Fatalf("Slugify(%q, %q) = %q contains %q", input, sep, got, r)
			}
			if sep != "" && (strings.HasPrefix(got, sep) || strings.HasSuffix(got, sep)) {
				t.Fatalf("Slugify(%q, %q) = %q has a leading or trailing separator", input, sep, got)
			}
		}
	}
}

func TestToASCII(t *testing.T) {
	if got := ToASCII("Ærøskøbing"); got != "AEroskobing" {
		t.Fatalf("ToASCII = %q, want %q", got, "AEroskobing")
	}
	if got := ToASCII("日本"); got != "日本" {
		t.Fatalf("expected runes without a Latin base to pass through, got %q", got)
	}
}
