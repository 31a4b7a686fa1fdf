package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteWordlist writes lines, one per line with a trailing newline, to path.
func WriteWordlist(t testing.TB, path string, lines ...string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// TempWordlist writes lines to a fresh temp file and returns its path.
func TempWordlist(t testing.TB, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "words.txt")
	WriteWordlist(t, path, lines...)
	return path
}
