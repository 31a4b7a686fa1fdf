package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineBytes bounds a single line; dictionary entries are far shorter.
const maxLineBytes = 1 << 20

// FileAccessError reports a word list that could not be opened or read.
type FileAccessError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// Load returns the trimmed lines of the file at path, in file order.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Op: "open", Err: unwrapPathError(err)}
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, &FileAccessError{Path: path, Op: "stat", Err: unwrapPathError(err)}
	}
	if info.IsDir() {
		return nil, &FileAccessError{Path: path, Op: "read", Err: errIsDirectory}
	}

	lines, err := Read(file)
	if err != nil {
		return nil, &FileAccessError{Path: path, Op: "read", Err: unwrapPathError(err)}
	}
	return lines, nil
}

// Read returns the trimmed lines of r. A final newline does not add an empty
// entry.
func Read(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
