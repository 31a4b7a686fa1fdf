package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"horsebat/internal/generate"
	"horsebat/internal/words"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const errorPrefix = "horsebat:"

func renderError(err error, colorize bool) string {
	prefix := errorPrefix
	if colorize {
		prefix = ansiRed + prefix + ansiReset
	}
	msg := err.Error()
	if errors.Is(err, words.ErrExhausted) {
		msg += " (try a larger word list, wider length bounds, or fewer words)"
	}
	return prefix + " " + msg
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

// renderStats summarizes how the word pool was consumed. It never includes
// the selected words.
func renderStats(res generate.Result, colorize bool) string {
	s := res.Stats
	used := fmt.Sprintf("%d / %d", s.Yielded, res.Requested)
	if s.Yielded < res.Requested && colorize {
		used = ansiYellow + used + ansiReset
	}
	rows := []statRow{
		{"Word list", res.Wordlist},
		{"Entries", strconv.Itoa(res.ListSize)},
		{"Drawn", strconv.Itoa(s.Drawn)},
		{"Rejected (length)", strconv.Itoa(s.RejectedLength)},
		{"Rejected (duplicate)", strconv.Itoa(s.RejectedDuplicate)},
		{"Words used", used},
		{"Left in pool", strconv.Itoa(s.Remaining())},
	}

	lines := renderSectionHeader("Selection", colorize)
	lines = append(lines, renderStatsTable(rows))
	return strings.Join(lines, "\n")
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
