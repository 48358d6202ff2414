package util

import (
	"regexp"
	"strings"
	"unicode"
)

// CommentPrefix starts a comment line in type listings.
const CommentPrefix = "#"

var (
	lineBreak   = regexp.MustCompile(`\r\n?|\n`)
	leadingTabs = regexp.MustCompile(`^\t+`)
)

// Lines splits input at any of the `\n`, `\r\n` or `\r` line breaks.
func Lines(input string) []string {
	return lineBreak.Split(input, -1)
}

// TrimLines strips trailing spaces in place and drops trailing blank lines.
func TrimLines(lines []string) []string {
	last := 0
	for i := range lines {
		lines[i] = strings.TrimRightFunc(lines[i], unicode.IsSpace)
		if lines[i] != "" {
			last = i + 1
		}
	}
	return lines[:last]
}

// SourceLines returns the trimmed non-blank lines of a type listing, skipping
// comments.
func SourceLines(input string) (out []string) {
	for _, it := range Lines(input) {
		it = strings.TrimSpace(it)
		if it != "" && !strings.HasPrefix(it, CommentPrefix) {
			out = append(out, it)
		}
	}
	return out
}

// Text dedents a multi-line literal by the indentation of its first
// non-blank line. Leading tabs count as four spaces. Blank lines around the
// text are dropped.
func Text(input string) string {
	lines := TrimLines(Lines(input))
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return ""
	}

	for i, it := range lines {
		lines[i] = leadingTabs.ReplaceAllStringFunc(it, func(tabs string) string {
			return strings.Repeat("    ", len(tabs))
		})
	}

	first := lines[0]
	indent := first[:len(first)-len(strings.TrimLeftFunc(first, unicode.IsSpace))]
	for i, it := range lines {
		lines[i] = strings.TrimPrefix(it, indent)
	}
	return strings.Join(lines, "\n")
}
