package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Source is a piece of input text. The name only shows up in locations.
type Source struct {
	Name string
	Text string
}

func NewSource(name, text string) *Source {
	return &Source{Name: name, Text: text}
}

// All returns the span covering the whole source.
func (src *Source) All() Span {
	return Span{Src: src, Sta: 0, End: len(src.Text)}
}

// Span is the byte range [Sta, End) of a Source. Type notation fits on one
// line, so a position is just a column.
type Span struct {
	Src *Source
	Sta int
	End int
}

func (s Span) Text() string { return s.Src.Text[s.Sta:s.End] }
func (s Span) Len() int     { return s.End - s.Sta }
func (s Span) Empty() bool  { return s.End <= s.Sta }

// Column is the 1-based rune column where the span starts.
func (s Span) Column() int {
	return utf8.RuneCountInString(s.Src.Text[:s.Sta]) + 1
}

func (s Span) Location() string {
	if s.Src.Name == "" {
		return fmt.Sprintf("col %d", s.Column())
	}
	return fmt.Sprintf("%s:%d", s.Src.Name, s.Column())
}

func (s Span) String() string {
	return fmt.Sprintf("%d+%d", s.Sta, s.Len())
}

// Head splits s after its first n bytes. n is clamped to the span length.
func (s Span) Head(n int) (head, rest Span) {
	n = min(max(n, 0), s.Len())
	head, rest = s, s
	head.End = s.Sta + n
	rest.Sta = s.Sta + n
	return head, rest
}

// TrimLeft drops the leading runes of s that satisfy cond.
func (s Span) TrimLeft(cond func(rune) bool) Span {
	text := s.Text()
	_, rest := s.Head(len(text) - len(strings.TrimLeftFunc(text, cond)))
	return rest
}
