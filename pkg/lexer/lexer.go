// Package lexer splits bracketed type notation into word and symbol tokens.
package lexer

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// TypeSymbols are the punctuation tokens of the type notation.
var TypeSymbols = []string{"=>", "(", ")", "{", "}", "|", "_", "^"}

// Lexer recognizes runs of word characters and a fixed set of symbols.
// Overlapping symbols match longest first.
type Lexer struct {
	// FoldCase makes Token.Word report words upper-cased.
	FoldCase bool

	symbols []string
	match   *regexp.Regexp
}

func New(symbols ...string) *Lexer {
	lex := &Lexer{}
	lex.AddSymbols(symbols...)
	return lex
}

// NewTypeLexer returns a case-folding lexer for notation such as
// `({D|2}_V=>(D=>2))^N`.
func NewTypeLexer() *Lexer {
	lex := New(TypeSymbols...)
	lex.FoldCase = true
	return lex
}

func (lex *Lexer) AddSymbols(symbols ...string) {
	if len(symbols) == 0 {
		return
	}
	lex.symbols = append(lex.symbols, symbols...)
	sort.SliceStable(lex.symbols, func(a, b int) bool {
		return len(lex.symbols[a]) > len(lex.symbols[b])
	})

	quoted := make([]string, len(lex.symbols))
	for i, it := range lex.symbols {
		quoted[i] = regexp.QuoteMeta(it)
	}
	lex.match = regexp.MustCompile("^(?:" + strings.Join(quoted, "|") + ")")
}

// symbolLen returns the byte length of the symbol starting s, or zero.
func (lex *Lexer) symbolLen(s Span) int {
	if lex.match == nil {
		return 0
	}
	return len(lex.match.FindString(s.Text()))
}

func IsSpace(chr rune) bool {
	return unicode.IsSpace(chr)
}

// IsWord accepts the ASCII letters and digits that make up base symbols and
// exponents.
func IsWord(chr rune) bool {
	return ('0' <= chr && chr <= '9') || ('a' <= chr && chr <= 'z') || ('A' <= chr && chr <= 'Z')
}
