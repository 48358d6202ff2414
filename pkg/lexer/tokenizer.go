package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenSymbol
	TokenWord
)

var kindNames = [...]string{"Invalid", "Symbol", "Word"}

func (k TokenKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

type Token struct {
	Kind TokenKind
	Span Span
	fold bool
}

func (tok Token) Text() string {
	return tok.Span.Text()
}

// Word is the token text, upper-cased when the lexer folds case.
func (tok Token) Word() string {
	if tok.fold {
		return strings.ToUpper(tok.Text())
	}
	return tok.Text()
}

func (tok Token) IsSymbol(text string) bool {
	return tok.Kind == TokenSymbol && tok.Text() == text
}

func (tok Token) String() string {
	return fmt.Sprintf("<%s[%s] = %q>", tok.Kind, tok.Span, tok.Text())
}

// Tokenize splits src into tokens, skipping spaces. An unrecognized
// character ends the output as a single TokenInvalid.
func (lex *Lexer) Tokenize(src *Source) (out []Token) {
	rest := src.All()
	for {
		rest = rest.TrimLeft(IsSpace)
		if rest.Empty() {
			return out
		}

		var tok Token
		tok, rest = lex.next(rest)
		out = append(out, tok)
		if tok.Kind == TokenInvalid {
			return out
		}
	}
}

func (lex *Lexer) next(s Span) (Token, Span) {
	chr, size := utf8.DecodeRuneInString(s.Text())
	kind := TokenInvalid
	if IsWord(chr) {
		kind, size = TokenWord, s.Len()-s.TrimLeft(IsWord).Len()
	} else if n := lex.symbolLen(s); n > 0 {
		kind, size = TokenSymbol, n
	}

	head, rest := s.Head(size)
	return Token{Kind: kind, Span: head, fold: lex.FoldCase}, rest
}
