package semtype

import (
	"fmt"
	"math"
	"strconv"

	"github.com/bkane2/ulf-lib/pkg/lexer"
	"github.com/hashicorp/go-multierror"
)

// MaxExponent is the largest literal exponent Parse accepts.
const MaxExponent = math.MaxInt32

var typeLexer = lexer.NewTypeLexer()

var closerOf = map[string]string{
	"(": ")",
	"{": "}",
}

// Parse reads a type in the canonical notation, ignoring case and spaces
// between tokens:
//
//	Type     := Atomic | Functional | Alternation
//	Atomic   := [A-Z0-9]+ Tags Exp
//	Funct    := "(" Type "=>" Type ")" Tags Exp
//	Altern   := "{" [Type] "|" [Type] "}" Exp
//	Tags     := ["_" (N|A|V|P)] ["_" (U|T)]
//	Exp      := ["^" (digits | letter)]
//
// A letter exponent is a variable and expands as described by Construct. An
// empty alternation option is the eliminated zero-exponent member that Format
// writes for such expansions.
//
// Every error returned is a *ParseError.
func Parse(text string) (Type, error) {
	src := lexer.NewSource("", text)
	p := &parser{src: src, tokens: typeLexer.Tokenize(src)}

	count := len(p.tokens)
	if count == 0 {
		return nil, p.errorAt(0, "empty type")
	}
	if last := p.tokens[count-1]; last.Kind == lexer.TokenInvalid {
		return nil, p.errorAt(count-1, "invalid character %q", last.Text())
	}
	p.pairBrackets()
	return p.parseType(0, count)
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Type {
	t, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseAll parses each line, returning one entry per line (nil where parsing
// failed) together with every failure.
func ParseAll(lines []string) ([]Type, error) {
	var errs *multierror.Error
	out := make([]Type, len(lines))
	for i, it := range lines {
		t, err := Parse(it)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("line %d: %w", i+1, err))
			continue
		}
		out[i] = t
	}
	return out, errs.ErrorOrNil()
}

type parser struct {
	src    *lexer.Source
	tokens []lexer.Token

	// match holds, for each opening bracket, the index of its closer, or -1
	// when it is never closed. Other entries are unused.
	match      []int
	bracketErr error
}

type suffix struct {
	exp   Exponent
	sub   Subscript
	tense Tense
}

func (p *parser) parseType(sta, end int) (Type, error) {
	if sta >= end {
		return nil, p.errorAt(sta, "expected a type")
	}

	tok := &p.tokens[sta]
	switch {
	case tok.IsSymbol("("):
		return p.parseFunctional(sta, end)
	case tok.IsSymbol("{"):
		return p.parseAlternation(sta, end)
	case tok.Kind == lexer.TokenWord:
		return p.parseAtomic(sta, end)
	}
	return nil, p.errorAt(sta, "unexpected %q", tok.Text())
}

func (p *parser) parseAtomic(sta, end int) (Type, error) {
	base := Symbol(p.tokens[sta].Word())
	suf, err := p.parseSuffix(sta+1, end, true)
	if err != nil {
		return nil, err
	}
	return Construct(Params{Domain: base, Exp: suf.exp, Sub: suf.sub, Tense: suf.tense}), nil
}

func (p *parser) parseFunctional(sta, end int) (Type, error) {
	closeAt, err := p.closing(sta, end)
	if err != nil {
		return nil, err
	}
	sep := p.separator(sta+1, closeAt, "=>")
	if sep < 0 {
		return nil, p.errorAt(sta, "missing top-level \"=>\"")
	}

	domain, err := p.parseType(sta+1, sep)
	if err != nil {
		return nil, err
	}
	rng, err := p.parseType(sep+1, closeAt)
	if err != nil {
		return nil, err
	}
	suf, err := p.parseSuffix(closeAt+1, end, true)
	if err != nil {
		return nil, err
	}
	return Construct(Params{Domain: domain, Range: rng, Exp: suf.exp, Sub: suf.sub, Tense: suf.tense}), nil
}

func (p *parser) parseAlternation(sta, end int) (Type, error) {
	closeAt, err := p.closing(sta, end)
	if err != nil {
		return nil, err
	}
	sep := p.separator(sta+1, closeAt, "|")
	if sep < 0 {
		return nil, p.errorAt(sta, "missing top-level \"|\"")
	}

	left, err := p.parseOption(sta+1, sep)
	if err != nil {
		return nil, err
	}
	right, err := p.parseOption(sep+1, closeAt)
	if err != nil {
		return nil, err
	}
	suf, err := p.parseSuffix(closeAt+1, end, false)
	if err != nil {
		return nil, err
	}
	return Construct(Params{Exp: suf.exp, Options: []Type{left, right}}), nil
}

func (p *parser) parseOption(sta, end int) (Type, error) {
	if sta == end {
		return nil, nil
	}
	return p.parseType(sta, end)
}

func (p *parser) parseSuffix(sta, end int, tags bool) (out suffix, err error) {
	i := sta
	for i < end && p.tokens[i].IsSymbol("_") {
		if !tags {
			return out, p.errorAt(i, "alternations take no subscript or tense")
		}
		tag, err := p.word(i+1, end, "subscript or tense")
		if err != nil {
			return out, err
		}
		sub, isSub := ParseSubscript(tag[0])
		tense, isTense := ParseTense(tag[0])
		switch {
		case len(tag) != 1:
			return out, p.errorAt(i+1, "unknown tag %q", tag)
		case isSub && out.sub == NoSubscript && out.tense == NoTense:
			out.sub = sub
		case isTense && out.tense == NoTense:
			out.tense = tense
		default:
			return out, p.errorAt(i+1, "unexpected tag %q", tag)
		}
		i += 2
	}

	if i < end && p.tokens[i].IsSymbol("^") {
		word, err := p.word(i+1, end, "exponent")
		if err != nil {
			return out, err
		}
		if out.exp, err = parseExponent(word); err != nil {
			return out, p.errorAt(i+1, "%v", err)
		}
		i += 2
	}

	if i < end {
		return out, p.errorAt(i, "unexpected %q", p.tokens[i].Text())
	}
	return out, nil
}

func parseExponent(word string) (Exponent, error) {
	if len(word) == 1 && isLetter(word[0]) {
		return Var(word[0]), nil
	}
	for i := 0; i < len(word); i++ {
		if word[i] < '0' || word[i] > '9' {
			return nil, fmt.Errorf("invalid exponent %q", word)
		}
	}
	n, err := strconv.Atoi(word)
	if err != nil || n > MaxExponent {
		return nil, fmt.Errorf("exponent %s exceeds %d", word, MaxExponent)
	}
	if n < 1 {
		return nil, fmt.Errorf("exponent must be positive, got %d", n)
	}
	return Exp(n), nil
}

func isLetter(chr byte) bool {
	return 'A' <= chr && chr <= 'Z'
}

// word returns the upper-cased word at index i.
func (p *parser) word(i, end int, what string) (string, error) {
	if i >= end || p.tokens[i].Kind != lexer.TokenWord {
		return "", p.errorAt(i, "expected %s", what)
	}
	return p.tokens[i].Word(), nil
}

// pairBrackets matches every bracket in one pass. Scanning stops at the
// first closer of the wrong kind, leaving the enclosing openers unmatched. A
// closer with nothing open is left for the parser to report where it stands.
func (p *parser) pairBrackets() {
	p.match = make([]int, len(p.tokens))
	var stack []int
	for i, tok := range p.tokens {
		p.match[i] = -1
		if tok.Kind != lexer.TokenSymbol {
			continue
		}
		switch text := tok.Text(); text {
		case "(", "{":
			stack = append(stack, i)
		case ")", "}":
			if len(stack) == 0 {
				continue
			}
			open := stack[len(stack)-1]
			if closerOf[p.tokens[open].Text()] != text {
				p.bracketErr = p.errorAt(i, "%q does not close %q", text, p.tokens[open].Text())
				return
			}
			p.match[open] = i
			stack = stack[:len(stack)-1]
		}
	}
}

// closing returns the index of the bracket matching the one at sta.
func (p *parser) closing(sta, end int) (int, error) {
	if at := p.match[sta]; at >= 0 && at < end {
		return at, nil
	}
	if p.bracketErr != nil {
		return -1, p.bracketErr
	}
	return -1, p.errorAt(sta, "unbalanced %q", p.tokens[sta].Text())
}

// separator returns the index of the first sep token outside any bracket in
// [sta, end), or -1. Brackets in the range must be matched.
func (p *parser) separator(sta, end int, sep string) int {
	for i := sta; i < end; i++ {
		tok := p.tokens[i]
		switch {
		case tok.IsSymbol("(") || tok.IsSymbol("{"):
			if p.match[i] < 0 {
				return -1
			}
			i = p.match[i]
		case tok.IsSymbol(sep):
			return i
		}
	}
	return -1
}

func (p *parser) errorAt(i int, msg string, args ...any) error {
	offset := len(p.src.Text)
	if i < len(p.tokens) {
		offset = p.tokens[i].Span.Sta
	}
	span := lexer.Span{Src: p.src, Sta: offset, End: offset}
	return &ParseError{
		Input:  p.src.Text,
		Offset: offset,
		Column: span.Column(),
		Msg:    fmt.Sprintf(msg, args...),
	}
}
