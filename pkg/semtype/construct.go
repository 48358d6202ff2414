package semtype

import (
	"fmt"
	"strings"

	"github.com/bkane2/ulf-lib/util"
)

// Exponent is the exponent argument of Construct: a concrete Exp, an ordered
// list built with Exps, or an unbound Var.
type Exponent interface {
	exponent()
}

// Exp is a concrete exponent. Zero means "no type".
type Exp int

// Var is a symbolic exponent such as the `N` in `D^N`. It ranges over
// VarValues.
type Var byte

type expList []Exponent

func (Exp) exponent()     {}
func (Var) exponent()     {}
func (expList) exponent() {}

// VarValues are the values a variable exponent expands to.
var VarValues = [...]int{0, 1, 2, 3, 4, 5}

// Exps returns the list exponent `values...`. Constructing with it yields the
// right-leaning alternation of one type per value.
func Exps(values ...Exponent) Exponent {
	return expList(values)
}

// Ints is shorthand for Exps over concrete values.
func Ints(values ...int) Exponent {
	out := make(expList, len(values))
	for i, it := range values {
		out[i] = Exp(it)
	}
	return out
}

func (v Var) String() string {
	return string(rune(v))
}

func (e expList) String() string {
	parts := make([]string, len(e))
	for i, it := range e {
		parts[i] = fmt.Sprint(it)
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func varExpansion() expList {
	out := make(expList, len(VarValues))
	for i, it := range VarValues {
		out[i] = Exp(it)
	}
	return out
}

// Params are the raw constructor arguments.
type Params struct {
	// Domain is a Type, a Symbol (for atomic types) or nil. Without a Range,
	// a Type domain is returned redecorated rather than wrapped in an atomic.
	Domain Operand
	// Range is a Type or nil. A Symbol is promoted to an atomic type.
	Range Operand
	// Exp defaults to Exp(1) when nil.
	Exp   Exponent
	Sub   Subscript
	Tense Tense
	// Options, when set, must hold exactly two types and makes the result an
	// alternation over them.
	Options []Type
}

// Construct builds a type from raw parameters. It never fails: a zero
// exponent gives the nil Type, and malformed operands give a best-effort value.
//
// Resolution order:
//   - a list or variable exponent expands into a right-leaning alternation
//     chain with one member per exponent value;
//   - a zero exponent yields nil;
//   - Options build an alternation;
//   - with a range, a domain alternation with exponent 1 distributes over the
//     range (`{A|B}=>C` becomes `{(A=>C)|(B=>C)}`), any other domain builds a
//     functional type, and a missing domain yields the range redecorated;
//   - without a range, the domain symbol becomes an atomic type.
//
// Every Type argument is copied, so the result never shares structure with
// the caller.
func Construct(p Params) Type {
	p.Domain = copyOperand(p.Domain)
	p.Range = copyOperand(p.Range)
	p.Options = copyOptions(p.Options)

	exp := Exp(1)
	switch e := p.Exp.(type) {
	case nil:
	case Exp:
		exp = e
	case expList:
		return expand(p, e)
	case Var:
		return expand(p, varExpansion())
	default:
		panic(fmt.Sprintf("semtype: unknown exponent %T", p.Exp))
	}

	if exp == 0 {
		return nil
	}
	dec := decor{int(exp), p.Sub, p.Tense}

	if p.Options != nil {
		util.Assert(len(p.Options) == 2, util.Msg("alternation needs two options, got %d", len(p.Options)))
		return &Alternation{dec, p.Options[0], p.Options[1]}
	}

	if p.Range != nil {
		rng := promote(p.Range)
		if alt, ok := p.Domain.(*Alternation); ok && alt.exp == 1 {
			return &Alternation{
				decor: decor{exp: dec.exp},
				left:  Construct(Params{Domain: alt.left, Range: rng, Exp: Exp(1), Sub: p.Sub, Tense: p.Tense}),
				right: Construct(Params{Domain: alt.right, Range: rng, Exp: Exp(1), Sub: p.Sub, Tense: p.Tense}),
			}
		}
		if p.Domain != nil {
			return &Functional{dec, promote(p.Domain), rng}
		}
		return redecorate(rng, dec)
	}

	switch d := p.Domain.(type) {
	case Symbol:
		return &Atomic{dec, d}
	case Type:
		return redecorate(d, dec)
	}
	return nil
}

// expand builds `{first|rest}` over the exponent values, keeping every other
// parameter.
func expand(p Params, values expList) Type {
	if len(values) == 0 {
		return nil
	}

	first := p
	first.Exp = values[0]
	if len(values) == 1 {
		return Construct(first)
	}

	rest := p
	rest.Exp = values[1:]
	return &Alternation{
		decor: decor{exp: 1},
		left:  Construct(first),
		right: Construct(rest),
	}
}

// promote turns a bare symbol operand into the atomic type it names.
func promote(op Operand) Type {
	switch op := op.(type) {
	case Symbol:
		return &Atomic{decor{exp: 1}, op}
	case Type:
		return op
	}
	return nil
}

// redecorate returns a fresh copy of t carrying dec instead of its own
// decorations.
func redecorate(t Type, dec decor) Type {
	switch t := t.(type) {
	case *Atomic:
		return &Atomic{dec, t.base}
	case *Functional:
		return &Functional{dec, t.domain, t.rng}
	case *Alternation:
		return &Alternation{dec, t.left, t.right}
	}
	panic(unknownType(t))
}
