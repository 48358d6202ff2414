// Package semtype implements the semantic types used to annotate ULF
// expressions: atomic categories, curried function types and two-way
// alternations, each decorated with an exponent, an optional syntactic
// subscript and an optional tense marker.
//
// Types are written in a bracketed notation, for example `D`, `(D=>2)_V`,
// `{D|(D=>2)}^2` or `D^N` where `N` is a variable exponent. Parse and Format
// convert between the notation and Type values.
package semtype

import "fmt"

// Operand is anything the constructor accepts in a domain or range position:
// a Type or a raw base Symbol.
type Operand interface {
	operand()
}

// Symbol is the base category of an atomic type, e.g. `D` or `2`.
type Symbol string

func (Symbol) operand() {}

// Type is a semantic type value. It is implemented by *Atomic, *Functional and
// *Alternation only. A nil Type is the empty marker ("no type").
//
// Values are never mutated after they are returned by this package.
type Type interface {
	Operand
	Kind() Kind
	Exponent() int
	Subscript() Subscript
	Tense() Tense
	String() string
	aType()
}

// Kind identifies the variant of a Type.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindAtomic
	KindFunctional
	KindAlternation
)

var kindNames = [...]string{
	KindEmpty:       "empty",
	KindAtomic:      "atomic",
	KindFunctional:  "functional",
	KindAlternation: "alternation",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// KindOf returns the kind of t, or KindEmpty for the nil Type.
func KindOf(t Type) Kind {
	if t == nil {
		return KindEmpty
	}
	return t.Kind()
}

// Subscript is the syntactic category tag written as `_N`, `_A`, `_V` or `_P`.
type Subscript uint8

const (
	NoSubscript Subscript = iota
	SubN
	SubA
	SubV
	SubP
)

var subscriptNames = [...]string{"", "N", "A", "V", "P"}

func (s Subscript) String() string {
	if int(s) < len(subscriptNames) {
		return subscriptNames[s]
	}
	return fmt.Sprintf("Subscript(%d)", s)
}

// ParseSubscript returns the subscript written as the upper-case letter chr.
func ParseSubscript(chr byte) (Subscript, bool) {
	for i := SubN; int(i) < len(subscriptNames); i++ {
		if subscriptNames[i][0] == chr {
			return i, true
		}
	}
	return NoSubscript, false
}

// Tense is the tense tag written as `_U` or `_T`.
type Tense uint8

const (
	NoTense Tense = iota
	TenseU
	TenseT
)

var tenseNames = [...]string{"", "U", "T"}

func (t Tense) String() string {
	if int(t) < len(tenseNames) {
		return tenseNames[t]
	}
	return fmt.Sprintf("Tense(%d)", t)
}

// ParseTense returns the tense written as the upper-case letter chr.
func ParseTense(chr byte) (Tense, bool) {
	for i := TenseU; int(i) < len(tenseNames); i++ {
		if tenseNames[i][0] == chr {
			return i, true
		}
	}
	return NoTense, false
}

// decor holds the decorations shared by every variant.
type decor struct {
	exp   int
	sub   Subscript
	tense Tense
}

func (d *decor) Exponent() int        { return d.exp }
func (d *decor) Subscript() Subscript { return d.sub }
func (d *decor) Tense() Tense         { return d.tense }

func (*decor) operand() {}
func (*decor) aType()   {}

type Atomic struct {
	decor
	base Symbol
}

// NewAtomic returns the atomic type `base` with the given decorations.
func NewAtomic(base Symbol, exp int, sub Subscript, tense Tense) *Atomic {
	return &Atomic{decor{exp, sub, tense}, base}
}

func (t *Atomic) Kind() Kind   { return KindAtomic }
func (t *Atomic) Base() Symbol { return t.base }

// Functional is the curried function type `domain => range`.
type Functional struct {
	decor
	domain Type
	rng    Type
}

// NewFunctional returns `(domain=>rng)` with the given decorations. Both
// operands are copied.
func NewFunctional(domain, rng Type, exp int, sub Subscript, tense Tense) *Functional {
	return &Functional{decor{exp, sub, tense}, Copy(domain), Copy(rng)}
}

func (t *Functional) Kind() Kind   { return KindFunctional }
func (t *Functional) Domain() Type { return t.domain }
func (t *Functional) Range() Type  { return t.rng }

// Alternation is the two-way option type `{left|right}`. Its subscript and
// tense are carried but neither printed nor compared.
type Alternation struct {
	decor
	left  Type
	right Type
}

// NewAlternation returns `{left|right}^exp`. Both options are copied.
func NewAlternation(left, right Type, exp int) *Alternation {
	return &Alternation{decor{exp: exp}, Copy(left), Copy(right)}
}

func (t *Alternation) Kind() Kind  { return KindAlternation }
func (t *Alternation) Left() Type  { return t.left }
func (t *Alternation) Right() Type { return t.right }

func (t *Alternation) Options() [2]Type {
	return [2]Type{t.left, t.right}
}

func unknownType(t Type) string {
	return fmt.Sprintf("semtype: unknown type %T", t)
}
