package semtype

import (
	"fmt"
	"strings"
)

// IgnoreExponent selects how Compatible treats exponents.
type IgnoreExponent uint8

const (
	// Strict compares exponents at every level.
	Strict IgnoreExponent = iota
	// Shallow skips the exponent check at the top level only.
	Shallow
	// Recursive skips exponent checks at every level.
	Recursive
)

var ignoreNames = [...]string{"strict", "shallow", "recursive"}

func (m IgnoreExponent) String() string {
	if int(m) < len(ignoreNames) {
		return ignoreNames[m]
	}
	return fmt.Sprintf("IgnoreExponent(%d)", m)
}

// ParseIgnoreExponent returns the mode named name, ignoring case.
func ParseIgnoreExponent(name string) (IgnoreExponent, error) {
	for i, it := range ignoreNames {
		if strings.EqualFold(name, it) {
			return IgnoreExponent(i), nil
		}
	}
	return Strict, fmt.Errorf("invalid exponent mode %q (expected one of %s)", name, strings.Join(ignoreNames[:], ", "))
}

// nested is the mode for structural sub-comparisons: only a recursive
// exemption carries over.
func (m IgnoreExponent) nested() IgnoreExponent {
	if m == Recursive {
		return Recursive
	}
	return Strict
}

// option is the mode for matching a plain type against one alternation
// option, whose exponent was already accounted for.
func (m IgnoreExponent) option() IgnoreExponent {
	if m == Recursive {
		return Recursive
	}
	return Shallow
}

// Compatible reports whether x and y match structurally. Alternation options
// match in either order, and a plain type matches an alternation when it
// matches one of the options with the alternation's exponent multiplied into
// the option's. Subscripts are only compared when both sides carry one.
//
// The nil Type is only compatible with itself.
func Compatible(x, y Type, mode IgnoreExponent) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}

	xa, xAlt := x.(*Alternation)
	ya, yAlt := y.(*Alternation)
	switch {
	case xAlt && yAlt:
		return alternationsCompatible(xa, ya, mode)
	case xAlt:
		return optionCompatible(xa, y, mode)
	case yAlt:
		return optionCompatible(ya, x, mode)
	}
	return plainCompatible(x, y, mode)
}

func alternationsCompatible(x, y *Alternation, mode IgnoreExponent) bool {
	if mode == Strict && x.exp != y.exp {
		return false
	}
	inner := mode.nested()
	return (Compatible(x.left, y.left, inner) && Compatible(x.right, y.right, inner)) ||
		(Compatible(x.left, y.right, inner) && Compatible(x.right, y.left, inner))
}

func optionCompatible(alt *Alternation, y Type, mode IgnoreExponent) bool {
	for _, it := range alt.Options() {
		if it == nil {
			continue
		}
		if mode == Strict && !isProduct(y.Exponent(), it.Exponent(), alt.exp) {
			continue
		}
		if Compatible(y, it, mode.option()) {
			return true
		}
	}
	return false
}

// isProduct reports whether n == a*b without overflowing.
func isProduct(n, a, b int) bool {
	if a == 0 || b == 0 {
		return n == 0
	}
	return n%a == 0 && n/a == b
}

func plainCompatible(x, y Type, mode IgnoreExponent) bool {
	if mode == Strict && x.Exponent() != y.Exponent() {
		return false
	}
	if x.Tense() != y.Tense() {
		return false
	}
	if xs, ys := x.Subscript(), y.Subscript(); xs != NoSubscript && ys != NoSubscript && xs != ys {
		return false
	}

	switch x := x.(type) {
	case *Atomic:
		y, ok := y.(*Atomic)
		return ok && x.base == y.base
	case *Functional:
		y, ok := y.(*Functional)
		if !ok {
			return false
		}
		inner := mode.nested()
		return Compatible(x.domain, y.domain, inner) && Compatible(x.rng, y.rng, inner)
	}
	panic(unknownType(x))
}
