package semtype

// Copy returns a deep copy of t. The nil Type copies to nil.
func Copy(t Type) Type {
	switch t := t.(type) {
	case nil:
		return nil
	case *Atomic:
		out := *t
		return &out
	case *Functional:
		return &Functional{t.decor, Copy(t.domain), Copy(t.rng)}
	case *Alternation:
		return &Alternation{t.decor, Copy(t.left), Copy(t.right)}
	}
	panic(unknownType(t))
}

// copyOperand copies Type operands and passes symbols through unchanged.
func copyOperand(op Operand) Operand {
	if t, ok := op.(Type); ok {
		return Copy(t)
	}
	return op
}

func copyOptions(options []Type) []Type {
	if options == nil {
		return nil
	}
	out := make([]Type, len(options))
	for i, it := range options {
		out[i] = Copy(it)
	}
	return out
}
