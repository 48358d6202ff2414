package semtype

// Leaves flattens nested alternations into their non-alternation members in
// left-to-right order. Eliminated (nil) options are kept, so the variable
// expansion of `D^N` has one leaf per value in VarValues.
func Leaves(t Type) []Type {
	alt, ok := t.(*Alternation)
	if !ok {
		return []Type{t}
	}
	return append(Leaves(alt.left), Leaves(alt.right)...)
}

// Node is a plain tree view of a Type for JSON and YAML encoders.
type Node struct {
	Kind      string  `json:"kind" yaml:"kind"`
	Base      string  `json:"base,omitempty" yaml:"base,omitempty"`
	Exponent  int     `json:"exponent,omitempty" yaml:"exponent,omitempty"`
	Subscript string  `json:"subscript,omitempty" yaml:"subscript,omitempty"`
	Tense     string  `json:"tense,omitempty" yaml:"tense,omitempty"`
	Children  []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Describe returns the tree view of t. Functional children are domain then
// range; alternation children are the two options.
func Describe(t Type) *Node {
	if t == nil {
		return &Node{Kind: KindEmpty.String()}
	}

	out := &Node{
		Kind:      t.Kind().String(),
		Exponent:  t.Exponent(),
		Subscript: t.Subscript().String(),
		Tense:     t.Tense().String(),
	}
	switch t := t.(type) {
	case *Atomic:
		out.Base = string(t.base)
	case *Functional:
		out.Children = []*Node{Describe(t.domain), Describe(t.rng)}
	case *Alternation:
		out.Subscript, out.Tense = "", ""
		out.Children = []*Node{Describe(t.left), Describe(t.right)}
	}
	return out
}
