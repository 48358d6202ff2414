package semtype

import (
	"strconv"
	"strings"
)

// Format returns the canonical notation of t. The nil Type formats as the
// empty string, which is how an eliminated alternation option is written
// (e.g. `{|D}`).
func Format(t Type) string {
	sb := strings.Builder{}
	write(&sb, t)
	return sb.String()
}

func (t *Atomic) String() string      { return Format(t) }
func (t *Functional) String() string  { return Format(t) }
func (t *Alternation) String() string { return Format(t) }

// write appends t to a single builder so deep types format in linear time.
func write(sb *strings.Builder, t Type) {
	switch t := t.(type) {
	case nil:
	case *Atomic:
		sb.WriteString(string(t.base))
		t.writeTags(sb)
		t.writeExp(sb)
	case *Functional:
		sb.WriteString("(")
		write(sb, t.domain)
		sb.WriteString("=>")
		write(sb, t.rng)
		sb.WriteString(")")
		t.writeTags(sb)
		t.writeExp(sb)
	case *Alternation:
		sb.WriteString("{")
		write(sb, t.left)
		sb.WriteString("|")
		write(sb, t.right)
		sb.WriteString("}")
		t.writeExp(sb)
	default:
		panic(unknownType(t))
	}
}

func (d *decor) writeTags(sb *strings.Builder) {
	if d.sub != NoSubscript {
		sb.WriteString("_")
		sb.WriteString(d.sub.String())
	}
	if d.tense != NoTense {
		sb.WriteString("_")
		sb.WriteString(d.tense.String())
	}
}

func (d *decor) writeExp(sb *strings.Builder) {
	if d.exp != 1 {
		sb.WriteString("^")
		sb.WriteString(strconv.Itoa(d.exp))
	}
}
