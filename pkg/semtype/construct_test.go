package semtype_test

import (
	"testing"

	"github.com/bkane2/ulf-lib/pkg/semtype"
	"github.com/stretchr/testify/require"
)

func TestConstructAtomic(t *testing.T) {
	test := require.New(t)

	d := semtype.Construct(semtype.Params{Domain: semtype.Symbol("D")})
	test.Equal(semtype.KindAtomic, d.Kind())
	test.Equal(semtype.Symbol("D"), d.(*semtype.Atomic).Base())
	test.Equal(1, d.Exponent())
	test.Equal("D", semtype.Format(d))

	tagged := semtype.Construct(semtype.Params{
		Domain: semtype.Symbol("D"),
		Exp:    semtype.Exp(3),
		Sub:    semtype.SubN,
		Tense:  semtype.TenseT,
	})
	test.Equal("D_N_T^3", semtype.Format(tagged))
	test.Equal(semtype.SubN, tagged.Subscript())
	test.Equal(semtype.TenseT, tagged.Tense())

	test.Nil(semtype.Construct(semtype.Params{}))
}

func TestConstructFunctional(t *testing.T) {
	test := require.New(t)

	f := semtype.Construct(semtype.Params{
		Domain: semtype.MustParse("D"),
		Range:  semtype.Symbol("2"),
		Sub:    semtype.SubV,
	})
	test.Equal("(D=>2)_V", semtype.Format(f))

	fn := f.(*semtype.Functional)
	test.Equal(semtype.KindAtomic, fn.Domain().Kind())
	test.Equal(semtype.KindAtomic, fn.Range().Kind())

	curried := semtype.Construct(semtype.Params{Domain: semtype.MustParse("D"), Range: f})
	test.Equal("(D=>(D=>2)_V)", semtype.Format(curried))
}

func TestConstructCopiesArguments(t *testing.T) {
	test := require.New(t)

	domain := semtype.MustParse("(D=>2)")
	rng := semtype.MustParse("S")
	f := semtype.Construct(semtype.Params{Domain: domain, Range: rng}).(*semtype.Functional)
	test.NotSame(domain, f.Domain())
	test.NotSame(rng, f.Range())

	left, right := semtype.MustParse("D"), semtype.MustParse("2")
	alt := semtype.Construct(semtype.Params{Options: []semtype.Type{left, right}}).(*semtype.Alternation)
	test.NotSame(left, alt.Left())
	test.NotSame(right, alt.Right())

	chain := semtype.Construct(semtype.Params{Domain: domain, Range: rng, Exp: semtype.Ints(1, 2)}).(*semtype.Alternation)
	a := chain.Left().(*semtype.Functional)
	b := chain.Right().(*semtype.Functional)
	test.NotSame(a.Domain(), b.Domain())
	test.NotSame(a.Range(), b.Range())
}

func TestConstructZeroExponent(t *testing.T) {
	test := require.New(t)

	d := semtype.MustParse("D")
	r := semtype.MustParse("2")
	cases := []semtype.Params{
		{Domain: semtype.Symbol("D"), Exp: semtype.Exp(0)},
		{Domain: d, Range: r, Exp: semtype.Exp(0)},
		{Range: r, Exp: semtype.Exp(0)},
		{Options: []semtype.Type{d, r}, Exp: semtype.Exp(0)},
		{Domain: semtype.Symbol("D"), Exp: semtype.Ints(0)},
		{Domain: semtype.Symbol("D"), Exp: semtype.Exps()},
	}
	for _, it := range cases {
		test.Nil(semtype.Construct(it), "params %+v", it)
	}
}

func TestConstructVariableExponent(t *testing.T) {
	test := require.New(t)

	v := semtype.Construct(semtype.Params{Domain: semtype.Symbol("D"), Exp: semtype.Var('N')})
	test.Equal("{|{D|{D^2|{D^3|{D^4|D^5}}}}}", semtype.Format(v))

	leaves := semtype.Leaves(v)
	test.Len(leaves, len(semtype.VarValues))
	test.Nil(leaves[0])
	for i := 1; i < len(leaves); i++ {
		test.Equal(semtype.KindAtomic, leaves[i].Kind())
		test.Equal(semtype.VarValues[i], leaves[i].Exponent())
	}

	// the chain wrappers carry no decorations of their own
	tagged := semtype.Construct(semtype.Params{Domain: semtype.Symbol("D"), Exp: semtype.Var('N'), Sub: semtype.SubN})
	test.Equal(semtype.NoSubscript, tagged.Subscript())
	test.Equal(1, tagged.Exponent())
	test.Equal("{|{D_N|{D_N^2|{D_N^3|{D_N^4|D_N^5}}}}}", semtype.Format(tagged))
}

func TestConstructExponentList(t *testing.T) {
	test := require.New(t)

	d := semtype.Symbol("D")
	test.Equal("D^4", semtype.Format(semtype.Construct(semtype.Params{Domain: d, Exp: semtype.Ints(4)})))
	test.Equal("{D^2|D^3}", semtype.Format(semtype.Construct(semtype.Params{Domain: d, Exp: semtype.Ints(2, 3)})))
	test.Equal("{D|{D^2|D^3}}", semtype.Format(semtype.Construct(semtype.Params{Domain: d, Exp: semtype.Ints(1, 2, 3)})))
	test.Equal("{|D^2}", semtype.Format(semtype.Construct(semtype.Params{Domain: d, Exp: semtype.Ints(0, 2)})))

	nested := semtype.Exps(semtype.Exp(1), semtype.Exps(semtype.Exp(2), semtype.Exp(3)))
	test.Equal("{D|{D^2|D^3}}", semtype.Format(semtype.Construct(semtype.Params{Domain: d, Exp: nested})))

	f := semtype.Construct(semtype.Params{Domain: d, Range: semtype.Symbol("2"), Exp: semtype.Ints(1, 2)})
	test.Equal("{(D=>2)|(D=>2)^2}", semtype.Format(f))

	opts := []semtype.Type{semtype.MustParse("D"), semtype.MustParse("2")}
	alt := semtype.Construct(semtype.Params{Options: opts, Exp: semtype.Var('K')})
	test.Equal("{|{{D|2}|{{D|2}^2|{{D|2}^3|{{D|2}^4|{D|2}^5}}}}}", semtype.Format(alt))
}

func TestConstructOptions(t *testing.T) {
	test := require.New(t)

	opts := []semtype.Type{semtype.MustParse("D"), semtype.MustParse("(D=>2)")}
	alt := semtype.Construct(semtype.Params{Options: opts, Exp: semtype.Exp(2), Sub: semtype.SubV})
	test.Equal("{D|(D=>2)}^2", semtype.Format(alt))
	test.Equal(semtype.SubV, alt.Subscript())

	test.Panics(func() {
		semtype.Construct(semtype.Params{Options: opts[:1]})
	})
}

func TestConstructDomainPushThrough(t *testing.T) {
	test := require.New(t)

	a, b, c := semtype.MustParse("D"), semtype.MustParse("S"), semtype.MustParse("2")
	domain := semtype.NewAlternation(a, b, 1)

	pushed := semtype.Construct(semtype.Params{Domain: domain, Range: c})
	test.Equal("{(D=>2)|(S=>2)}", semtype.Format(pushed))

	expected := semtype.NewAlternation(
		semtype.Construct(semtype.Params{Domain: a, Range: c}),
		semtype.Construct(semtype.Params{Domain: b, Range: c}),
		1,
	)
	test.True(semtype.Compatible(pushed, expected, semtype.Strict))

	tagged := semtype.Construct(semtype.Params{Domain: domain, Range: c, Exp: semtype.Exp(2), Tense: semtype.TenseU})
	test.Equal("{(D=>2)_U|(S=>2)_U}^2", semtype.Format(tagged))

	// an eliminated domain option leaves the bare range
	optional := semtype.Construct(semtype.Params{Domain: semtype.MustParse("{|D}"), Range: c})
	test.Equal("{2|(D=>2)}", semtype.Format(optional))

	// only alternations with exponent 1 distribute
	squared := semtype.Construct(semtype.Params{Domain: semtype.NewAlternation(a, b, 2), Range: c})
	test.Equal("({D|S}^2=>2)", semtype.Format(squared))
}

func TestConstructMissingDomain(t *testing.T) {
	test := require.New(t)

	rng := semtype.MustParse("(D=>2)_N")
	out := semtype.Construct(semtype.Params{Range: rng, Exp: semtype.Exp(3), Tense: semtype.TenseT})
	test.Equal("(D=>2)_T^3", semtype.Format(out))
	test.Equal("(D=>2)_N", semtype.Format(rng))

	alt := semtype.Construct(semtype.Params{Range: semtype.MustParse("{D|2}"), Exp: semtype.Exp(2)})
	test.Equal("{D|2}^2", semtype.Format(alt))
}

func TestConstructTypeDomainWithoutRange(t *testing.T) {
	test := require.New(t)

	domain := semtype.MustParse("(D=>2)_N")
	out := semtype.Construct(semtype.Params{Domain: domain, Exp: semtype.Exp(2), Tense: semtype.TenseU})
	test.Equal(semtype.KindFunctional, semtype.KindOf(out))
	test.Equal("(D=>2)_U^2", semtype.Format(out))
	test.Equal("(D=>2)_N", semtype.Format(domain))
	test.NotSame(domain, out)
}
