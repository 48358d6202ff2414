package semtype_test

import (
	"reflect"
	"testing"

	"github.com/bkane2/ulf-lib/pkg/semtype"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

func TestCopy(t *testing.T) {
	test := require.New(t)

	for _, it := range []string{"D_N_T^2", "(D=>2)_V", "{D|(S=>2)}^3", "({D|S}^2=>(D=>2)_U)", "{|D}"} {
		orig := semtype.MustParse(it)
		dup := semtype.Copy(orig)

		test.NotSame(orig, dup)
		test.Empty(cmp.Diff(orig, dup, exportAll), it)
		test.Equal(it, semtype.Format(dup))
		test.True(semtype.Compatible(orig, dup, semtype.Strict))
	}

	test.Nil(semtype.Copy(nil))
}

func TestCopyIsDeep(t *testing.T) {
	test := require.New(t)

	orig := semtype.MustParse("((D=>2)=>{S|D})").(*semtype.Functional)
	dup := semtype.Copy(orig).(*semtype.Functional)

	test.NotSame(orig.Domain(), dup.Domain())
	test.NotSame(orig.Range(), dup.Range())

	origDom := orig.Domain().(*semtype.Functional)
	dupDom := dup.Domain().(*semtype.Functional)
	test.NotSame(origDom.Domain(), dupDom.Domain())
	test.NotSame(origDom.Range(), dupDom.Range())

	origAlt := orig.Range().(*semtype.Alternation)
	dupAlt := dup.Range().(*semtype.Alternation)
	test.NotSame(origAlt.Left(), dupAlt.Left())
	test.NotSame(origAlt.Right(), dupAlt.Right())
}

func TestNewTypesCopyOperands(t *testing.T) {
	test := require.New(t)

	d, two := semtype.MustParse("D"), semtype.MustParse("2")

	fn := semtype.NewFunctional(d, two, 2, semtype.SubP, semtype.NoTense)
	test.Equal("(D=>2)_P^2", fn.String())
	test.NotSame(d, fn.Domain())
	test.NotSame(two, fn.Range())

	alt := semtype.NewAlternation(d, fn, 1)
	test.Equal("{D|(D=>2)_P^2}", alt.String())
	test.NotSame(fn, alt.Right())
	test.Equal([2]semtype.Type{alt.Left(), alt.Right()}, alt.Options())

	atom := semtype.NewAtomic("NP", 1, semtype.SubN, semtype.TenseU)
	test.Equal("NP_N_U", atom.String())
	test.Equal(semtype.KindAtomic, semtype.KindOf(atom))
	test.Equal(semtype.KindEmpty, semtype.KindOf(nil))
}
