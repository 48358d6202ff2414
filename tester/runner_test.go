package tester_test

import (
	"strconv"
	"testing"

	"github.com/bkane2/ulf-lib/tester"
	"github.com/bkane2/ulf-lib/util"
	"github.com/stretchr/testify/require"
)

func TestCheckLines(t *testing.T) {
	dir := tester.MakeDir(t, map[string]string{
		"types.in": `
			# comment lines are skipped
			D
			(D=>2)

			{D|2}^2
		`,
		"types.out": `
			D
			(D=>2)
			{D|2}^2
		`,
	})

	tester.CheckLines(t, dir.Path(), func(input []string) any {
		return input
	})
}

func TestCheckData(t *testing.T) {
	dir := tester.MakeDir(t, map[string]string{
		"count.in":       "1\n2\n3",
		"count.out.yaml": "6",
	})

	tester.CheckLines(t, dir.Path(), func(input []string) any {
		out := 0
		for _, it := range input {
			out += util.Try(strconv.Atoi(it))
		}
		return out
	})
}

func TestCheckWritesMissingOutput(t *testing.T) {
	test := require.New(t)

	dir := tester.MakeDir(t, map[string]string{
		"fresh.in": "D",
	})

	results := tester.NewRunner(t, dir.Path(), upper{}).Run()
	test.Len(results, 1)
	test.True(results[0].Success)
	test.Equal("fresh", results[0].Name)

	text, err := util.ReadText(dir.File("fresh.out"))
	test.NoError(err)
	test.Equal("<D>\n", text)
}

type upper struct{}

func (upper) Run(input tester.Input) tester.Output {
	return tester.Output{StdOut: "<" + input.Text() + ">"}
}

func TestDiff(t *testing.T) {
	test := require.New(t)

	diff := tester.Diff([]string{"D", "2", "S"}, []string{"D", "(D=>2)", "S"})
	test.Contains(diff, "--- expected")
	test.Contains(diff, "+++ actual")
	test.Contains(diff, "-2\n")
	test.Contains(diff, "+(D=>2)\n")

	test.Empty(tester.Diff([]string{"D"}, []string{"D"}))
}
