package tester

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// FuncTest maps one input file to its output. See CheckInput for the
// accepted return values.
type FuncTest = func(input Input) any

// LineTest maps the source lines of one input file to its output.
type LineTest = func(lines []string) any

var errNoOutput = errors.New("the test generated no output")

// CheckInput runs fn over every `*.in` file under testdata. Strings, string
// slices and fmt.Stringer values are compared as text against `.out`, an
// error fails the test, anything else is compared as YAML against
// `.out.yaml`.
func CheckInput(t *testing.T, testdata string, fn FuncTest) {
	NewRunner(t, testdata, funcRunner(fn)).Run()
}

// CheckLines is CheckInput over Input.Lines.
func CheckLines(t *testing.T, testdata string, fn LineTest) {
	CheckInput(t, testdata, func(input Input) any {
		return fn(input.Lines())
	})
}

type funcRunner FuncTest

func (fn funcRunner) Run(input Input) (out Output) {
	switch v := fn(input).(type) {
	case nil:
		out.Error = errNoOutput
	case error:
		out.Error = v
	case string:
		out.StdOut = v
	case []string:
		out.StdOut = strings.Join(v, "\n")
	case fmt.Stringer:
		out.StdOut = v.String()
	default:
		out.Data = v
	}
	return out
}
