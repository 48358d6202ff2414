// Package tester runs golden-file tests: every `*.in` file in a testdata
// directory is fed to a function whose output must match the sibling `.out`
// (text) or `.out.yaml` (data) file.
package tester

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bkane2/ulf-lib/util"
	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"
)

// Rewrite makes the runner overwrite expected output files with the actual
// output. Set TESTER_REWRITE to enable it.
var Rewrite = os.Getenv("TESTER_REWRITE") != ""

const inputGlob = "*.in"

type TestRunner interface {
	Run(input Input) Output
}

type Output struct {
	Error  error
	StdOut string
	Data   any
}

// Input is one `*.in` file, named relative to the testdata root.
type Input struct {
	root string
	name string
}

func (input Input) Name() string {
	return input.name
}

func (input Input) Path() string {
	return filepath.Join(input.root, filepath.FromSlash(input.name))
}

func (input Input) Text() string {
	return util.Try(util.ReadText(input.Path()))
}

// Lines are the trimmed, non-blank, non-comment lines of the input.
func (input Input) Lines() []string {
	return util.SourceLines(input.Text())
}

type Runner struct {
	t     *testing.T
	inner TestRunner
	root  string
}

func NewRunner(t *testing.T, testdata string, inner TestRunner) Runner {
	root, err := filepath.Abs(testdata)
	if err != nil {
		t.Fatalf("resolving %s: %v", testdata, err)
	}
	return Runner{t: t, inner: inner, root: root}
}

// Run checks every input as a subtest named after the file.
func (runner Runner) Run() []Result {
	files, err := util.Glob(runner.root, inputGlob)
	if err != nil {
		runner.t.Fatalf("listing %s: %v", runner.root, err)
	}
	if len(files) == 0 {
		runner.t.Fatalf("no %s files in %s", inputGlob, runner.root)
	}

	out := make([]Result, 0, len(files))
	for _, it := range files {
		res := Result{
			Name:  util.WithExtension(path.Base(it), ""),
			Input: Input{root: runner.root, name: it},
		}
		runner.t.Run(res.Name, func(t *testing.T) {
			res.check(t, runner.inner)
		})
		out = append(out, res)
	}
	return out
}

// Result records the outcome of a single input.
type Result struct {
	Name    string
	Input   Input
	Success bool

	Expected string
	Actual   string
}

func (res *Result) check(t *testing.T, runner TestRunner) {
	output := runner.Run(res.Input)
	if output.Error != nil {
		t.Fatalf("%s: %v", res.Input.Name(), output.Error)
	}

	expectFile := util.WithExtension(res.Input.Path(), ".out")
	res.Actual = output.StdOut
	if output.Data != nil {
		data, err := yaml.Marshal(output.Data)
		if err != nil {
			t.Fatalf("%s: encoding output: %v", res.Input.Name(), err)
		}
		expectFile += ".yaml"
		res.Actual = string(data)
	}

	if Rewrite || !util.Exists(expectFile) {
		if err := util.WriteText(expectFile, res.Actual); err != nil {
			t.Fatalf("%s: %v", res.Input.Name(), err)
		}
		t.Logf("wrote %s", filepath.Base(expectFile))
		res.Expected, res.Success = res.Actual, true
		return
	}

	expected, err := util.ReadText(expectFile)
	if err != nil {
		t.Fatalf("%s: %v", res.Input.Name(), err)
	}
	res.Expected = expected

	want := util.TrimLines(util.Lines(res.Expected))
	got := util.TrimLines(util.Lines(res.Actual))
	res.Success = strings.Join(want, "\n") == strings.Join(got, "\n")
	if !res.Success {
		t.Errorf("%s: output differs from %s\n%s", res.Input.Name(), filepath.Base(expectFile), Diff(want, got))
	}
}

// Diff renders a unified diff from the expected to the actual lines, or ""
// when they are equal.
func Diff(expected, actual []string) string {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(strings.Join(expected, "\n")),
		B:        difflib.SplitLines(strings.Join(actual, "\n")),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	})
	if err != nil {
		return fmt.Sprintf("(diff failed: %v)", err)
	}
	return text
}
