package tester

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bkane2/ulf-lib/util"
)

// TestDir is a scratch directory of input files for a single test.
type TestDir struct {
	path string
}

// MakeDir creates a scratch directory holding files, a map of slash-separated
// relative names to contents. Contents are dedented with util.Text. The
// directory is removed when the test ends.
func MakeDir(t testing.TB, files map[string]string) TestDir {
	t.Helper()
	dir := TestDir{path: t.TempDir()}
	for name, text := range files {
		if err := dir.Write(name, text); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

func (dir TestDir) Path() string {
	return dir.path
}

// File returns the absolute path of the slash-separated name.
func (dir TestDir) File(name string) string {
	return filepath.Join(dir.path, filepath.FromSlash(name))
}

// Write creates or replaces a file, creating parent directories as needed.
func (dir TestDir) Write(name, text string) error {
	path := dir.File(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(util.Text(text)), 0o644)
}
