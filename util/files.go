package util

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Glob walks root and returns the sorted, slash-separated relative paths of
// the files whose base name matches pattern (see filepath.Match).
func Glob(root, pattern string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return err
		}
		if ok, _ := filepath.Match(pattern, entry.Name()); ok {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			out = append(out, filepath.ToSlash(rel))
		}
		return nil
	})
	sort.Strings(out)
	return out, err
}

// WithExtension replaces the last extension of name with ext.
func WithExtension(name, ext string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}

// ReadText returns the contents of a file. A missing file reads as empty.
func ReadText(name string) (string, error) {
	data, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	return string(data), err
}

// WriteText writes text to name, ending it with a line break.
func WriteText(name, text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return os.WriteFile(name, []byte(text), 0o644)
}

func Exists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}
