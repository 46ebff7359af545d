package environment

import (
	"os"
	"path/filepath"
)

// MakeTempFile creates a new, empty, uniquely named file in the system
// temporary directory whose basename starts with prefix, and returns its
// absolute path. Uniqueness comes from the platform's exclusive-create
// primitive with a bounded retry over generated suffixes, so concurrent
// callers never receive the same path. The caller owns the file and is
// responsible for deleting it.
func MakeTempFile(prefix string) (string, error) {
	root, err := tempRoot()
	if err != nil {
		return "", err
	}
	f, err := os.CreateTemp(root, prefix+"*")
	if err != nil {
		return "", &Error{Op: "tempfile", Path: root, Err: err}
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", &Error{Op: "tempfile", Path: name, Err: err}
	}
	return name, nil
}

// tempRoot returns the directory temp files are created in. JANK_TMPDIR wins
// over the OS convention; the result is always absolute.
func tempRoot() (string, error) {
	dir := os.Getenv("JANK_TMPDIR")
	if dir == "" {
		dir = os.TempDir()
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &Error{Op: "tempfile", Path: dir, Err: err}
	}
	return abs, nil
}
