package environment

import (
	"os"
	"path/filepath"
	"sync"
)

var processPath = sync.OnceValues(resolveProcessPath)

// resolveProcessPath asks the platform for the running executable image and
// canonicalizes it. argv[0] is deliberately not consulted; it is unreliable
// under re-execution and symlinking.
func resolveProcessPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", &Error{Op: "process", Err: err}
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", &Error{Op: "process", Path: exe, Err: err}
	}
	if !filepath.IsAbs(exe) {
		exe, err = filepath.Abs(exe)
		if err != nil {
			return "", &Error{Op: "process", Path: exe, Err: err}
		}
	}
	return exe, nil
}

// ProcessPath returns the absolute, symlink-resolved path of the running
// executable. The value is resolved once per process.
func ProcessPath() (string, error) {
	return processPath()
}

// ProcessDir returns the directory containing the running executable.
func ProcessDir() (string, error) {
	p, err := processPath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(p), nil
}
