// Package environment resolves the filesystem locations and process-identity
// facts the toolchain depends on: the user's home directory, version-scoped
// cache directories, the config directory, the running executable's path, and
// the directory holding bundled resource files.
//
// Every resolved value is process-wide state: it is computed lazily on first
// access, cached, and never recomputed. Directory-valued results are created
// on first resolution and verified writable, so a returned path always refers
// to a usable directory. All operations are safe for concurrent use.
package environment

import (
	"errors"
)

// Sentinel errors returned (wrapped) by the resolvers.
var (
	// ErrUnresolvable means a required base location could not be determined
	// from the environment or platform convention.
	ErrUnresolvable = errors.New("location cannot be resolved")

	// ErrNotDirectory means a resolved path exists but is not a directory.
	ErrNotDirectory = errors.New("path exists but is not a directory")

	// ErrNotWritable means a resolved directory is not writable by the
	// current process.
	ErrNotWritable = errors.New("directory is not writable")
)

// Error represents a resolution error with structured information.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return e.Op + " " + e.Path + ": " + e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
