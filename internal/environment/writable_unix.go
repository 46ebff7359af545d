//go:build unix

package environment

import "golang.org/x/sys/unix"

// writableDir reports whether the current process can write into dir.
func writableDir(dir string) error {
	if err := unix.Access(dir, unix.W_OK); err != nil {
		return ErrNotWritable
	}
	return nil
}
