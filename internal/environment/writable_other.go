//go:build !unix

package environment

import "os"

// writableDir reports whether the current process can write into dir.
// Windows ACLs make mode bits meaningless, so probe with a real create.
func writableDir(dir string) error {
	f, err := os.CreateTemp(dir, ".jank-probe-*")
	if err != nil {
		return ErrNotWritable
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return nil
}
