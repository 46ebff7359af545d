package environment

// AddSystemFlags appends the platform-mandated compiler driver flags to args
// and returns the extended slice. Existing entries are never removed or
// reordered, and no directories are created as a side effect. On platforms
// with no mandated flags this returns args unchanged.
func AddSystemFlags(args []string) []string {
	return appendSystemFlags(args)
}
