//go:build !darwin

package environment

func appendSystemFlags(args []string) []string {
	return args
}
