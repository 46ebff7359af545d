package environment

import (
	"os"
	"os/exec"
	"strings"
	"sync"
)

// macOS compilers need an explicit SDK root; without it, system headers are
// not found on machines with only the command line tools installed.
func appendSystemFlags(args []string) []string {
	if sdk := sdkRoot(); sdk != "" {
		args = append(args, "-isysroot", sdk)
	}
	return args
}

var sdkRoot = sync.OnceValue(func() string {
	if p := os.Getenv("SDKROOT"); p != "" {
		return p
	}
	out, err := exec.Command("xcrun", "--show-sdk-path").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
})
