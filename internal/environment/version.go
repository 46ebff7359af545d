package environment

import (
	"runtime/debug"
	"strings"
	"sync"

	"golang.org/x/mod/semver"
)

// unknownVersion is reported when the build carries no usable identity.
const unknownVersion = "0.0.0-unknown"

var binaryVersion = sync.OnceValue(resolveBinaryVersion)

func resolveBinaryVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return unknownVersion
	}
	if v := info.Main.Version; semver.IsValid(v) {
		return strings.TrimPrefix(semver.Canonical(v), "v")
	}
	// Dev builds report "(devel)"; fall back to the VCS revision.
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 12 {
			return "0.0.0-dev." + s.Value[:12]
		}
	}
	return unknownVersion
}

// BinaryVersion returns the fixed version identity of this build. It is the
// default version parameter for the versioned cache directories and never
// fails; builds without version information report a stable placeholder.
func BinaryVersion() string {
	return binaryVersion()
}
