package environment

import (
	"path/filepath"
	"sync"
	"testing"
)

// resetCaches reinitializes every process-wide cache so a test starts from a
// fully unresolved state.
func resetCaches() {
	homeDir = sync.OnceValues(resolveHomeDir)
	configDir = sync.OnceValues(resolveConfigDir)
	cacheRoot = sync.OnceValues(resolveCacheRoot)
	resourceDir = sync.OnceValues(resolveResourceDir)
	processPath = sync.OnceValues(resolveProcessPath)
	binaryVersion = sync.OnceValue(resolveBinaryVersion)
	loadOverrides = sync.OnceValues(readOverrides)
	userCacheDirs = &dirCache{op: userCacheDirs.op, build: userCacheDirs.build}
	binaryCacheDirs = &dirCache{op: binaryCacheDirs.op, build: binaryCacheDirs.build}
}

// setupEnv isolates a test from the real user environment: the home directory
// points at a scratch dir and the paths override file points at a path that
// does not exist.
func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JANK_HOME_DIR", t.TempDir())
	t.Setenv("JANK_PATHS_FILE", filepath.Join(t.TempDir(), "paths.yml"))
	t.Setenv("JANK_CACHE_DIR", "")
	t.Setenv("JANK_CONFIG_DIR", "")
	t.Setenv("JANK_RESOURCE_DIR", "")
	resetCaches()
	t.Cleanup(resetCaches)
}
