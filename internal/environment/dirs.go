package environment

import (
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
)

// appDirName is the per-application segment used under OS convention roots.
const appDirName = "jank"

// location describes how one directory kind is resolved. The chain, highest
// precedence first: override environment variable, paths override file, OS
// convention root, then a synthesized fallback under the home directory.
type location struct {
	kind         string
	overrideVar  string
	fromFile     func(*overrides) string
	osDefault    func() string
	homeFallback string
}

var cacheLocation = location{
	kind:         "cache",
	overrideVar:  "JANK_CACHE_DIR",
	fromFile:     func(o *overrides) string { return o.CacheDir },
	osDefault:    func() string { return xdg.CacheHome },
	homeFallback: filepath.Join(".cache", appDirName),
}

var configLocation = location{
	kind:         "config",
	overrideVar:  "JANK_CONFIG_DIR",
	fromFile:     func(o *overrides) string { return o.ConfigDir },
	osDefault:    func() string { return xdg.ConfigHome },
	homeFallback: filepath.Join(".config", appDirName),
}

// resolveRoot walks a location's precedence chain. Env and file overrides are
// used as-is; OS convention roots get the application segment appended.
func resolveRoot(l location) (string, error) {
	if p := os.Getenv(l.overrideVar); p != "" {
		return p, nil
	}
	o, err := loadOverrides()
	if err != nil {
		return "", err
	}
	if p := l.fromFile(o); p != "" {
		return p, nil
	}
	if p := l.osDefault(); p != "" {
		return filepath.Join(p, appDirName), nil
	}
	home, err := UserHomeDir()
	if err != nil {
		return "", &Error{Op: l.kind, Err: ErrUnresolvable}
	}
	return filepath.Join(home, l.homeFallback), nil
}

// ensureDir makes path absolute, creates it if absent and verifies it is a
// writable directory. It returns the canonical absolute path.
func ensureDir(op, path string) (string, error) {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", &Error{Op: op, Path: path, Err: err}
		}
		path = abs
	}
	info, err := os.Stat(path)
	switch {
	case err == nil && !info.IsDir():
		return "", &Error{Op: op, Path: path, Err: ErrNotDirectory}
	case err != nil:
		if err := os.MkdirAll(path, 0o755); err != nil {
			return "", &Error{Op: op, Path: path, Err: err}
		}
		slog.Debug("created directory", "kind", op, "path", path)
	}
	if err := writableDir(path); err != nil {
		return "", &Error{Op: op, Path: path, Err: err}
	}
	return path, nil
}

var homeDir = sync.OnceValues(resolveHomeDir)

func resolveHomeDir() (string, error) {
	if p := os.Getenv("JANK_HOME_DIR"); p != "" {
		return ensureDir("home", p)
	}
	o, err := loadOverrides()
	if err != nil {
		return "", err
	}
	if o.HomeDir != "" {
		return ensureDir("home", o.HomeDir)
	}
	p, err := os.UserHomeDir()
	if err != nil {
		return "", &Error{Op: "home", Err: ErrUnresolvable}
	}
	return ensureDir("home", p)
}

// UserHomeDir returns the user's home directory. The value is resolved once
// per process and reused thereafter.
func UserHomeDir() (string, error) {
	return homeDir()
}

var configDir = sync.OnceValues(resolveConfigDir)

func resolveConfigDir() (string, error) {
	root, err := resolveRoot(configLocation)
	if err != nil {
		return "", err
	}
	return ensureDir("config", root)
}

// UserConfigDir returns the toolchain's configuration directory, creating it
// on first resolution.
func UserConfigDir() (string, error) {
	return configDir()
}

var cacheRoot = sync.OnceValues(resolveCacheRoot)

func resolveCacheRoot() (string, error) {
	return resolveRoot(cacheLocation)
}

// versionSegment encodes a version string as a single path segment. The
// encoding is injective, so distinct versions never collide on disk.
func versionSegment(version string) string {
	if version == "" {
		version = BinaryVersion()
	}
	seg := url.PathEscape(version)
	// PathEscape leaves dots alone; "." and ".." would walk out of the root.
	switch seg {
	case ".":
		seg = "%2E"
	case "..":
		seg = "%2E%2E"
	}
	return seg
}

// dirCache holds the resolved path (or the resolution error) per version.
// Resolution runs under the lock, so directory creation happens at most once
// per version and every caller observes the same result.
type dirCache struct {
	op    string
	build func(root, segment string) string

	mu   sync.Mutex
	dirs map[string]dirResult
}

type dirResult struct {
	path string
	err  error
}

func (c *dirCache) get(version string) (string, error) {
	seg := versionSegment(version)

	c.mu.Lock()
	defer c.mu.Unlock()

	if r, ok := c.dirs[seg]; ok {
		return r.path, r.err
	}

	var r dirResult
	root, err := cacheRoot()
	if err != nil {
		r.err = err
	} else {
		r.path, r.err = ensureDir(c.op, c.build(root, seg))
	}
	if c.dirs == nil {
		c.dirs = make(map[string]dirResult)
	}
	c.dirs[seg] = r
	if r.err == nil {
		slog.Debug("resolved directory", "kind", c.op, "version", version, "path", r.path)
	}
	return r.path, r.err
}

var userCacheDirs = &dirCache{
	op: "cache",
	build: func(root, seg string) string {
		return filepath.Join(root, seg)
	},
}

var binaryCacheDirs = &dirCache{
	op: "binary-cache",
	build: func(root, seg string) string {
		return filepath.Join(root, seg, "bin")
	},
}

// UserCacheDir returns the cache directory scoped to version, creating it on
// first resolution. An empty version means the running binary's own version.
func UserCacheDir(version string) (string, error) {
	return userCacheDirs.get(version)
}

// BinaryCacheDir returns the compiled-binary cache directory scoped to
// version, creating it on first resolution. An empty version means the
// running binary's own version.
func BinaryCacheDir(version string) (string, error) {
	return binaryCacheDirs.get(version)
}

var resourceDir = sync.OnceValues(resolveResourceDir)

func resolveResourceDir() (string, error) {
	if p := os.Getenv("JANK_RESOURCE_DIR"); p != "" {
		return existingDir("resources", p)
	}
	o, err := loadOverrides()
	if err != nil {
		return "", err
	}
	if o.ResourceDir != "" {
		return existingDir("resources", o.ResourceDir)
	}

	dir, err := ProcessDir()
	if err != nil {
		return "", err
	}
	candidates := []string{
		// Bundled next to the executable.
		filepath.Join(dir, "resources"),
		// Installed prefix convention: <prefix>/bin/jank -> <prefix>/share/jank.
		filepath.Join(dir, "..", "share", appDirName),
	}
	for _, c := range candidates {
		if p, err := existingDir("resources", c); err == nil {
			return p, nil
		}
	}
	return "", &Error{Op: "resources", Err: ErrUnresolvable}
}

// existingDir verifies path is an existing directory and returns its absolute
// cleaned form. Resource directories are read-only, so they are never created.
func existingDir(op, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &Error{Op: op, Path: path, Err: err}
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", &Error{Op: op, Path: abs, Err: err}
	}
	if !info.IsDir() {
		return "", &Error{Op: op, Path: abs, Err: ErrNotDirectory}
	}
	return abs, nil
}

// ResourceDir returns the directory holding the toolchain's bundled, read-only
// support files. Resolution searches the override variable, the paths override
// file, a resources directory next to the executable, then the installed
// prefix convention.
func ResourceDir() (string, error) {
	return resourceDir()
}
