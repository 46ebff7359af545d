package environment

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// overrides is the schema of the optional paths override file. It lets a site
// pin directory roots without setting environment variables. All fields are
// optional; an absent file is equivalent to an empty one.
type overrides struct {
	HomeDir     string `yaml:"home_dir"`
	CacheDir    string `yaml:"cache_dir"`
	ConfigDir   string `yaml:"config_dir"`
	ResourceDir string `yaml:"resource_dir"`
}

var loadOverrides = sync.OnceValues(readOverrides)

// overridesPath returns where the paths override file lives. JANK_PATHS_FILE
// wins; the default sits at a fixed location under the OS config root so that
// loading it never depends on the config-dir resolution it feeds into.
func overridesPath() string {
	if p := os.Getenv("JANK_PATHS_FILE"); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, appDirName, "paths.yml")
}

func readOverrides() (*overrides, error) {
	path := overridesPath()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &overrides{}, nil
	}
	if err != nil {
		return nil, &Error{Op: "overrides", Path: path, Err: err}
	}
	var o overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, &Error{Op: "overrides", Path: path, Err: err}
	}
	return &o, nil
}
