// Command jank-env prints the toolchain's resolved environment: the cached
// directory locations, the process identity and the platform-mandated
// compiler flags. Useful for debugging installation and cache issues.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jank-lang/jank-go/internal/environment"
)

type entry struct {
	Name  string
	Value string
	Err   error
}

func collect(version string) []entry {
	get := func(name string, f func() (string, error)) entry {
		v, err := f()
		return entry{Name: name, Value: v, Err: err}
	}
	return []entry{
		get("JANK_HOME_DIR", environment.UserHomeDir),
		get("JANK_CONFIG_DIR", environment.UserConfigDir),
		get("JANK_CACHE_DIR", func() (string, error) { return environment.UserCacheDir(version) }),
		get("JANK_BINARY_CACHE_DIR", func() (string, error) { return environment.BinaryCacheDir(version) }),
		get("JANK_RESOURCE_DIR", environment.ResourceDir),
		get("JANK_PROCESS_PATH", environment.ProcessPath),
		get("JANK_PROCESS_DIR", environment.ProcessDir),
		{Name: "JANK_VERSION", Value: environment.BinaryVersion()},
		{Name: "JANK_SYSTEM_FLAGS", Value: strings.Join(environment.AddSystemFlags(nil), " ")},
	}
}

func main() {
	jsonOut := flag.Bool("json", false, "print the environment as JSON")
	version := flag.String("cache-version", "", "version for the versioned cache directories (defaults to the binary version)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	entries := collect(*version)

	failed := false
	if *jsonOut {
		out := make(map[string]string, len(entries))
		for _, e := range entries {
			if e.Err != nil {
				failed = true
				slog.Error("resolve failed", "name", e.Name, "error", e.Err)
				continue
			}
			out[e.Name] = e.Value
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
	} else {
		for _, e := range entries {
			if e.Err != nil {
				failed = true
				fmt.Printf("%s=<error: %v>\n", e.Name, e.Err)
				continue
			}
			fmt.Printf("%s=%q\n", e.Name, e.Value)
		}
	}

	if failed {
		os.Exit(1)
	}
}
