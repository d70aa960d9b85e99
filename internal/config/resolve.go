package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvConfig names the environment variable holding an explicit config path.
const EnvConfig = "GRAFANA_PLUGIN_CONFIG"

// DefaultConfigPaths returns the search order for config files.
func DefaultConfigPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "grafana-plugin", "config.yaml"))
	}
	paths = append(paths, "/etc/grafana-plugin/config.yaml")
	return paths
}

// Resolve loads the config from the given explicit path, or searches the
// default locations. Unlike an explicit path, a missing default file is not
// an error: the host runs the adapter without any setup, so defaults apply.
func Resolve(explicit string) (*Config, error) {
	path, err := findConfig(explicit)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func findConfig(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	for _, p := range DefaultConfigPaths() {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", nil
}
