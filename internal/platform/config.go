package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfigName is the optional per-directory CLI configuration file.
// This configures the silt tool itself; it is unrelated to the
// repository's own .git/config, which silt only ever creates empty.
const FileConfigName = ".silt.yaml"

// FileConfig is the on-disk CLI configuration.
type FileConfig struct {
	// DefaultBranch overrides the branch HEAD points to on first init.
	DefaultBranch string `yaml:"default_branch"`
}

// LoadFileConfig reads .silt.yaml from dir. A missing file is not an
// error; it yields the zero config.
func LoadFileConfig(dir string) (FileConfig, error) {
	var cfg FileConfig

	path := filepath.Join(dir, FileConfigName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
