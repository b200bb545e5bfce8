package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/monoblaine/sharpstyle/internal/rule"
	"gopkg.in/yaml.v3"
)

const configFileName = ".sharpstyle.yml"

// Load reads and parses a config file at the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Discover walks up the directory tree from startDir looking for a
// .sharpstyle.yml config file. It stops searching when it encounters a
// .git directory (the repository root) or reaches the filesystem root.
// Returns the path to the config file, or "" if none was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Defaults returns a Config covering all registered rules. A rule is on
// unless it opts out via rule.Defaultable.
func Defaults() *Config {
	all := rule.All()
	rules := make(map[string]RuleCfg, len(all))
	for _, r := range all {
		enabled := true
		if d, ok := r.(rule.Defaultable); ok {
			enabled = d.EnabledByDefault()
		}
		rules[r.Name()] = RuleCfg{Enabled: enabled}
	}
	return &Config{Rules: rules}
}

// Dump is a marshal-friendly view of a default config, written by the
// init command.
type Dump struct {
	Rules  map[string]bool `yaml:"rules"`
	Ignore []string        `yaml:"ignore,omitempty"`
}

// DumpDefaults returns the default configuration in a form suitable for
// YAML serialization.
func DumpDefaults() *Dump {
	defaults := Defaults()
	rules := make(map[string]bool, len(defaults.Rules))
	for name, cfg := range defaults.Rules {
		rules[name] = cfg.Enabled
	}
	return &Dump{Rules: rules}
}
