package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/monoblaine/sharpstyle/internal/lint"
	"github.com/monoblaine/sharpstyle/internal/rule"
	"gopkg.in/yaml.v3"
)

func TestRuleCfg_UnmarshalBool(t *testing.T) {
	var cfg Config
	src := "rules:\n  comma-same-line: true\n  other-rule: false\n"
	if err := yaml.Unmarshal([]byte(src), &cfg); err != nil {
		t.Fatal(err)
	}

	on := cfg.Rules["comma-same-line"]
	if !on.Enabled || on.Settings != nil {
		t.Errorf("expected enabled with nil settings, got %+v", on)
	}
	off := cfg.Rules["other-rule"]
	if off.Enabled {
		t.Errorf("expected disabled, got %+v", off)
	}
}

func TestRuleCfg_UnmarshalMapping(t *testing.T) {
	var cfg Config
	src := "rules:\n  some-rule:\n    limit: 5\n"
	if err := yaml.Unmarshal([]byte(src), &cfg); err != nil {
		t.Fatal(err)
	}

	rc := cfg.Rules["some-rule"]
	if !rc.Enabled {
		t.Error("a settings mapping implies the rule is enabled")
	}
	if got, ok := rc.Settings["limit"].(int); !ok || got != 5 {
		t.Errorf("expected limit 5, got %v", rc.Settings["limit"])
	}
}

func TestRuleCfg_UnmarshalInvalid(t *testing.T) {
	var cfg Config
	src := "rules:\n  some-rule:\n    - a\n    - b\n"
	if err := yaml.Unmarshal([]byte(src), &cfg); err == nil {
		t.Fatal("expected an error for a sequence rule config")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, configFileName)
	content := "rules:\n  comma-same-line: true\nignore:\n  - \"*.generated.cs\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Rules["comma-same-line"].Enabled {
		t.Error("expected comma-same-line enabled")
	}
	if len(cfg.Ignore) != 1 || cfg.Ignore[0] != "*.generated.cs" {
		t.Errorf("unexpected ignore list %v", cfg.Ignore)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, configFileName)
	if err := os.WriteFile(path, []byte(":\n  :bad"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(root, configFileName)
	if err := os.WriteFile(cfgPath, []byte("rules: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := Discover(sub)
	if err != nil {
		t.Fatal(err)
	}
	if found != cfgPath {
		t.Errorf("expected %s, got %s", cfgPath, found)
	}
}

func TestDiscover_StopsAtGitRoot(t *testing.T) {
	root := t.TempDir()
	// Config above the repository root must not be discovered.
	if err := os.WriteFile(filepath.Join(root, configFileName), []byte("rules: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	repo := filepath.Join(root, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}

	found, err := Discover(repo)
	if err != nil {
		t.Fatal(err)
	}
	if found != "" {
		t.Errorf("expected no config, got %s", found)
	}
}

type defaultOffRule struct{}

func (r *defaultOffRule) ID() string       { return "SA0001" }
func (r *defaultOffRule) Name() string     { return "default-off" }
func (r *defaultOffRule) Category() string { return "test" }

func (r *defaultOffRule) Check(f *lint.File) []lint.Diagnostic { return nil }

func (r *defaultOffRule) EnabledByDefault() bool { return false }

type defaultOnRule struct{}

func (r *defaultOnRule) ID() string       { return "SA0002" }
func (r *defaultOnRule) Name() string     { return "default-on" }
func (r *defaultOnRule) Category() string { return "test" }

func (r *defaultOnRule) Check(f *lint.File) []lint.Diagnostic { return nil }

func TestDefaults(t *testing.T) {
	rule.Reset()
	defer rule.Reset()
	rule.Register(&defaultOffRule{})
	rule.Register(&defaultOnRule{})

	cfg := Defaults()
	if cfg.Rules["default-off"].Enabled {
		t.Error("expected default-off disabled by default")
	}
	if !cfg.Rules["default-on"].Enabled {
		t.Error("expected default-on enabled by default")
	}
}

func TestDumpDefaults(t *testing.T) {
	rule.Reset()
	defer rule.Reset()
	rule.Register(&defaultOffRule{})

	d := DumpDefaults()
	if v, ok := d.Rules["default-off"]; !ok || v {
		t.Errorf("expected default-off: false in the dump, got %v", d.Rules)
	}
}

func TestMerge(t *testing.T) {
	defaults := &Config{Rules: map[string]RuleCfg{
		"a": {Enabled: true},
		"b": {Enabled: false},
	}}
	loaded := &Config{
		Rules:  map[string]RuleCfg{"b": {Enabled: true}},
		Ignore: []string{"obj/**"},
	}

	merged := Merge(defaults, loaded)
	if !merged.Rules["a"].Enabled {
		t.Error("rule a must keep its default")
	}
	if !merged.Rules["b"].Enabled {
		t.Error("rule b must take the loaded value")
	}
	if len(merged.Ignore) != 1 {
		t.Errorf("expected ignore from the loaded config, got %v", merged.Ignore)
	}
}

func TestMerge_NilLoaded(t *testing.T) {
	defaults := &Config{Rules: map[string]RuleCfg{"a": {Enabled: true}}}
	merged := Merge(defaults, nil)
	if !merged.Rules["a"].Enabled {
		t.Error("expected defaults to survive a nil loaded config")
	}
}

func TestEffective(t *testing.T) {
	cfg := &Config{
		Rules: map[string]RuleCfg{"a": {Enabled: true}},
		Overrides: []Override{
			{Files: []string{"*_generated.cs"}, Rules: map[string]RuleCfg{"a": {Enabled: false}}},
		},
	}

	eff := Effective(cfg, "normal.cs")
	if !eff["a"].Enabled {
		t.Error("expected rule a enabled for a non-matching file")
	}

	eff = Effective(cfg, "model_generated.cs")
	if eff["a"].Enabled {
		t.Error("expected the override to disable rule a")
	}
}

func TestEffective_LaterOverrideWins(t *testing.T) {
	cfg := &Config{
		Rules: map[string]RuleCfg{"a": {Enabled: false}},
		Overrides: []Override{
			{Files: []string{"*.cs"}, Rules: map[string]RuleCfg{"a": {Enabled: true}}},
			{Files: []string{"special.cs"}, Rules: map[string]RuleCfg{"a": {Enabled: false}}},
		},
	}

	eff := Effective(cfg, "special.cs")
	if eff["a"].Enabled {
		t.Error("expected the later override to win")
	}
}
