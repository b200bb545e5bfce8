package rule

import (
	"testing"

	"github.com/monoblaine/sharpstyle/internal/lint"
)

type configurableRule struct {
	limit int
}

func (r *configurableRule) ID() string       { return "SA0100" }
func (r *configurableRule) Name() string     { return "configurable" }
func (r *configurableRule) Category() string { return "test" }

func (r *configurableRule) Check(f *lint.File) []lint.Diagnostic { return nil }

func (r *configurableRule) DefaultSettings() map[string]any {
	return map[string]any{"limit": 10}
}

func (r *configurableRule) ApplySettings(settings map[string]any) error {
	if v, ok := settings["limit"].(int); ok {
		r.limit = v
	}
	return nil
}

func TestCloneRule_PlainRule(t *testing.T) {
	orig := &fakeRule{id: "SA0001", name: "alpha"}
	clone := CloneRule(orig)
	if clone == Rule(orig) {
		t.Fatal("expected a distinct instance")
	}
	if clone.ID() != "SA0001" || clone.Name() != "alpha" {
		t.Errorf("clone lost identity: %s/%s", clone.ID(), clone.Name())
	}
}

func TestCloneRule_ConfigurableResetsToDefaults(t *testing.T) {
	orig := &configurableRule{}
	if err := orig.ApplySettings(map[string]any{"limit": 99}); err != nil {
		t.Fatal(err)
	}

	clone := CloneRule(orig).(*configurableRule)
	if clone.limit != 10 {
		t.Errorf("expected clone rebuilt with default limit 10, got %d", clone.limit)
	}
	if orig.limit != 99 {
		t.Errorf("expected original untouched, got %d", orig.limit)
	}
}
