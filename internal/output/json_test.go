package output

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONFormatter(t *testing.T) {
	var sb strings.Builder
	f := &JSONFormatter{}
	if err := f.Format(&sb, sampleDiags()); err != nil {
		t.Fatal(err)
	}

	var items []map[string]any
	if err := json.Unmarshal([]byte(sb.String()), &items); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, sb.String())
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	first := items[0]
	if first["file"] != "Program.cs" {
		t.Errorf("unexpected file %v", first["file"])
	}
	if first["line"] != float64(3) || first["column"] != float64(5) {
		t.Errorf("unexpected location %v:%v", first["line"], first["column"])
	}
	if first["rule"] != "SA1113" || first["name"] != "comma-same-line" {
		t.Errorf("unexpected rule identity %v/%v", first["rule"], first["name"])
	}
	if first["severity"] != "warning" {
		t.Errorf("unexpected severity %v", first["severity"])
	}
}

func TestJSONFormatter_EmptyIsArray(t *testing.T) {
	var sb strings.Builder
	f := &JSONFormatter{}
	if err := f.Format(&sb, nil); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(sb.String()) != "[]" {
		t.Errorf("expected [], got %q", sb.String())
	}
}
