package lint

import (
	"path/filepath"
	"testing"
)

func TestGitignoreMatcher_Basename(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".gitignore", "*.generated.cs\n")

	m := NewGitignoreMatcher(dir)
	if !m.IsIgnored(filepath.Join(dir, "Foo.generated.cs"), false) {
		t.Error("expected *.generated.cs to ignore Foo.generated.cs")
	}
	if !m.IsIgnored(filepath.Join(dir, "sub", "Bar.generated.cs"), false) {
		t.Error("expected basename pattern to match at any depth")
	}
	if m.IsIgnored(filepath.Join(dir, "Foo.cs"), false) {
		t.Error("did not expect Foo.cs to be ignored")
	}
}

func TestGitignoreMatcher_DirOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".gitignore", "bin/\n")

	m := NewGitignoreMatcher(dir)
	if !m.IsIgnored(filepath.Join(dir, "bin"), true) {
		t.Error("expected bin/ to ignore the bin directory")
	}
	if m.IsIgnored(filepath.Join(dir, "bin"), false) {
		t.Error("did not expect bin/ to ignore a plain file named bin")
	}
}

func TestGitignoreMatcher_Anchored(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".gitignore", "/top.cs\n")

	m := NewGitignoreMatcher(dir)
	if !m.IsIgnored(filepath.Join(dir, "top.cs"), false) {
		t.Error("expected /top.cs to ignore top.cs at the root")
	}
	if m.IsIgnored(filepath.Join(dir, "sub", "top.cs"), false) {
		t.Error("did not expect anchored pattern to match in a subdirectory")
	}
}

func TestGitignoreMatcher_Negation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".gitignore", "*.cs\n!Keep.cs\n")

	m := NewGitignoreMatcher(dir)
	if !m.IsIgnored(filepath.Join(dir, "Drop.cs"), false) {
		t.Error("expected Drop.cs to be ignored")
	}
	if m.IsIgnored(filepath.Join(dir, "Keep.cs"), false) {
		t.Error("expected !Keep.cs to re-include Keep.cs")
	}
}

func TestGitignoreMatcher_NestedGitignore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sub/.gitignore", "local.cs\n")
	writeFile(t, dir, "sub/local.cs", "class L { }")

	m := NewGitignoreMatcher(dir)
	if !m.IsIgnored(filepath.Join(dir, "sub", "local.cs"), false) {
		t.Error("expected the nested .gitignore to apply within its directory")
	}
	if m.IsIgnored(filepath.Join(dir, "local.cs"), false) {
		t.Error("did not expect the nested .gitignore to apply outside its directory")
	}
}

func TestGitignoreMatcher_DoubleStar(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".gitignore", "**/obj/*.cs\n")

	m := NewGitignoreMatcher(dir)
	if !m.IsIgnored(filepath.Join(dir, "a", "obj", "x.cs"), false) {
		t.Error("expected **/obj/*.cs to match a/obj/x.cs")
	}
	if m.IsIgnored(filepath.Join(dir, "a", "src", "x.cs"), false) {
		t.Error("did not expect **/obj/*.cs to match a/src/x.cs")
	}
}

func TestGitignoreMatcher_CommentsAndBlanks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".gitignore", "# comment\n\nreal.cs\n")

	m := NewGitignoreMatcher(dir)
	if !m.IsIgnored(filepath.Join(dir, "real.cs"), false) {
		t.Error("expected real.cs to be ignored")
	}
	if m.IsIgnored(filepath.Join(dir, "# comment"), false) {
		t.Error("did not expect the comment line to become a rule")
	}
}
