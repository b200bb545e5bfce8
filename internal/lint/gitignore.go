package lint

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// GitignoreMatcher checks whether a given path is ignored according to
// .gitignore rules. It supports multiple .gitignore files at different
// directory levels, including negation patterns.
type GitignoreMatcher struct {
	// rules ordered from root to leaf; later rules override earlier ones.
	rules []ignoreRule
}

// ignoreRule is a single pattern from a .gitignore file.
type ignoreRule struct {
	// base is the directory containing the .gitignore that defined this rule.
	base string
	// pattern is the gitignore pattern (without leading / or trailing /).
	pattern string
	// negate means this rule re-includes a previously ignored path.
	negate bool
	// dirOnly means the pattern only matches directories.
	dirOnly bool
	// anchored means the pattern contains a / (other than trailing), so it
	// matches the full relative path rather than just the base name.
	anchored bool
}

// NewGitignoreMatcher creates a matcher by collecting .gitignore files
// from the given root directory, all its subdirectories, and its
// ancestors up to the filesystem root.
func NewGitignoreMatcher(root string) *GitignoreMatcher {
	m := &GitignoreMatcher{}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return m
	}

	for _, gi := range collectAncestorGitignores(absRoot) {
		rules, err := parseGitignoreFile(gi)
		if err != nil {
			continue
		}
		m.rules = append(m.rules, rules...)
	}

	_ = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() && info.Name() == ".gitignore" {
			rules, parseErr := parseGitignoreFile(path)
			if parseErr != nil {
				return nil
			}
			m.rules = append(m.rules, rules...)
		}
		return nil
	})

	return m
}

// IsIgnored returns true if the given absolute path should be ignored.
// isDir indicates whether the path is a directory.
func (m *GitignoreMatcher) IsIgnored(absPath string, isDir bool) bool {
	ignored := false
	for _, r := range m.rules {
		if r.dirOnly && !isDir {
			continue
		}
		if matchRule(r, absPath) {
			ignored = !r.negate
		}
	}
	return ignored
}

// parseGitignoreFile reads a .gitignore file and returns its rules.
func parseGitignoreFile(path string) ([]ignoreRule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	base := filepath.Dir(path)
	var rules []ignoreRule

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := trimTrailingWhitespace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		r := ignoreRule{base: base}

		if strings.HasPrefix(line, "!") {
			r.negate = true
			line = line[1:]
		}
		if strings.HasSuffix(line, "/") {
			r.dirOnly = true
			line = strings.TrimSuffix(line, "/")
		}
		if strings.HasPrefix(line, "/") {
			line = line[1:]
			r.anchored = true
		} else {
			r.anchored = strings.Contains(line, "/")
		}

		r.pattern = line
		rules = append(rules, r)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rules, nil
}

// trimTrailingWhitespace removes trailing spaces and tabs unless the last
// space is escaped with a backslash.
func trimTrailingWhitespace(s string) string {
	i := len(s)
	for i > 0 && (s[i-1] == ' ' || s[i-1] == '\t') {
		i--
	}
	if i < len(s) && i > 0 && s[i-1] == '\\' {
		return s[:i-1] + " "
	}
	return s[:i]
}

// collectAncestorGitignores finds .gitignore files in directories above
// the given root, ordered from the filesystem root down to root's parent.
func collectAncestorGitignores(root string) []string {
	var ancestors []string
	dir := filepath.Dir(root)
	for {
		gi := filepath.Join(dir, ".gitignore")
		if _, err := os.Stat(gi); err == nil {
			ancestors = append([]string{gi}, ancestors...)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ancestors
}

// matchRule checks whether a single rule matches the given absolute path.
func matchRule(r ignoreRule, absPath string) bool {
	rel, err := filepath.Rel(r.base, absPath)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	// Paths outside the rule's base never match.
	if strings.HasPrefix(rel, "..") {
		return false
	}

	if r.anchored {
		return matchPattern(r.pattern, rel)
	}

	// Per git semantics, a pattern without a slash matches the basename
	// at any depth, or any whole path component.
	if matchPattern(r.pattern, filepath.Base(absPath)) {
		return true
	}
	return matchPattern("**/"+r.pattern, rel)
}

// matchPattern matches a gitignore pattern (*, ?, [...], **) against a
// slash-separated path.
func matchPattern(pattern, path string) bool {
	ok, err := doublestar.Match(pattern, path)
	return err == nil && ok
}
