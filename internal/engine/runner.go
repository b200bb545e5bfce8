package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"
	"github.com/monoblaine/sharpstyle/internal/config"
	"github.com/monoblaine/sharpstyle/internal/lint"
	"github.com/monoblaine/sharpstyle/internal/rule"
)

// Runner drives the checking pipeline: for each file it reads the
// content, builds a File (parsing the tree once), determines the
// effective rule configuration, runs enabled rules, and collects
// diagnostics.
type Runner struct {
	Config *config.Config
	Rules  []rule.Rule
}

// Result holds the output of a check run.
type Result struct {
	Diagnostics []lint.Diagnostic
	Errors      []error
}

// Run checks the files at the given paths and returns a Result
// containing all diagnostics (sorted by file, line, column) and any
// errors encountered.
func (r *Runner) Run(paths []string) *Result {
	res := &Result{}

	for _, path := range paths {
		if r.isIgnored(path) {
			continue
		}

		source, err := os.ReadFile(path)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("reading %q: %w", path, err))
			continue
		}

		f := lint.NewFile(path, source)
		effective := config.Effective(r.Config, path)

		diags, errs := CheckRules(f, r.Rules, effective)
		res.Diagnostics = append(res.Diagnostics, diags...)
		res.Errors = append(res.Errors, errs...)
	}

	sort.Slice(res.Diagnostics, func(i, j int) bool {
		di, dj := res.Diagnostics[i], res.Diagnostics[j]
		if di.File != dj.File {
			return di.File < dj.File
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		return di.Column < dj.Column
	})

	return res
}

// RunSource checks a single in-memory source (e.g. stdin) under the
// given display path.
func (r *Runner) RunSource(path string, source []byte) *Result {
	res := &Result{}

	f := lint.NewFile(path, source)
	effective := config.Effective(r.Config, path)

	diags, errs := CheckRules(f, r.Rules, effective)
	res.Diagnostics = diags
	res.Errors = errs

	sort.Slice(res.Diagnostics, func(i, j int) bool {
		di, dj := res.Diagnostics[i], res.Diagnostics[j]
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		return di.Column < dj.Column
	})

	return res
}

// isIgnored returns true if the file path matches any of the configured
// ignore patterns.
func (r *Runner) isIgnored(path string) bool {
	cleanPath := filepath.Clean(path)

	for _, pattern := range r.Config.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		if g.Match(path) || g.Match(cleanPath) || g.Match(filepath.Base(path)) {
			return true
		}
	}
	return false
}
