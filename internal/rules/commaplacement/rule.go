package commaplacement

import (
	"github.com/monoblaine/sharpstyle/internal/lint"
	"github.com/monoblaine/sharpstyle/internal/rule"
	"github.com/monoblaine/sharpstyle/internal/syntax"
)

func init() {
	rule.Register(&Rule{})
}

const message = "Comma must be on same line as previous parameter."

// Rule reports commas in parameter, argument, attribute, and array-size
// lists that are not on the same line as the element before them.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "SA1113" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "comma-same-line" }

// Category implements rule.Rule.
func (r *Rule) Category() string { return "readability" }

// EnabledByDefault implements rule.Defaultable. The rule ships disabled;
// projects opt in through .sharpstyle.yml.
func (r *Rule) EnabledByDefault() bool { return false }

// Meta implements rule.Documented.
func (r *Rule) Meta() rule.Meta {
	return rule.Meta{
		ID:            r.ID(),
		Name:          r.Name(),
		Title:         "Comma placement",
		MessageFormat: message,
		Category:      r.Category(),
		Severity:      lint.Warning,
		HelpLink:      "https://github.com/monoblaine/sharpstyle/blob/main/docs/rules/SA1113.md",
		Description: "A comma that separates two elements of a list should be " +
			"placed on the same line as the element it follows, not at the " +
			"start of the next line.",
	}
}

// Check implements rule.Rule. Each visited node is reduced to its
// separated lists (if it carries any) and every comma not on its
// predecessor's line becomes one diagnostic at the comma's location.
func (r *Rule) Check(f *lint.File) []lint.Diagnostic {
	if f.Tree == nil {
		return nil
	}
	var diags []lint.Diagnostic
	syntax.Walk(f.Tree, func(n syntax.Node) bool {
		for _, list := range extract(n) {
			for _, comma := range checkAdjacency(list) {
				diags = append(diags, lint.Diagnostic{
					File:     f.Path,
					Line:     comma.Line,
					Column:   comma.Column,
					RuleID:   r.ID(),
					RuleName: r.Name(),
					Severity: lint.Warning,
					Message:  message,
				})
			}
		}
		return true
	})
	return diags
}
