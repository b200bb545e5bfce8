package rule

import "github.com/monoblaine/sharpstyle/internal/lint"

// Meta is a rule's fixed identity: created once at registration, never
// mutated, and shared read-only across all check invocations. It backs
// the `help rule` command and the generated config comments.
type Meta struct {
	ID            string
	Name          string
	Title         string
	MessageFormat string
	Category      string
	Severity      lint.Severity
	HelpLink      string
	Description   string
}

// MetaOf returns the rule's Meta when it implements Documented, or a
// minimal identity derived from the base interface otherwise.
func MetaOf(r Rule) Meta {
	if d, ok := r.(Documented); ok {
		return d.Meta()
	}
	return Meta{
		ID:       r.ID(),
		Name:     r.Name(),
		Category: r.Category(),
		Severity: lint.Warning,
	}
}
