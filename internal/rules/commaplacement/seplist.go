package commaplacement

import "github.com/monoblaine/sharpstyle/internal/syntax"

// separatedList is the shape every list-bearing construct reduces to:
// item start positions and the comma tokens between them, both in
// source order. separators[i] follows items[i]. Trees recovered from
// malformed source may break the usual len(separators) == len(items)-1
// relationship, so consumers must not assume it.
type separatedList struct {
	items      []syntax.Position
	separators []syntax.Token
}

// checkAdjacency returns, in list order, every separator that does not
// sit on the same line as the start of the item immediately before it.
// On inconsistent lists it stops at the first separator with no
// preceding item, keeping everything found up to that point.
func checkAdjacency(list separatedList) []syntax.Token {
	var offending []syntax.Token
	for i, sep := range list.separators {
		if i >= len(list.items) {
			break
		}
		if sep.Line != list.items[i].Line {
			offending = append(offending, sep)
		}
	}
	return offending
}
