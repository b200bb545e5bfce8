package commaplacement

import "github.com/monoblaine/sharpstyle/internal/syntax"

// extract recognizes a list-bearing node and reduces it to zero or more
// separated lists. The type switch is the full dispatch table: these
// are exactly the construct kinds the rule registers interest in, and
// each case applies that construct's qualification before producing a
// list. Nodes of any other kind yield nothing.
func extract(n syntax.Node) []separatedList {
	switch n := n.(type) {
	case *syntax.MethodDecl:
		return fromParameters(n.Params, 2)
	case *syntax.ConstructorDecl:
		return fromParameters(n.Params, 2)
	case *syntax.OperatorDecl:
		return fromParameters(n.Params, 2)
	case *syntax.DelegateDecl:
		return fromParameters(n.Params, 2)
	case *syntax.AnonymousMethodExpr:
		return fromParameters(n.Params, 2)
	case *syntax.LambdaExpr:
		return fromParameters(n.Params, 2)
	case *syntax.IndexerDecl:
		return fromParameters(n.Params, 2)
	case *syntax.InvocationExpr:
		return fromArguments(n.Args, 2)
	case *syntax.ObjectCreationExpr:
		return fromArguments(n.Args, 2)
	case *syntax.ElementAccessExpr:
		// Deliberately looser than the rest: any non-empty argument
		// list qualifies. Keep it at 1 even though a single-item list
		// has no separator to judge.
		return fromArguments(n.Args, 1)
	case *syntax.Attribute:
		return fromArguments(n.Args, 2)
	case *syntax.AttributeGroup:
		return fromAttributeGroup(n)
	case *syntax.ArrayCreationExpr:
		return fromRankSpecifiers(n.Ranks)
	}
	return nil
}

// wellFormed reports whether a list's closing delimiter is really
// present in the source rather than synthesized by error recovery.
func wellFormed(close syntax.Token) bool {
	return !close.Missing
}

func fromParameters(pl *syntax.ParameterList, min int) []separatedList {
	if pl == nil || !wellFormed(pl.Close) || len(pl.Params) < min {
		return nil
	}
	items := make([]syntax.Position, len(pl.Params))
	for i, p := range pl.Params {
		items[i] = p.Pos()
	}
	return []separatedList{{items: items, separators: pl.Commas}}
}

func fromArguments(al *syntax.ArgumentList, min int) []separatedList {
	if al == nil || !wellFormed(al.Close) || len(al.Args) < min {
		return nil
	}
	items := make([]syntax.Position, len(al.Args))
	for i, a := range al.Args {
		items[i] = a.Pos()
	}
	return []separatedList{{items: items, separators: al.Commas}}
}

func fromAttributeGroup(g *syntax.AttributeGroup) []separatedList {
	if !wellFormed(g.Close) || len(g.Attributes) < 2 {
		return nil
	}
	items := make([]syntax.Position, len(g.Attributes))
	for i, a := range g.Attributes {
		items[i] = a.Pos()
	}
	return []separatedList{{items: items, separators: g.Commas}}
}

// fromRankSpecifiers checks each array dimension independently: each
// rank qualifies (or declines) on its own.
func fromRankSpecifiers(ranks []*syntax.RankSpecifier) []separatedList {
	var lists []separatedList
	for _, r := range ranks {
		if !wellFormed(r.Close) || len(r.Sizes) < 2 {
			continue
		}
		items := make([]syntax.Position, len(r.Sizes))
		for i, s := range r.Sizes {
			items[i] = s.Pos()
		}
		lists = append(lists, separatedList{items: items, separators: r.Commas})
	}
	return lists
}
