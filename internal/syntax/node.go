package syntax

// Kind identifies the concrete type of a Node.
type Kind int

// Node kinds.
const (
	KindTree Kind = iota
	KindTypeDecl
	KindMethodDecl
	KindConstructorDecl
	KindOperatorDecl
	KindDelegateDecl
	KindIndexerDecl
	KindPropertyDecl
	KindAnonymousMethod
	KindLambda
	KindInvocation
	KindObjectCreation
	KindElementAccess
	KindArrayCreation
	KindAttribute
	KindAttributeGroup
	KindBasicExpr
)

// Node is an element of the parsed tree. Nodes are read-only once built.
type Node interface {
	Kind() Kind
	Pos() Position
	Children() []Node
}

// Tree is the root of a parsed source file.
type Tree struct {
	Decls []Node
}

func (t *Tree) Kind() Kind       { return KindTree }
func (t *Tree) Pos() Position    { return Position{Line: 1, Column: 1} }
func (t *Tree) Children() []Node { return t.Decls }

// TypeDecl is a class, struct, or interface declaration.
type TypeDecl struct {
	KeywordTok Token // class, struct, or interface
	Name       Token
	Attrs      []*AttributeGroup
	Members    []Node
}

func (d *TypeDecl) Kind() Kind    { return KindTypeDecl }
func (d *TypeDecl) Pos() Position { return d.KeywordTok.Pos() }
func (d *TypeDecl) Children() []Node {
	return append(attrNodes(d.Attrs), d.Members...)
}

// ParameterList is a delimited, comma-separated list of parameters.
// Open and Close are parens for methods and brackets for indexers.
// Commas are the raw separator tokens in source order.
type ParameterList struct {
	Open   Token
	Params []*Parameter
	Commas []Token
	Close  Token
}

// Parameter is a single declared parameter. First is the parameter's
// first token (attribute, modifier, or type), which anchors its span.
type Parameter struct {
	First Token
	Name  Token
	Attrs []*AttributeGroup
}

// Pos returns the starting position of the parameter.
func (p *Parameter) Pos() Position { return p.First.Pos() }

// ArgumentList is a delimited, comma-separated list of arguments.
// Open and Close are parens for calls and brackets for element access.
type ArgumentList struct {
	Open   Token
	Args   []*Argument
	Commas []Token
	Close  Token
}

// Argument is a single argument. First anchors its span (a ref/out
// modifier, a named-argument label, or the expression itself).
type Argument struct {
	First Token
	Expr  Node
}

// Pos returns the starting position of the argument.
func (a *Argument) Pos() Position { return a.First.Pos() }

// MethodDecl is an ordinary method declaration.
type MethodDecl struct {
	Name   Token
	Attrs  []*AttributeGroup
	Params *ParameterList
	Body   []Node
}

func (d *MethodDecl) Kind() Kind    { return KindMethodDecl }
func (d *MethodDecl) Pos() Position { return d.Name.Pos() }
func (d *MethodDecl) Children() []Node {
	return append(append(attrNodes(d.Attrs), paramAttrNodes(d.Params)...), d.Body...)
}

// ConstructorDecl is a constructor declaration (member whose name equals
// the enclosing type name).
type ConstructorDecl struct {
	Name   Token
	Attrs  []*AttributeGroup
	Params *ParameterList
	Body   []Node
}

func (d *ConstructorDecl) Kind() Kind    { return KindConstructorDecl }
func (d *ConstructorDecl) Pos() Position { return d.Name.Pos() }
func (d *ConstructorDecl) Children() []Node {
	return append(append(attrNodes(d.Attrs), paramAttrNodes(d.Params)...), d.Body...)
}

// OperatorDecl is an operator overload declaration, including implicit
// and explicit conversion operators.
type OperatorDecl struct {
	OperatorTok Token // the operator keyword
	Name        Token // the operator symbol or conversion target
	Attrs       []*AttributeGroup
	Params      *ParameterList
	Body        []Node
}

func (d *OperatorDecl) Kind() Kind    { return KindOperatorDecl }
func (d *OperatorDecl) Pos() Position { return d.OperatorTok.Pos() }
func (d *OperatorDecl) Children() []Node {
	return append(append(attrNodes(d.Attrs), paramAttrNodes(d.Params)...), d.Body...)
}

// DelegateDecl is a delegate type declaration.
type DelegateDecl struct {
	DelegateTok Token
	Name        Token
	Attrs       []*AttributeGroup
	Params      *ParameterList
}

func (d *DelegateDecl) Kind() Kind       { return KindDelegateDecl }
func (d *DelegateDecl) Pos() Position    { return d.DelegateTok.Pos() }
func (d *DelegateDecl) Children() []Node {
	return append(attrNodes(d.Attrs), paramAttrNodes(d.Params)...)
}

// IndexerDecl is an indexer declaration (this[...]).
type IndexerDecl struct {
	ThisTok Token
	Attrs   []*AttributeGroup
	Params  *ParameterList // bracketed
	Body    []Node
}

func (d *IndexerDecl) Kind() Kind    { return KindIndexerDecl }
func (d *IndexerDecl) Pos() Position { return d.ThisTok.Pos() }
func (d *IndexerDecl) Children() []Node {
	return append(append(attrNodes(d.Attrs), paramAttrNodes(d.Params)...), d.Body...)
}

// PropertyDecl is a property or field-like member with an accessor or
// initializer body. Kept so nested expressions inside accessors are
// reachable from a walk.
type PropertyDecl struct {
	Name  Token
	Attrs []*AttributeGroup
	Body  []Node
}

func (d *PropertyDecl) Kind() Kind    { return KindPropertyDecl }
func (d *PropertyDecl) Pos() Position { return d.Name.Pos() }
func (d *PropertyDecl) Children() []Node {
	return append(attrNodes(d.Attrs), d.Body...)
}

// AnonymousMethodExpr is a delegate { } expression. Params is nil when
// the parameter list is omitted.
type AnonymousMethodExpr struct {
	DelegateTok Token
	Params      *ParameterList
	Body        []Node
}

func (e *AnonymousMethodExpr) Kind() Kind       { return KindAnonymousMethod }
func (e *AnonymousMethodExpr) Pos() Position    { return e.DelegateTok.Pos() }
func (e *AnonymousMethodExpr) Children() []Node {
	return append(paramAttrNodes(e.Params), e.Body...)
}

// LambdaExpr is a parenthesized lambda expression: (params) => body.
type LambdaExpr struct {
	Params *ParameterList
	Arrow  Token
	Body   []Node
}

func (e *LambdaExpr) Kind() Kind       { return KindLambda }
func (e *LambdaExpr) Pos() Position    { return e.Params.Open.Pos() }
func (e *LambdaExpr) Children() []Node {
	return append(paramAttrNodes(e.Params), e.Body...)
}

// InvocationExpr is a call: target(args).
type InvocationExpr struct {
	Target Node
	Args   *ArgumentList
}

func (e *InvocationExpr) Kind() Kind    { return KindInvocation }
func (e *InvocationExpr) Pos() Position { return e.Target.Pos() }
func (e *InvocationExpr) Children() []Node {
	return append([]Node{e.Target}, argNodes(e.Args)...)
}

// ObjectCreationExpr is new T(args). Args is nil when the argument list
// is omitted (new T { ... }).
type ObjectCreationExpr struct {
	NewTok Token
	Type   Token
	Args   *ArgumentList
	Init   []Node
}

func (e *ObjectCreationExpr) Kind() Kind    { return KindObjectCreation }
func (e *ObjectCreationExpr) Pos() Position { return e.NewTok.Pos() }
func (e *ObjectCreationExpr) Children() []Node {
	return append(argNodes(e.Args), e.Init...)
}

// ElementAccessExpr is target[args].
type ElementAccessExpr struct {
	Target Node
	Args   *ArgumentList // bracketed
}

func (e *ElementAccessExpr) Kind() Kind    { return KindElementAccess }
func (e *ElementAccessExpr) Pos() Position { return e.Target.Pos() }
func (e *ElementAccessExpr) Children() []Node {
	return append([]Node{e.Target}, argNodes(e.Args)...)
}

// RankSpecifier is one [size, size, ...] dimension of an array creation.
type RankSpecifier struct {
	Open   Token
	Sizes  []Node
	Commas []Token
	Close  Token
}

// ArrayCreationExpr is new T[...]... with one or more rank specifiers.
type ArrayCreationExpr struct {
	NewTok Token
	Type   Token
	Ranks  []*RankSpecifier
	Init   []Node
}

func (e *ArrayCreationExpr) Kind() Kind    { return KindArrayCreation }
func (e *ArrayCreationExpr) Pos() Position { return e.NewTok.Pos() }
func (e *ArrayCreationExpr) Children() []Node {
	var out []Node
	for _, r := range e.Ranks {
		out = append(out, r.Sizes...)
	}
	return append(out, e.Init...)
}

// Attribute is a single attribute within an attribute group. Args is nil
// when the attribute has no argument list.
type Attribute struct {
	Name Token
	Args *ArgumentList
}

func (a *Attribute) Kind() Kind       { return KindAttribute }
func (a *Attribute) Pos() Position    { return a.Name.Pos() }
func (a *Attribute) Children() []Node { return argNodes(a.Args) }

// AttributeGroup is a bracketed group of attributes: [A, B(1), C].
type AttributeGroup struct {
	Open       Token
	Attributes []*Attribute
	Commas     []Token
	Close      Token
}

func (g *AttributeGroup) Kind() Kind    { return KindAttributeGroup }
func (g *AttributeGroup) Pos() Position { return g.Open.Pos() }
func (g *AttributeGroup) Children() []Node {
	out := make([]Node, len(g.Attributes))
	for i, a := range g.Attributes {
		out[i] = a
	}
	return out
}

// BasicExpr is any expression the parser has no dedicated node for.
// Inner holds interesting nodes found within it so walks reach them.
type BasicExpr struct {
	First Token
	Inner []Node
}

func (e *BasicExpr) Kind() Kind       { return KindBasicExpr }
func (e *BasicExpr) Pos() Position    { return e.First.Pos() }
func (e *BasicExpr) Children() []Node { return e.Inner }

func attrNodes(groups []*AttributeGroup) []Node {
	var out []Node
	for _, g := range groups {
		out = append(out, g)
	}
	return out
}

func paramAttrNodes(pl *ParameterList) []Node {
	if pl == nil {
		return nil
	}
	var out []Node
	for _, param := range pl.Params {
		for _, g := range param.Attrs {
			out = append(out, g)
		}
	}
	return out
}

func argNodes(al *ArgumentList) []Node {
	if al == nil {
		return nil
	}
	var out []Node
	for _, a := range al.Args {
		if a.Expr != nil {
			out = append(out, a.Expr)
		}
	}
	return out
}

// Walk visits n and its descendants in pre-order. Returning false from
// fn prunes the subtree below the current node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children() {
		if c != nil {
			Walk(c, fn)
		}
	}
}
