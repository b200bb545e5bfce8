package syntax

// parser builds a Tree from a token stream. It is tolerant by design:
// it never fails, synthesizes Missing tokens for absent delimiters, and
// resynchronizes past anything it does not understand. The tree only
// models the constructs style rules inspect; everything else collapses
// into BasicExpr nodes or is skipped.
type parser struct {
	toks []Token
	pos  int
}

// Parse builds a Tree from src. It accepts any byte input.
func Parse(src []byte) *Tree {
	p := &parser{toks: Lex(src)}
	t := &Tree{}
	for !p.atEOF() {
		before := p.pos
		if n := p.parseTopLevel(); n != nil {
			t.Decls = append(t.Decls, n)
		}
		if p.pos == before {
			p.next()
		}
	}
	return t
}

func (p *parser) cur() Token { return p.toks[p.pos] }

func (p *parser) atEOF() bool { return p.cur().Kind == EOF }

func (p *parser) next() Token {
	t := p.cur()
	if t.Kind != EOF {
		p.pos++
	}
	return t
}

func (p *parser) peek(n int) Token { return p.tokAt(p.pos + n) }

func (p *parser) tokAt(i int) Token {
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

// expect consumes the given punctuation, or synthesizes a Missing token
// at the current position without consuming anything.
func (p *parser) expect(text string) Token {
	if p.cur().Is(text) {
		return p.next()
	}
	t := p.cur()
	return Token{Kind: Punct, Text: text, Offset: t.Offset, Line: t.Line, Column: t.Column, Missing: true}
}

func (p *parser) parseTopLevel() Node {
	t := p.cur()
	switch {
	case t.Is("["):
		return p.parseAttributeGroup()
	case t.IsKeyword("using") && !p.peek(1).Is("("):
		p.skipPast(";")
		return nil
	case t.IsKeyword("namespace"):
		p.next()
		for p.cur().Kind == Ident || p.cur().Is(".") {
			p.next()
		}
		// Both block-scoped and file-scoped namespaces dissolve into
		// the surrounding declaration stream.
		if p.cur().Is(";") || p.cur().Is("{") {
			p.next()
		}
		return nil
	case t.Is("}") || t.Is(";"):
		p.next()
		return nil
	}

	start := p.pos
	for p.cur().Kind == Keyword && modifiers[p.cur().Text] {
		p.next()
	}
	t = p.cur()
	switch {
	case isTypeKeyword(t):
		return p.parseTypeDecl(nil)
	case t.IsKeyword("delegate") && p.delegateDeclAhead():
		return p.parseDelegateDecl(nil)
	}
	p.pos = start
	return p.parseStatement()
}

func isTypeKeyword(t Token) bool {
	return t.IsKeyword("class") || t.IsKeyword("struct") || t.IsKeyword("interface") || t.IsKeyword("enum")
}

// delegateDeclAhead distinguishes a delegate type declaration from an
// anonymous-method expression (delegate ( or delegate {).
func (p *parser) delegateDeclAhead() bool {
	nxt := p.peek(1)
	return !nxt.Is("(") && !nxt.Is("{")
}

func (p *parser) parseTypeDecl(attrs []*AttributeGroup) Node {
	kw := p.next()
	var name Token
	if p.cur().Kind == Ident {
		name = p.next()
	}
	p.skipGenericArgs()
	// Base list and constraint clauses.
	for !p.atEOF() && !p.cur().Is("{") && !p.cur().Is(";") {
		p.next()
	}
	d := &TypeDecl{KeywordTok: kw, Name: name, Attrs: attrs}
	if kw.IsKeyword("enum") {
		p.skipBalanced("{", "}")
		return d
	}
	if p.cur().Is("{") {
		p.next()
		for !p.atEOF() && !p.cur().Is("}") {
			before := p.pos
			if m := p.parseMember(name.Text); m != nil {
				d.Members = append(d.Members, m)
			}
			if p.pos == before {
				p.next()
			}
		}
		if p.cur().Is("}") {
			p.next()
		}
	}
	if p.cur().Is(";") {
		p.next()
	}
	return d
}

// parseMember parses one member of a type body. typeName decides
// constructor vs method recognition.
func (p *parser) parseMember(typeName string) Node {
	var attrs []*AttributeGroup
	for p.cur().Is("[") {
		attrs = append(attrs, p.parseAttributeGroup())
	}
	for p.cur().Kind == Keyword && modifiers[p.cur().Text] {
		p.next()
	}

	t := p.cur()
	switch {
	case isTypeKeyword(t):
		return p.parseTypeDecl(attrs)
	case t.IsKeyword("delegate") && p.delegateDeclAhead():
		return p.parseDelegateDecl(attrs)
	case t.Is(";"):
		p.next()
		return emptyGroupMember(attrs)
	}

	// Header scan: everything up to the token that decides the member
	// shape. Array-type brackets and generic arguments are skipped so
	// only a `this[` opens an indexer parameter list.
	var header []Token
	var opTok, opName Token
	for !p.atEOF() {
		t = p.cur()
		switch {
		case t.Is("("):
			return p.finishCallableMember(typeName, header, opTok, opName, attrs)
		case t.Is("{"), t.Is("=>"), t.Is("="), t.Is(";"), t.Is("}"):
			return p.finishDataMember(header, attrs)
		case t.Is("["):
			if len(header) > 0 && header[len(header)-1].IsKeyword("this") {
				d := &IndexerDecl{ThisTok: header[len(header)-1], Attrs: attrs}
				d.Params = p.parseParameterList("[", "]")
				d.Body = p.parseOptionalBody()
				return d
			}
			p.skipBalanced("[", "]")
		case t.Is("<"):
			p.skipGenericArgs()
		case t.IsKeyword("operator"):
			opTok = p.next()
			if !p.cur().Is("(") {
				opName = p.next()
			}
		default:
			header = append(header, p.next())
		}
	}
	return nil
}

// emptyGroupMember keeps attribute groups on otherwise empty members
// reachable from a walk.
func emptyGroupMember(attrs []*AttributeGroup) Node {
	if len(attrs) == 0 {
		return nil
	}
	return &PropertyDecl{Name: attrs[0].Open, Attrs: attrs}
}

func (p *parser) finishCallableMember(typeName string, header []Token, opTok, opName Token, attrs []*AttributeGroup) Node {
	params := p.parseParameterList("(", ")")
	body := p.parseOptionalBody()

	if opTok.IsKeyword("operator") {
		return &OperatorDecl{OperatorTok: opTok, Name: opName, Attrs: attrs, Params: params, Body: body}
	}

	var idents []Token
	for _, h := range header {
		if h.Kind == Ident {
			idents = append(idents, h)
		}
	}
	name := lastOrZero(header)
	if len(idents) > 0 {
		name = idents[len(idents)-1]
	}
	if len(idents) == 1 && idents[0].Text == typeName {
		return &ConstructorDecl{Name: name, Attrs: attrs, Params: params, Body: body}
	}
	return &MethodDecl{Name: name, Attrs: attrs, Params: params, Body: body}
}

// finishDataMember wraps fields and properties so expressions in their
// initializers and accessor bodies stay reachable.
func (p *parser) finishDataMember(header []Token, attrs []*AttributeGroup) Node {
	d := &PropertyDecl{Name: lastOrZero(header), Attrs: attrs}
	switch {
	case p.cur().Is("{"):
		d.Body = p.parseBlock()
		// Property initializer: { get; set; } = expr;
		if p.cur().Is("=") {
			p.next()
			if e := p.parseExpression(); e != nil {
				d.Body = append(d.Body, e)
			}
		}
		if p.cur().Is(";") {
			p.next()
		}
	case p.cur().Is("=>"), p.cur().Is("="):
		p.next()
		if e := p.parseExpression(); e != nil {
			d.Body = append(d.Body, e)
		}
		if p.cur().Is(";") {
			p.next()
		}
	case p.cur().Is(";"):
		p.next()
	}
	if d.Name.Kind == EOF && len(attrs) == 0 && len(d.Body) == 0 {
		return nil
	}
	return d
}

func lastOrZero(toks []Token) Token {
	if len(toks) == 0 {
		return Token{}
	}
	return toks[len(toks)-1]
}

// parseOptionalBody parses whatever follows a callable member's
// parameter list: a constructor initializer, a block, an expression
// body, or a bare semicolon.
func (p *parser) parseOptionalBody() []Node {
	var nodes []Node
	if p.cur().Is(":") {
		p.next()
		if e := p.parseExpression(); e != nil {
			nodes = append(nodes, e)
		}
	}
	switch {
	case p.cur().Is("{"):
		nodes = append(nodes, p.parseBlock()...)
	case p.cur().Is("=>"):
		p.next()
		if e := p.parseExpression(); e != nil {
			nodes = append(nodes, e)
		}
		if p.cur().Is(";") {
			p.next()
		}
	case p.cur().Is(";"):
		p.next()
	}
	return nodes
}

// parseBlock parses a brace-delimited block, returning the interesting
// nodes found inside. The opening brace is at the current position.
func (p *parser) parseBlock() []Node {
	p.next() // {
	var nodes []Node
	for !p.atEOF() && !p.cur().Is("}") {
		before := p.pos
		if n := p.parseStatement(); n != nil {
			nodes = append(nodes, n)
		}
		if p.pos == before {
			p.next()
		}
	}
	if p.cur().Is("}") {
		p.next()
	}
	return nodes
}

// statementKeywords are consumed without their own node so that the
// expressions after them parse on their own. Keeping for/if/while out
// of expression position stops their parenthesized headers from being
// mistaken for argument lists.
var statementKeywords = map[string]bool{
	"if": true, "else": true, "while": true, "for": true,
	"foreach": true, "do": true, "switch": true, "case": true,
	"break": true, "continue": true, "return": true, "throw": true,
	"try": true, "catch": true, "finally": true, "lock": true,
	"using": true, "fixed": true, "goto": true, "yield": true,
	"in": true, "is": true, "as": true, "await": true,
}

func (p *parser) parseStatement() Node {
	t := p.cur()
	switch {
	case t.Is(";"):
		p.next()
		return nil
	case t.Is("{"):
		body := p.parseBlock()
		if len(body) == 0 {
			return nil
		}
		return &BasicExpr{First: t, Inner: body}
	case t.Kind == Keyword && statementKeywords[t.Text]:
		p.next()
		return nil
	}
	e := p.parseExpression()
	if p.cur().Is(";") {
		p.next()
	}
	return e
}

// binaryOps continue an expression when seen after an operand.
var binaryOps = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true,
	"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true,
	"&&": true, "||": true, "&": true, "|": true, "^": true,
	"<<": true, "??": true, "?": true, ":": true,
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true,
	"%=": true, "&=": true, "|=": true, "^=": true,
}

func (p *parser) parseExpression() Node {
	start := p.cur()
	left := p.parseUnary()
	if left == nil {
		return nil
	}
	inner := []Node{left}
	for {
		t := p.cur()
		if t.Kind == Punct && binaryOps[t.Text] {
			p.next()
		} else if t.IsKeyword("is") || t.IsKeyword("as") {
			p.next()
		} else {
			break
		}
		right := p.parseUnary()
		if right == nil {
			break
		}
		inner = append(inner, right)
	}
	if len(inner) == 1 {
		return left
	}
	return &BasicExpr{First: start, Inner: inner}
}

func (p *parser) parseUnary() Node {
	for {
		t := p.cur()
		if t.Is("!") || t.Is("-") || t.Is("+") || t.Is("~") || t.Is("*") || t.Is("&") ||
			t.Is("++") || t.Is("--") ||
			t.IsKeyword("await") || t.IsKeyword("ref") || t.IsKeyword("out") {
			p.next()
			continue
		}
		break
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() Node {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}
	for {
		t := p.cur()
		switch {
		case t.Is("("):
			expr = &InvocationExpr{Target: expr, Args: p.parseArgumentList("(", ")")}
		case t.Is("["):
			expr = &ElementAccessExpr{Target: expr, Args: p.parseArgumentList("[", "]")}
		case t.Is(".") || t.Is("?.") || t.Is("->") || t.Is("::"):
			p.next()
			if p.cur().Kind == Ident || p.cur().Kind == Keyword {
				p.next()
			}
		case t.Is("++") || t.Is("--") || t.Is("!"):
			p.next()
		case t.Is("<") && p.genericArgsAhead():
			p.skipGenericArgs()
		default:
			return expr
		}
	}
}

// primaryKeywords may open an expression: literals, self references,
// and the predefined type names (int.Parse, new int[...], casts).
var primaryKeywords = map[string]bool{
	"this": true, "base": true, "true": true, "false": true, "null": true,
	"typeof": true, "sizeof": true, "default": true, "checked": true,
	"unchecked": true, "var": true,
	"bool": true, "byte": true, "sbyte": true, "char": true,
	"decimal": true, "double": true, "float": true, "int": true,
	"uint": true, "long": true, "ulong": true, "short": true,
	"ushort": true, "object": true, "string": true, "void": true,
}

func (p *parser) parsePrimary() Node {
	t := p.cur()
	switch {
	case t.Is("("):
		return p.parseParenOrLambda()
	case t.IsKeyword("new"):
		return p.parseNewExpr()
	case t.IsKeyword("delegate"):
		return p.parseAnonymousMethod()
	case t.IsKeyword("async") && (p.peek(1).Is("(") || p.peek(1).IsKeyword("delegate")):
		p.next()
		return p.parsePrimary()
	case t.Kind == Ident || t.Kind == Number || t.Kind == String || t.Kind == Char:
		p.next()
		return &BasicExpr{First: t}
	case t.Kind == Keyword && primaryKeywords[t.Text]:
		p.next()
		return &BasicExpr{First: t}
	}
	return nil
}

// parseParenOrLambda handles an opening paren in expression position:
// a parenthesized lambda when the matching close paren is followed by
// =>, otherwise a plain parenthesized group (casts, tuples, grouping).
func (p *parser) parseParenOrLambda() Node {
	if p.lambdaAhead() {
		params := p.parseParameterList("(", ")")
		arrow := p.expect("=>")
		e := &LambdaExpr{Params: params, Arrow: arrow}
		if p.cur().Is("{") {
			e.Body = p.parseBlock()
		} else if body := p.parseExpression(); body != nil {
			e.Body = []Node{body}
		}
		return e
	}

	open := p.next()
	group := &BasicExpr{First: open}
	for !p.atEOF() && !p.cur().Is(")") {
		if p.cur().Is(",") || p.cur().Is(";") {
			p.next()
			continue
		}
		before := p.pos
		if e := p.parseExpression(); e != nil {
			group.Inner = append(group.Inner, e)
		}
		if p.pos == before {
			p.next()
		}
	}
	p.expect(")")
	return group
}

// lambdaAhead reports whether the paren at the current position closes
// immediately before a lambda arrow.
func (p *parser) lambdaAhead() bool {
	depth := 0
	for i := p.pos; i < len(p.toks); i++ {
		t := p.toks[i]
		switch {
		case t.Is("("):
			depth++
		case t.Is(")"):
			depth--
			if depth == 0 {
				return p.tokAt(i + 1).Is("=>")
			}
		case t.Kind == EOF || t.Is(";") || t.Is("{"):
			return false
		}
	}
	return false
}

// genericArgsAhead reports whether a < at the current position looks
// like a generic argument list on a call target: only type-ish tokens
// up to the matching >, and an opening paren right after it.
func (p *parser) genericArgsAhead() bool {
	end, ok := p.matchAngle()
	return ok && p.tokAt(end+1).Is("(")
}

// typeArgsAhead reports whether a < at the current position opens a
// balanced generic argument list, as opposed to a less-than operator.
func (p *parser) typeArgsAhead() bool {
	_, ok := p.matchAngle()
	return ok
}

// matchAngle scans from a < at the current position for its matching >,
// admitting only tokens that can appear inside a generic argument list.
// It returns the index of the matching > when one is found.
func (p *parser) matchAngle() (int, bool) {
	depth := 0
	for i := p.pos; i < len(p.toks); i++ {
		t := p.toks[i]
		switch {
		case t.Is("<"):
			depth++
		case t.Is(">"):
			depth--
			if depth == 0 {
				return i, true
			}
		case t.Kind == Ident || t.Kind == Keyword ||
			t.Is(",") || t.Is(".") || t.Is("[") || t.Is("]") || t.Is("?"):
			// type-ish, keep scanning
		default:
			return 0, false
		}
	}
	return 0, false
}

func (p *parser) parseNewExpr() Node {
	newTok := p.next()
	var typeTok Token
	if p.cur().Kind == Ident || (p.cur().Kind == Keyword && primaryKeywords[p.cur().Text]) {
		typeTok = p.next()
	}
	for {
		if p.cur().Is(".") && p.peek(1).Kind == Ident {
			p.next()
			p.next()
			continue
		}
		if p.cur().Is("<") {
			p.skipGenericArgs()
			continue
		}
		break
	}

	switch {
	case p.cur().Is("["):
		e := &ArrayCreationExpr{NewTok: newTok, Type: typeTok}
		for p.cur().Is("[") {
			e.Ranks = append(e.Ranks, p.parseRankSpecifier())
		}
		e.Init = p.parseInitializer()
		return e
	case p.cur().Is("("):
		e := &ObjectCreationExpr{NewTok: newTok, Type: typeTok}
		e.Args = p.parseArgumentList("(", ")")
		e.Init = p.parseInitializer()
		return e
	default:
		return &ObjectCreationExpr{NewTok: newTok, Type: typeTok, Init: p.parseInitializer()}
	}
}

// parseInitializer consumes an object/collection initializer block when
// present, returning the interesting nodes found inside it.
func (p *parser) parseInitializer() []Node {
	if !p.cur().Is("{") {
		return nil
	}
	p.next()
	var nodes []Node
	for !p.atEOF() && !p.cur().Is("}") {
		if p.cur().Is(",") || p.cur().Is(";") || p.cur().Is("=") {
			p.next()
			continue
		}
		if p.cur().Is("{") {
			nodes = append(nodes, p.parseInitializer()...)
			continue
		}
		before := p.pos
		if e := p.parseExpression(); e != nil {
			nodes = append(nodes, e)
		}
		if p.pos == before {
			p.next()
		}
	}
	if p.cur().Is("}") {
		p.next()
	}
	return nodes
}

func (p *parser) parseRankSpecifier() *RankSpecifier {
	r := &RankSpecifier{Open: p.next()}
	for !p.atEOF() && !p.cur().Is("]") {
		if p.cur().Is(",") {
			if len(r.Sizes) == 0 {
				p.next()
				continue
			}
			r.Commas = append(r.Commas, p.next())
			continue
		}
		if p.cur().Is(";") || p.cur().Is("{") || p.cur().Is("}") {
			break
		}
		before := p.pos
		if e := p.parseExpression(); e != nil {
			r.Sizes = append(r.Sizes, e)
		}
		if p.pos == before {
			p.next()
		}
	}
	r.Close = p.expect("]")
	return r
}

func (p *parser) parseAnonymousMethod() Node {
	e := &AnonymousMethodExpr{DelegateTok: p.next()}
	if p.cur().Is("(") {
		e.Params = p.parseParameterList("(", ")")
	}
	if p.cur().Is("{") {
		e.Body = p.parseBlock()
	}
	return e
}

// parseParameterList parses a delimited parameter list. Parameters are
// split on commas outside nested delimiters; a < nests only when it
// opens a generic argument list, so a less-than operator in a default
// value does not swallow the rest of the list. Attribute groups at the
// start of a parameter become Attribute nodes.
func (p *parser) parseParameterList(open, close string) *ParameterList {
	pl := &ParameterList{Open: p.expect(open)}
	depth := 0
	angle := 0
	var cur []Token
	var curAttrs []*AttributeGroup

	flush := func() {
		if len(cur) == 0 && len(curAttrs) == 0 {
			return
		}
		param := &Parameter{Attrs: curAttrs}
		if len(curAttrs) > 0 {
			param.First = curAttrs[0].Open
		} else {
			param.First = cur[0]
		}
		for _, t := range cur {
			if t.Kind == Ident {
				param.Name = t
			}
			if t.Is("=") {
				break
			}
		}
		pl.Params = append(pl.Params, param)
		cur = nil
		curAttrs = nil
	}

	for !p.atEOF() {
		t := p.cur()
		if depth == 0 && angle == 0 {
			if t.Is(close) {
				break
			}
			if t.Is(",") {
				// A separator before any parameter is recovered
				// input; drop it so separators pair with the
				// parameters they follow.
				if len(pl.Params) == 0 && len(cur) == 0 && len(curAttrs) == 0 {
					p.next()
					continue
				}
				flush()
				pl.Commas = append(pl.Commas, p.next())
				continue
			}
			if t.Is("[") && len(cur) == 0 {
				curAttrs = append(curAttrs, p.parseAttributeGroup())
				continue
			}
			if t.Is(";") || t.Is("{") || t.Is("}") || t.Is("=>") {
				break
			}
		}
		switch {
		case t.Is("(") || t.Is("["):
			depth++
		case t.Is(")") || t.Is("]"):
			if depth > 0 {
				depth--
			}
		case t.Is("<") && p.typeArgsAhead():
			angle++
		case t.Is(">"):
			if angle > 0 {
				angle--
			}
		}
		cur = append(cur, p.next())
	}
	flush()
	pl.Close = p.expect(close)
	return pl
}

// parseArgumentList parses a delimited argument list, recursing into
// each argument expression so nested constructs stay in the tree.
func (p *parser) parseArgumentList(open, close string) *ArgumentList {
	al := &ArgumentList{Open: p.expect(open)}
	for !p.atEOF() {
		t := p.cur()
		if t.Is(close) {
			break
		}
		if t.Is(",") {
			if len(al.Args) == 0 {
				// Recovered input; a separator with no argument
				// before it has nothing to pair with.
				p.next()
				continue
			}
			al.Commas = append(al.Commas, p.next())
			continue
		}
		if t.Is(";") || t.Is("{") || t.Is("}") {
			break
		}
		before := p.pos
		if a := p.parseArgument(); a != nil {
			al.Args = append(al.Args, a)
		}
		if p.pos == before {
			p.next()
		}
	}
	al.Close = p.expect(close)
	return al
}

func (p *parser) parseArgument() *Argument {
	first := p.cur()
	for p.cur().IsKeyword("ref") || p.cur().IsKeyword("out") || p.cur().IsKeyword("in") {
		p.next()
	}
	// Named argument label.
	if p.cur().Kind == Ident && p.peek(1).Is(":") {
		p.next()
		p.next()
	}
	e := p.parseExpression()
	if e == nil && p.cur() == first {
		return nil
	}
	// Declaration expression: out var x, out T result.
	if p.cur().Kind == Ident {
		p.next()
	}
	return &Argument{First: first, Expr: e}
}

func (p *parser) parseAttributeGroup() *AttributeGroup {
	g := &AttributeGroup{Open: p.next()}
	for !p.atEOF() {
		t := p.cur()
		if t.Is("]") {
			break
		}
		if t.Is(",") {
			if len(g.Attributes) == 0 {
				p.next()
				continue
			}
			g.Commas = append(g.Commas, p.next())
			continue
		}
		if t.Is(";") || t.Is("{") || t.Is("}") {
			break
		}
		before := p.pos
		if a := p.parseAttribute(); a != nil {
			g.Attributes = append(g.Attributes, a)
		}
		if p.pos == before {
			p.next()
		}
	}
	g.Close = p.expect("]")
	return g
}

func (p *parser) parseAttribute() *Attribute {
	// Target specifier: [assembly: ...], [return: ...].
	if (p.cur().Kind == Ident || p.cur().Kind == Keyword) && p.peek(1).Is(":") {
		p.next()
		p.next()
	}
	if p.cur().Kind != Ident {
		return nil
	}
	a := &Attribute{Name: p.next()}
	for p.cur().Is(".") && p.peek(1).Kind == Ident {
		p.next()
		p.next()
	}
	p.skipGenericArgs()
	if p.cur().Is("(") {
		a.Args = p.parseArgumentList("(", ")")
	}
	return a
}

// skipGenericArgs skips a balanced <...> starting at the current
// position, bailing out at tokens that cannot be inside one.
func (p *parser) skipGenericArgs() {
	if !p.cur().Is("<") {
		return
	}
	depth := 0
	for !p.atEOF() {
		t := p.cur()
		switch {
		case t.Is("<"):
			depth++
		case t.Is(">"):
			depth--
			p.next()
			if depth == 0 {
				return
			}
			continue
		case t.Is(";") || t.Is("{") || t.Is("}") || t.Is("("):
			return
		}
		p.next()
	}
}

// skipBalanced skips from an opening delimiter to its matching close.
func (p *parser) skipBalanced(open, close string) {
	if !p.cur().Is(open) {
		return
	}
	depth := 0
	for !p.atEOF() {
		t := p.next()
		if t.Is(open) {
			depth++
		} else if t.Is(close) {
			depth--
			if depth == 0 {
				return
			}
		}
	}
}

// skipPast consumes tokens through the next occurrence of text.
func (p *parser) skipPast(text string) {
	for !p.atEOF() {
		if p.next().Is(text) {
			return
		}
	}
}

func (p *parser) parseDelegateDecl(attrs []*AttributeGroup) Node {
	d := &DelegateDecl{DelegateTok: p.next(), Attrs: attrs}
	for !p.atEOF() && !p.cur().Is("(") && !p.cur().Is(";") && !p.cur().Is("{") && !p.cur().Is("}") {
		if p.cur().Is("<") {
			p.skipGenericArgs()
			continue
		}
		t := p.next()
		if t.Kind == Ident {
			d.Name = t
		}
	}
	if p.cur().Is("(") {
		d.Params = p.parseParameterList("(", ")")
	}
	if p.cur().Is(";") {
		p.next()
	}
	return d
}
