package syntax

// TokenKind classifies a lexical token.
type TokenKind int

// Token kinds.
const (
	EOF TokenKind = iota
	Ident
	Keyword
	Number
	String
	Char
	Punct
)

// Position is a 1-based line/column location in the source.
type Position struct {
	Line   int
	Column int
}

// Token is a single lexical token with its source location.
// Missing marks a token synthesized by error recovery (e.g. a closing
// delimiter the parser expected but did not find).
type Token struct {
	Kind    TokenKind
	Text    string
	Offset  int
	Line    int
	Column  int
	Missing bool
}

// Pos returns the token's source position.
func (t Token) Pos() Position { return Position{Line: t.Line, Column: t.Column} }

// Is reports whether the token is punctuation with the given text.
func (t Token) Is(text string) bool { return t.Kind == Punct && t.Text == text }

// IsKeyword reports whether the token is the given keyword.
func (t Token) IsKeyword(kw string) bool { return t.Kind == Keyword && t.Text == kw }

var keywords = map[string]bool{
	"abstract": true, "as": true, "async": true, "await": true,
	"base": true, "bool": true, "break": true, "byte": true,
	"case": true, "catch": true, "char": true, "checked": true,
	"class": true, "const": true, "continue": true, "decimal": true,
	"default": true, "delegate": true, "do": true, "double": true,
	"else": true, "enum": true, "event": true, "explicit": true,
	"extern": true, "false": true, "finally": true, "fixed": true,
	"float": true, "for": true, "foreach": true, "goto": true,
	"if": true, "implicit": true, "in": true, "int": true,
	"interface": true, "internal": true, "is": true, "lock": true,
	"long": true, "namespace": true, "new": true, "null": true,
	"object": true, "operator": true, "out": true, "override": true,
	"params": true, "partial": true, "private": true, "protected": true,
	"public": true, "readonly": true, "ref": true, "return": true,
	"sbyte": true, "sealed": true, "short": true, "sizeof": true,
	"static": true, "string": true, "struct": true, "switch": true,
	"this": true, "throw": true, "true": true, "try": true,
	"typeof": true, "uint": true, "ulong": true, "unchecked": true,
	"unsafe": true, "ushort": true, "using": true, "var": true,
	"virtual": true, "void": true, "volatile": true, "while": true,
	"yield": true,
}

// modifiers are member modifiers the parser consumes before a declaration.
var modifiers = map[string]bool{
	"abstract": true, "async": true, "const": true, "event": true,
	"extern": true, "internal": true, "new": true, "override": true,
	"partial": true, "private": true, "protected": true, "public": true,
	"readonly": true, "sealed": true, "static": true, "unsafe": true,
	"virtual": true, "volatile": true,
}
