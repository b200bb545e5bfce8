package syntax

// lexer walks raw source bytes and produces a flat token stream.
// Comments, whitespace, and preprocessor directives are consumed but
// never emitted; positions always refer to the original source.
type lexer struct {
	src  []byte
	off  int
	line int
	col  int
}

// Lex tokenizes src. The returned slice always ends with an EOF token.
func Lex(src []byte) []Token {
	l := &lexer{src: src, line: 1, col: 1}
	var toks []Token
	for {
		t := l.next()
		toks = append(toks, t)
		if t.Kind == EOF {
			return toks
		}
	}
}

// twoCharOps are multi-byte operators recognized as single tokens. The
// lambda arrow must be one token for lambda detection in the parser.
// >> is deliberately absent: lexing it as two > tokens lets nested
// generic argument lists (List<List<int>>) close properly.
var twoCharOps = map[string]bool{
	"=>": true, "==": true, "!=": true, "<=": true, ">=": true,
	"&&": true, "||": true, "++": true, "--": true, "->": true,
	"??": true, "?.": true, "+=": true, "-=": true, "*=": true,
	"/=": true, "%=": true, "&=": true, "|=": true, "^=": true,
	"<<": true, "::": true,
}

func (l *lexer) next() Token {
	l.skipTrivia()
	if l.off >= len(l.src) {
		return Token{Kind: EOF, Offset: l.off, Line: l.line, Column: l.col}
	}

	start := l.mark()
	c := l.src[l.off]

	switch {
	case isIdentStart(c):
		return l.lexIdent(start)
	case c >= '0' && c <= '9':
		return l.lexNumber(start)
	case c == '"':
		l.advance()
		return l.lexString(start, false)
	case c == '\'':
		return l.lexChar(start)
	case c == '@' || c == '$':
		return l.lexPrefixed(start)
	}

	// Operators and punctuation.
	if l.off+1 < len(l.src) {
		two := string(l.src[l.off : l.off+2])
		if twoCharOps[two] {
			l.advance()
			l.advance()
			return start.token(Punct, two)
		}
	}
	l.advance()
	return start.token(Punct, string(c))
}

// marker remembers a token's starting location.
type marker struct {
	l      *lexer
	offset int
	line   int
	col    int
}

func (l *lexer) mark() marker {
	return marker{l: l, offset: l.off, line: l.line, col: l.col}
}

func (m marker) token(kind TokenKind, text string) Token {
	return Token{Kind: kind, Text: text, Offset: m.offset, Line: m.line, Column: m.col}
}

// text returns the source consumed since the marker.
func (m marker) text() string {
	return string(m.l.src[m.offset:m.l.off])
}

func (l *lexer) advance() {
	if l.off >= len(l.src) {
		return
	}
	if l.src[l.off] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.off++
}

// skipTrivia consumes whitespace, comments, and preprocessor lines.
func (l *lexer) skipTrivia() {
	for l.off < len(l.src) {
		c := l.src[l.off]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advance()
		case c == '/' && l.off+1 < len(l.src) && l.src[l.off+1] == '/':
			for l.off < len(l.src) && l.src[l.off] != '\n' {
				l.advance()
			}
		case c == '/' && l.off+1 < len(l.src) && l.src[l.off+1] == '*':
			l.advance()
			l.advance()
			for l.off < len(l.src) {
				if l.src[l.off] == '*' && l.off+1 < len(l.src) && l.src[l.off+1] == '/' {
					l.advance()
					l.advance()
					break
				}
				l.advance()
			}
		case c == '#' && l.col == 1:
			// Preprocessor directive: skip the whole line.
			for l.off < len(l.src) && l.src[l.off] != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *lexer) lexIdent(start marker) Token {
	for l.off < len(l.src) && isIdentPart(l.src[l.off]) {
		l.advance()
	}
	text := start.text()
	if keywords[text] {
		return start.token(Keyword, text)
	}
	return start.token(Ident, text)
}

func (l *lexer) lexNumber(start marker) Token {
	for l.off < len(l.src) && isNumberPart(l.src[l.off]) {
		l.advance()
	}
	// Fractional part: only when a digit follows the dot, so member
	// access on a literal (2.ToString()) still lexes as two tokens.
	if l.off+1 < len(l.src) && l.src[l.off] == '.' && l.src[l.off+1] >= '0' && l.src[l.off+1] <= '9' {
		l.advance()
		for l.off < len(l.src) && isNumberPart(l.src[l.off]) {
			l.advance()
		}
	}
	return start.token(Number, start.text())
}

// lexString consumes a string literal body; the opening quote is already
// consumed. Verbatim strings escape quotes by doubling them.
func (l *lexer) lexString(start marker, verbatim bool) Token {
	for l.off < len(l.src) {
		c := l.src[l.off]
		if c == '\\' && !verbatim {
			l.advance()
			l.advance()
			continue
		}
		if c == '"' {
			if verbatim && l.off+1 < len(l.src) && l.src[l.off+1] == '"' {
				l.advance()
				l.advance()
				continue
			}
			l.advance()
			break
		}
		l.advance()
	}
	return start.token(String, start.text())
}

func (l *lexer) lexChar(start marker) Token {
	l.advance() // opening quote
	for l.off < len(l.src) {
		c := l.src[l.off]
		if c == '\\' {
			l.advance()
			l.advance()
			continue
		}
		l.advance()
		if c == '\'' || c == '\n' {
			break
		}
	}
	return start.token(Char, start.text())
}

// lexPrefixed handles @ and $ prefixes: verbatim identifiers (@name),
// verbatim strings (@"..."), and interpolated strings ($"...", $@"...").
func (l *lexer) lexPrefixed(start marker) Token {
	verbatim := false
	for l.off < len(l.src) && (l.src[l.off] == '@' || l.src[l.off] == '$') {
		if l.src[l.off] == '@' {
			verbatim = true
		}
		l.advance()
	}
	if l.off < len(l.src) && l.src[l.off] == '"' {
		l.advance()
		return l.lexString(start, verbatim)
	}
	if l.off < len(l.src) && isIdentStart(l.src[l.off]) {
		for l.off < len(l.src) && isIdentPart(l.src[l.off]) {
			l.advance()
		}
		// Verbatim identifiers are never keywords.
		return start.token(Ident, start.text())
	}
	return start.token(Punct, start.text())
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isNumberPart(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
