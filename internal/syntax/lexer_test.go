package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lexTexts tokenizes src and returns the non-EOF token texts.
func lexTexts(t *testing.T, src string) []string {
	t.Helper()
	toks := Lex([]byte(src))
	require.NotEmpty(t, toks)
	require.Equal(t, EOF, toks[len(toks)-1].Kind)
	texts := make([]string, 0, len(toks)-1)
	for _, tok := range toks[:len(toks)-1] {
		texts = append(texts, tok.Text)
	}
	return texts
}

func TestLex_Basic(t *testing.T) {
	toks := Lex([]byte("f(a, b);"))
	want := []Token{
		{Kind: Ident, Text: "f", Offset: 0, Line: 1, Column: 1},
		{Kind: Punct, Text: "(", Offset: 1, Line: 1, Column: 2},
		{Kind: Ident, Text: "a", Offset: 2, Line: 1, Column: 3},
		{Kind: Punct, Text: ",", Offset: 3, Line: 1, Column: 4},
		{Kind: Ident, Text: "b", Offset: 5, Line: 1, Column: 6},
		{Kind: Punct, Text: ")", Offset: 6, Line: 1, Column: 7},
		{Kind: Punct, Text: ";", Offset: 7, Line: 1, Column: 8},
		{Kind: EOF, Offset: 8, Line: 1, Column: 9},
	}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestLex_LineAndColumnTracking(t *testing.T) {
	toks := Lex([]byte("f(a\n    , b);"))
	var commaTok Token
	for _, tok := range toks {
		if tok.Text == "," {
			commaTok = tok
		}
	}
	assert.Equal(t, 2, commaTok.Line)
	assert.Equal(t, 5, commaTok.Column)
}

func TestLex_Keywords(t *testing.T) {
	toks := Lex([]byte("new class delegate myident"))
	require.Len(t, toks, 5)
	assert.Equal(t, Keyword, toks[0].Kind)
	assert.Equal(t, Keyword, toks[1].Kind)
	assert.Equal(t, Keyword, toks[2].Kind)
	assert.Equal(t, Ident, toks[3].Kind)
}

func TestLex_TwoCharOperators(t *testing.T) {
	texts := lexTexts(t, "x => a == b && c != d")
	assert.Equal(t, []string{"x", "=>", "a", "==", "b", "&&", "c", "!=", "d"}, texts)
}

func TestLex_RightShiftIsTwoTokens(t *testing.T) {
	// List<List<int>> must end with two separate > tokens so nested
	// generic argument lists can close one level at a time.
	texts := lexTexts(t, "List<List<int>>")
	assert.Equal(t, []string{"List", "<", "List", "<", "int", ">", ">"}, texts)
}

func TestLex_Comments(t *testing.T) {
	texts := lexTexts(t, "a // line comment\n/* block\ncomment */ b")
	assert.Equal(t, []string{"a", "b"}, texts)

	toks := Lex([]byte("// only a comment"))
	require.Len(t, toks, 1)
	assert.Equal(t, EOF, toks[0].Kind)
}

func TestLex_CommaInCommentIgnored(t *testing.T) {
	texts := lexTexts(t, "f(a /* , */ , b)")
	assert.Equal(t, []string{"f", "(", "a", ",", "b", ")"}, texts)
}

func TestLex_PreprocessorLineSkipped(t *testing.T) {
	texts := lexTexts(t, "#if DEBUG\na\n#endif\nb")
	assert.Equal(t, []string{"a", "b"}, texts)
}

func TestLex_Strings(t *testing.T) {
	toks := Lex([]byte(`f("a , b", x)`))
	texts := lexTexts(t, `f("a , b", x)`)
	assert.Equal(t, []string{"f", "(", `"a , b"`, ",", "x", ")"}, texts)
	assert.Equal(t, String, toks[2].Kind)
}

func TestLex_StringEscapes(t *testing.T) {
	texts := lexTexts(t, `x = "a\"b";`)
	assert.Equal(t, []string{"x", "=", `"a\"b"`, ";"}, texts)
}

func TestLex_VerbatimString(t *testing.T) {
	texts := lexTexts(t, `x = @"a""b";`)
	assert.Equal(t, []string{"x", "=", `@"a""b"`, ";"}, texts)
}

func TestLex_InterpolatedString(t *testing.T) {
	texts := lexTexts(t, `x = $"v={v}";`)
	assert.Equal(t, []string{"x", "=", `$"v={v}"`, ";"}, texts)
}

func TestLex_VerbatimIdentifier(t *testing.T) {
	toks := Lex([]byte("@class"))
	require.Len(t, toks, 2)
	assert.Equal(t, Ident, toks[0].Kind)
	assert.Equal(t, "@class", toks[0].Text)
}

func TestLex_CharLiteral(t *testing.T) {
	texts := lexTexts(t, `f('a', '\'')`)
	assert.Equal(t, []string{"f", "(", "'a'", ",", `'\''`, ")"}, texts)
}

func TestLex_Numbers(t *testing.T) {
	texts := lexTexts(t, "f(1, 2.5, 0xFF, 1e10f)")
	assert.Equal(t, []string{"f", "(", "1", ",", "2.5", ",", "0xFF", ",", "1e10f", ")"}, texts)
}

func TestLex_MemberAccessOnNumber(t *testing.T) {
	texts := lexTexts(t, "2.ToString()")
	assert.Equal(t, []string{"2", ".", "ToString", "(", ")"}, texts)
}

func TestLex_Empty(t *testing.T) {
	toks := Lex(nil)
	require.Len(t, toks, 1)
	assert.Equal(t, EOF, toks[0].Kind)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 1, toks[0].Column)
}

func TestLex_UnterminatedString(t *testing.T) {
	toks := Lex([]byte(`x = "never closed`))
	require.Equal(t, EOF, toks[len(toks)-1].Kind)
	assert.Equal(t, String, toks[2].Kind)
}
