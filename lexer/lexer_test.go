package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scanAll(t *testing.T, src string) []Token {
	t.Helper()
	l := New(src)
	tokens, errs := l.ScanTokens()
	assert.Empty(t, errs)
	return tokens
}

func TestScanTokens_Punctuation(t *testing.T) {
	tokens := scanAll(t, "(){},.-+;*!=<=>===")
	want := []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT,
		MINUS, PLUS, SEMICOLON, STAR, BANG_EQUAL, LESS_EQUAL,
		GREATER_EQUAL, EQUAL_EQUAL, EOF,
	}
	assert.Len(t, tokens, len(want))
	for i, typ := range want {
		assert.Equal(t, typ, tokens[i].Type, "token %d", i)
	}
}

func TestScanTokens_NumberLiteral(t *testing.T) {
	tokens := scanAll(t, "3.14 42")
	assert.Equal(t, NUMBER, tokens[0].Type)
	assert.Equal(t, 3.14, tokens[0].Literal)
	assert.Equal(t, NUMBER, tokens[1].Type)
	assert.Equal(t, 42.0, tokens[1].Literal)
}

func TestScanTokens_StringLiteral(t *testing.T) {
	tokens := scanAll(t, `"hello world"`)
	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	l := New(`"oops`)
	_, errs := l.ScanTokens()
	assert.NotEmpty(t, errs)
}

func TestScanTokens_KeywordsAndIdentifiers(t *testing.T) {
	tokens := scanAll(t, "var x = orchid and false")
	want := []TokenType{VAR, IDENTIFIER, EQUAL, IDENTIFIER, AND, FALSE, EOF}
	for i, typ := range want {
		assert.Equal(t, typ, tokens[i].Type, "token %d", i)
	}
}

func TestScanTokens_CommentsAndLines(t *testing.T) {
	tokens := scanAll(t, "var a = 1; // comment\nvar b = 2;")
	var varLines []int
	for _, tok := range tokens {
		if tok.Type == VAR {
			varLines = append(varLines, tok.Line)
		}
	}
	assert.Equal(t, []int{1, 2}, varLines)
}

func TestScanTokens_BlockComment(t *testing.T) {
	tokens := scanAll(t, "1 /* skip\nme */ 2")
	assert.Equal(t, NUMBER, tokens[0].Type)
	assert.Equal(t, NUMBER, tokens[1].Type)
	assert.Equal(t, 2, tokens[1].Line)
}
