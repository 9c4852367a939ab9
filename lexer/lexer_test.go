/*
File    : golox/lexer/lexer_test.go
Derived : github.com/akashmaji946/go-mix (lexer/lexer_test.go)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/golox/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tk := range toks {
		out[i] = tk.Kind
	}
	return out
}

func TestTokenize_Structural(t *testing.T) {
	toks, errs := Tokenize("(){},.;")
	assert.Empty(t, errs)
	assert.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Semicolon, token.EOF,
	}, kinds(toks))
}

func TestTokenize_CompoundOperators(t *testing.T) {
	toks, errs := Tokenize("== != <= >= = ! < >")
	assert.Empty(t, errs)
	assert.Equal(t, []token.Kind{
		token.EqualEqual, token.BangEqual, token.LessEqual, token.GreaterEqual,
		token.Equal, token.Bang, token.Less, token.Greater, token.EOF,
	}, kinds(toks))
}

func TestTokenize_NumberLiteral(t *testing.T) {
	toks, errs := Tokenize("123 45.67 8.")
	assert.Empty(t, errs)
	assert.Equal(t, 123.0, toks[0].Literal)
	assert.Equal(t, 45.67, toks[1].Literal)
	// trailing '.' not followed by a digit is not consumed as part of the number
	assert.Equal(t, 8.0, toks[2].Literal)
	assert.Equal(t, token.Dot, toks[3].Kind)
}

func TestTokenize_StringLiteral(t *testing.T) {
	toks, errs := Tokenize(`"hello world"`)
	assert.Empty(t, errs)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestTokenize_UnterminatedString(t *testing.T) {
	toks, errs := Tokenize("\"abc")
	if assert.Len(t, errs, 1) {
		assert.Equal(t, 1, errs[0].Line)
		assert.Equal(t, "[line 1] Error: Unterminated string.", errs[0].Error())
	}
	assert.Equal(t, token.EOF, toks[len(toks)-1].Kind)
}

func TestTokenize_KeywordsVsIdentifiers(t *testing.T) {
	toks, errs := Tokenize("var x = print and fooBar")
	assert.Empty(t, errs)
	assert.Equal(t, []token.Kind{
		token.Var, token.Identifier, token.Equal, token.Print, token.And, token.Identifier, token.EOF,
	}, kinds(toks))
}

func TestTokenize_CommentsAndWhitespaceSkipped(t *testing.T) {
	toks, errs := Tokenize("1 // a comment\n+ 2")
	assert.Empty(t, errs)
	assert.Equal(t, []token.Kind{token.Number, token.Plus, token.Number, token.EOF}, kinds(toks))
	// line counter should have advanced past the comment's newline
	assert.Equal(t, 2, toks[1].Line)
}

func TestTokenize_UnexpectedCharacterContinuesScanning(t *testing.T) {
	toks, errs := Tokenize("1 @ 2")
	if assert.Len(t, errs, 1) {
		assert.Contains(t, errs[0].Error(), "Unexpected character")
	}
	assert.Equal(t, []token.Kind{token.Number, token.Number, token.EOF}, kinds(toks))
}

func TestTokenize_LineTracking(t *testing.T) {
	toks, errs := Tokenize("1\n2\n\n3")
	assert.Empty(t, errs)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 4, toks[2].Line)
}

func TestFormatNumberLiteral(t *testing.T) {
	assert.Equal(t, "10.0", FormatNumberLiteral(10))
	assert.Equal(t, "10.4", FormatNumberLiteral(10.4))
	assert.Equal(t, "0.0", FormatNumberLiteral(0))
}
