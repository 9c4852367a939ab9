/*
File    : golox/lexer/print.go
Derived : github.com/akashmaji946/go-mix (lexer/token.go Token.Print)
*/
package lexer

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/token"
)

// PrintToken writes one token in the `tokenize` command's line form:
// "KIND LEXEME LITERAL", where LITERAL is the raw text for strings, the
// canonicalized decimal form for numbers (see FormatNumberLiteral), and
// "null" for every other token, identifiers and keywords included (their
// source text appears in the LEXEME column). Grounded on go-mix's Token.Print, generalized from its
// fixed "%s:%v" debug form to this three-column layout.
func PrintToken(w io.Writer, tk token.Token) {
	literal := "null"
	switch tk.Kind {
	case token.String:
		literal = tk.Literal.(string)
	case token.Number:
		literal = FormatNumberLiteral(tk.Literal.(float64))
	}
	lexeme := tk.Lexeme
	if tk.Kind == token.EOF {
		lexeme = ""
	}
	fmt.Fprintf(w, "%s %s %s\n", tk.Kind, lexeme, literal)
}

// PrintTokens writes every token in toks via PrintToken, in order.
func PrintTokens(w io.Writer, toks []token.Token) {
	for _, tk := range toks {
		PrintToken(w, tk)
	}
}
