/*
File    : golox/token/token.go
Derived : github.com/akashmaji946/go-mix (lexer/token.go)
*/

// Package token defines the lexical token vocabulary shared by the lexer
// and parser. Kinds are grouped by category (structural, operator,
// literal, keyword) the same way go-mix's TokenType constants are.
package token

import "fmt"

// Kind identifies the category of a Token. It is a string type, like the
// teacher's TokenType, so values print legibly in error messages and tests
// without a separate String() method.
type Kind string

const (
	// Structural
	LeftParen  Kind = "LEFT_PAREN"
	RightParen Kind = "RIGHT_PAREN"
	LeftBrace  Kind = "LEFT_BRACE"
	RightBrace Kind = "RIGHT_BRACE"
	Comma      Kind = "COMMA"
	Dot        Kind = "DOT"
	Semicolon  Kind = "SEMICOLON"

	// Arithmetic / comparison operators
	Plus  Kind = "PLUS"
	Minus Kind = "MINUS"
	Star  Kind = "STAR"
	Slash Kind = "SLASH"

	Bang         Kind = "BANG"
	Equal        Kind = "EQUAL"
	EqualEqual   Kind = "EQUAL_EQUAL"
	BangEqual    Kind = "BANG_EQUAL"
	Less         Kind = "LESS"
	LessEqual    Kind = "LESS_EQUAL"
	Greater      Kind = "GREATER"
	GreaterEqual Kind = "GREATER_EQUAL"

	// Literals
	String     Kind = "STRING"
	Number     Kind = "NUMBER"
	Identifier Kind = "IDENTIFIER"

	// Keywords
	And    Kind = "AND"
	Class  Kind = "CLASS"
	Else   Kind = "ELSE"
	False  Kind = "FALSE"
	For    Kind = "FOR"
	Fun    Kind = "FUN"
	If     Kind = "IF"
	Nil    Kind = "NIL"
	Or     Kind = "OR"
	Print  Kind = "PRINT"
	Return Kind = "RETURN"
	Super  Kind = "SUPER"
	This   Kind = "THIS"
	True   Kind = "TRUE"
	Var    Kind = "VAR"
	While  Kind = "WHILE"

	// Terminal
	EOF Kind = "EOF"
)

// Keywords maps reserved lexemes to their Kind, consulted by the lexer
// exactly as go-mix's KEYWORDS_MAP is: when an identifier-shaped lexeme is
// scanned, this table decides whether it is a keyword or a plain
// Identifier.
var Keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// Token is a single lexical unit: its Kind, the source Lexeme it spans,
// a parsed Literal payload for STRING/NUMBER tokens, and the 1-based
// source Line it started on. Unlike go-mix's Token, there is no Column —
// diagnostics here are line-granularity only, so a Column field would sit
// unused on every token.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal interface{} // string for String tokens, float64 for Number tokens, nil otherwise
	Line    int
}

// New builds a Token without a literal payload (structural/operator/
// keyword tokens).
func New(kind Kind, lexeme string, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line}
}

// NewLiteral builds a Token carrying a parsed literal value (STRING or
// NUMBER tokens).
func NewLiteral(kind Kind, lexeme string, literal interface{}, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Literal: literal, Line: line}
}

// String renders the token in debugging form "KIND 'lexeme'", used by
// tests and internal error messages (not the tokenize command's printed
// form — see lexer.PrintToken for that).
func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
}
