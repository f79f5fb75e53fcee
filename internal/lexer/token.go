package lexer

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	// Special
	EOF TokenType = iota

	// Identifiers + literals
	IDENT
	INT

	// Keywords
	KW_INT
	KW_RETURN

	// Symbols
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }
	SEMI   // ;
)

var typeNames = [...]string{
	EOF:       "EOF",
	IDENT:     "Identifier",
	INT:       "IntegerLiteral",
	KW_INT:    "Keyword(Int)",
	KW_RETURN: "Keyword(Return)",
	LPAREN:    "OpenParen",
	RPAREN:    "CloseParen",
	LBRACE:    "OpenBrace",
	RBRACE:    "CloseBrace",
	SEMI:      "Semicolon",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

func (t TokenType) IsKeyword() bool { return t == KW_INT || t == KW_RETURN }

func (t TokenType) IsPunct() bool { return t >= LPAREN && t <= SEMI }

// Keyword is the payload of a keyword token.
type Keyword int

const (
	KeywordInt Keyword = iota
	KeywordReturn
)

func (k Keyword) String() string {
	switch k {
	case KeywordInt:
		return "Int"
	case KeywordReturn:
		return "Return"
	}
	return "Keyword(" + strconv.Itoa(int(k)) + ")"
}

// keywords is matched whole-token only; see (*Lexer).keyword.
var keywords = map[string]TokenType{
	"int":    KW_INT,
	"return": KW_RETURN,
}

// Token is one lexeme. Lex is the exact source span, so
// src[Offset:Offset+len(Lex)] == Lex. Value is set for INT only.
type Token struct {
	Type   TokenType
	Lex    string
	Value  uint32
	Offset int
	Line   int
	Col    int
}

func (t Token) Is(op TokenType) bool { return t.Type == op }

// Keyword reports the keyword kind of a KW_* token.
func (t Token) Keyword() (Keyword, bool) {
	switch t.Type {
	case KW_INT:
		return KeywordInt, true
	case KW_RETURN:
		return KeywordReturn, true
	}
	return 0, false
}

// Same compares kind and payload, ignoring position.
func (t Token) Same(o Token) bool {
	return t.Type == o.Type && t.Lex == o.Lex && t.Value == o.Value
}

func (t Token) String() string {
	switch t.Type {
	case IDENT:
		return fmt.Sprintf("Identifier(%q)", t.Lex)
	case INT:
		return fmt.Sprintf("IntegerLiteral(%d)", t.Value)
	}
	return t.Type.String()
}
