package lexer

import (
	"io"

	plex "github.com/alecthomas/participle/v2/lexer"
)

// participle token types, one per token class.
const (
	symIdent plex.TokenType = iota + 1
	symInt
	symKeyword
	symPunct
)

// Definition lets a participle parser consume this lexer's tokens.
// Grammars refer to the classes Ident, Int, Keyword and Punct, or match
// lexemes directly ('int', '{').
type Definition struct {
	opts []Option
}

var _ plex.Definition = (*Definition)(nil)

func NewDefinition(opts ...Option) *Definition {
	return &Definition{opts: opts}
}

func (d *Definition) Symbols() map[string]plex.TokenType {
	return map[string]plex.TokenType{
		"EOF":     plex.EOF,
		"Ident":   symIdent,
		"Int":     symInt,
		"Keyword": symKeyword,
		"Punct":   symPunct,
	}
}

func (d *Definition) Lex(filename string, r io.Reader) (plex.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	opts := append(append([]Option(nil), d.opts...), Filename(filename))
	return &participleLexer{lx: New(string(data), opts...), filename: filename}, nil
}

type participleLexer struct {
	lx       *Lexer
	filename string
}

// Next returns scan errors unchanged so callers can still use errors.Is.
func (p *participleLexer) Next() (plex.Token, error) {
	t, err := p.lx.Next()
	if err != nil {
		return plex.Token{}, err
	}
	pos := plex.Position{Filename: p.filename, Offset: t.Offset, Line: t.Line, Column: t.Col}
	if t.Type == EOF {
		return plex.EOFToken(pos), nil
	}
	return plex.Token{Type: symbolType(t.Type), Value: t.Lex, Pos: pos}, nil
}

func symbolType(tt TokenType) plex.TokenType {
	switch {
	case tt == IDENT:
		return symIdent
	case tt == INT:
		return symInt
	case tt.IsKeyword():
		return symKeyword
	}
	return symPunct
}
