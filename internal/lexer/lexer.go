// Package lexer turns stage-1 C source into tokens.
package lexer

import (
	"math"
	"unicode/utf8"
)

const (
	MaxLiteralLen = 16
	MaxIdentLen   = 32
)

type Option func(*Lexer)

// WrapOverflow makes integer literals fold modulo 2^32 instead of failing
// with ErrLiteralOverflow.
func WrapOverflow() Option { return func(l *Lexer) { l.wrap = true } }

// Filename is reported in errors.
func Filename(name string) Option { return func(l *Lexer) { l.filename = name } }

type Lexer struct {
	src  string
	i    int
	line int
	col  int

	wrap     bool
	filename string
	err      error
}

func New(src string, opts ...Option) *Lexer {
	l := &Lexer{}
	for _, o := range opts {
		o(l)
	}
	l.Reset(src)
	return l
}

// Reset re-initializes the lexer with new source, keeping its options.
func (l *Lexer) Reset(src string) {
	l.src = src
	l.i = 0
	l.line = 1
	l.col = 1
	l.err = nil
}

// Tokenize scans all of src. It returns either the complete token stream
// (without an EOF token) or the first error.
func Tokenize(src string, opts ...Option) ([]Token, error) {
	l := New(src, opts...)
	var toks []Token
	for {
		t, err := l.Next()
		if err != nil {
			return nil, err
		}
		if t.Type == EOF {
			return toks, nil
		}
		toks = append(toks, t)
	}
}

// Next returns the next token, or an EOF token once input is exhausted.
// After an error every call returns that same error.
func (l *Lexer) Next() (Token, error) {
	if l.err != nil {
		return Token{}, l.err
	}
	l.skipSpace()
	tok := Token{Offset: l.i, Line: l.line, Col: l.col}
	if l.i >= len(l.src) {
		tok.Type = EOF
		return tok, nil
	}
	// First match wins: punctuation, keywords, literals, identifiers.
	switch ch := l.src[l.i]; ch {
	case '{':
		tok.Type = LBRACE
	case '}':
		tok.Type = RBRACE
	case '(':
		tok.Type = LPAREN
	case ')':
		tok.Type = RPAREN
	case ';':
		tok.Type = SEMI
	default:
		if tt, n := l.keyword(); n > 0 {
			tok.Type = tt
			return l.emit(tok, n), nil
		}
		if isDigit(ch) {
			return l.number(tok)
		}
		if isAlnum(ch) {
			return l.ident(tok)
		}
		if ch >= utf8.RuneSelf {
			if _, size := utf8.DecodeRuneInString(l.src[l.i:]); size == 1 {
				return Token{}, l.fail(tok, ErrEncoding)
			}
		}
		return Token{}, l.fail(tok, ErrUnrecognizedInput)
	}
	return l.emit(tok, 1), nil
}

func (l *Lexer) skipSpace() {
	for l.i < len(l.src) && isSpace(l.src[l.i]) {
		if l.src[l.i] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.i++
	}
}

// emit consumes n bytes as tok's lexeme. Tokens never span a newline.
func (l *Lexer) emit(tok Token, n int) Token {
	tok.Lex = l.src[l.i : l.i+n]
	l.i += n
	l.col += n
	return tok
}

func (l *Lexer) fail(tok Token, kind error) error {
	l.err = &Error{
		Kind:      kind,
		Filename:  l.filename,
		Offset:    tok.Offset,
		Line:      tok.Line,
		Col:       tok.Col,
		Remaining: l.src[tok.Offset:],
	}
	return l.err
}

func (l *Lexer) run(pred func(byte) bool) int {
	j := l.i
	for j < len(l.src) && pred(l.src[j]) {
		j++
	}
	return j - l.i
}

// keyword matches a keyword only when it is not followed by another
// alphanumeric, so "intx" is left for the identifier rule.
func (l *Lexer) keyword() (TokenType, int) {
	n := l.run(isAlnum)
	if tt, ok := keywords[l.src[l.i:l.i+n]]; ok {
		return tt, n
	}
	return 0, 0
}

func (l *Lexer) number(tok Token) (Token, error) {
	n := l.run(isDigit)
	if n > MaxLiteralLen {
		return Token{}, l.fail(tok, ErrLiteralTooLong)
	}
	var v uint32
	overflow := false
	for k := l.i; k < l.i+n; k++ {
		d := uint32(l.src[k] - '0')
		if v > (math.MaxUint32-d)/10 {
			overflow = true
		}
		v = v*10 + d
	}
	if overflow && !l.wrap {
		return Token{}, l.fail(tok, ErrLiteralOverflow)
	}
	tok.Type, tok.Value = INT, v
	return l.emit(tok, n), nil
}

func (l *Lexer) ident(tok Token) (Token, error) {
	n := l.run(isAlnum)
	if n > MaxIdentLen {
		return Token{}, l.fail(tok, ErrIdentifierTooLong)
	}
	tok.Type = IDENT
	return l.emit(tok, n), nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
