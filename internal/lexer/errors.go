package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrUnrecognizedInput = errors.New("unrecognized input")
	ErrLiteralTooLong    = errors.New("integer literal too long")
	ErrIdentifierTooLong = errors.New("identifier too long")
	ErrLiteralOverflow   = errors.New("integer literal overflows 32 bits")
	ErrEncoding          = errors.New("invalid UTF-8 encoding")
)

// Error is the single terminal error of a scan. It unwraps to one of the
// Err* sentinels, so callers match it with errors.Is.
type Error struct {
	Kind     error
	Filename string
	Offset   int // byte offset of the offending token start
	Line     int
	Col      int

	// Remaining is the unconsumed input starting at Offset.
	Remaining string
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	switch e.Kind {
	case ErrLiteralTooLong:
		msg = fmt.Sprintf("%s (max %d digits)", msg, MaxLiteralLen)
	case ErrIdentifierTooLong:
		msg = fmt.Sprintf("%s (max %d characters)", msg, MaxIdentLen)
	}
	if e.Filename != "" {
		return fmt.Sprintf("%s:%d:%d: %s near %q", e.Filename, e.Line, e.Col, msg, snippet(e.Remaining))
	}
	return fmt.Sprintf("%d:%d: %s near %q", e.Line, e.Col, msg, snippet(e.Remaining))
}

func (e *Error) Unwrap() error { return e.Kind }

func snippet(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' || s[i] == '\r' {
			s = s[:i]
			break
		}
	}
	if len(s) > 40 {
		s = s[:37] + "..."
	}
	return s
}
