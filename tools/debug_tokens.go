package main

import (
	"fmt"
	"os"

	lx "github.com/tinyrange/ccfront/internal/lexer"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_tokens <file>")
		os.Exit(2)
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		os.Exit(1)
	}
	l := lx.New(string(data), lx.Filename(os.Args[1]))
	for {
		t, err := l.Next()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("%-16s %q at %d:%d (offset %d)\n", t.Type, t.Lex, t.Line, t.Col, t.Offset)
		if t.Type == lx.EOF {
			break
		}
	}
}
