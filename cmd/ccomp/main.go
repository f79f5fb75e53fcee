package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tinyrange/ccfront/internal/lexer"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ccomp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	outPath := fs.String("o", "", "write the token stream to `file` instead of stdout")
	wrap := fs.Bool("wrap", false, "wrap integer literals modulo 2^32 instead of rejecting overflow")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [-o out.tok] [-wrap] <file.c>...\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	var out strings.Builder
	for _, srcPath := range fs.Args() {
		data, err := os.ReadFile(srcPath)
		if err != nil {
			fmt.Fprintf(stderr, "read error: %v\n", err)
			return 1
		}
		opts := []lexer.Option{lexer.Filename(srcPath)}
		if *wrap {
			opts = append(opts, lexer.WrapOverflow())
		}
		toks, err := lexer.Tokenize(string(data), opts...)
		if err != nil {
			fmt.Fprintf(stderr, "lex error: %v\n", err)
			return 1
		}
		if fs.NArg() > 1 {
			fmt.Fprintf(&out, "# %s\n", srcPath)
		}
		for _, t := range toks {
			fmt.Fprintf(&out, "%d:%d\t%v\n", t.Line, t.Col, t)
		}
	}

	if *outPath == "" {
		fmt.Fprint(stdout, out.String())
		return 0
	}
	if err := os.WriteFile(*outPath, []byte(out.String()), 0644); err != nil {
		fmt.Fprintf(stderr, "write error: %v\n", err)
		return 1
	}
	return 0
}
