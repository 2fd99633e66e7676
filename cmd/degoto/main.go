// Command degoto translates a Tiny BASIC program into Go source, eliminating
// every GOTO along the way. Mirrors go-mix/main/main.go's dispatch style
// (mode selection, colored diagnostics via fatih/color).
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	flag "github.com/spf13/pflag"

	"github.com/tinybasic-tools/degoto/backend"
	"github.com/tinybasic-tools/degoto/elim"
	"github.com/tinybasic-tools/degoto/parser"
	"github.com/tinybasic-tools/degoto/repl"
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "repl" {
		repl.New().Start(os.Stdin, os.Stdout)
		return
	}

	output := flag.StringP("output", "o", "", "write generated Go source to this file instead of stdout")
	dumpAST := flag.Bool("ast", false, "print the eliminated statement tree instead of generating Go source")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		redColor.Fprintln(os.Stderr, "usage: degoto [-o out] [-ast] <input.bas>")
		os.Exit(1)
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", args[0], err)
		os.Exit(1)
	}

	program, err := parser.NewParser(string(source)).Parse()
	if err != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR] %v\n", err)
		os.Exit(1)
	}

	if err := elim.Eliminate(program); err != nil {
		redColor.Fprintf(os.Stderr, "[ELIMINATION ERROR] %v\n", err)
		redColor.Fprintln(os.Stderr, backend.DumpProgram(program))
		os.Exit(1)
	}

	if *dumpAST {
		fmt.Print(backend.DumpProgram(program))
		return
	}

	code, err := backend.Emit(program)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[EMIT ERROR] %v\n", err)
		os.Exit(1)
	}

	if *output == "" {
		fmt.Print(code)
		return
	}
	if err := os.WriteFile(*output, []byte(code), 0o644); err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not write %q: %v\n", *output, err)
		os.Exit(1)
	}
	cyanColor.Fprintf(os.Stderr, "wrote %s\n", *output)
}
