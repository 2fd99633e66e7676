// Package repl implements an interactive shell over the degoto pipeline:
// lines accumulate into a program buffer until a command asks for a
// translation, a trace, or a listing. Mirrors go-mix/repl/repl.go's
// structure (readline-driven loop, fatih/color banners and diagnostics).
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/tinybasic-tools/degoto/backend"
	"github.com/tinybasic-tools/degoto/elim"
	"github.com/tinybasic-tools/degoto/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `
  _____             _____ ____ _____ ___
 |  __ \  ___  __ _|  ___/ ___|_   _/ _ \
 | |  | |/ _ \/ _  | |  _| |  _ | || | | |
 | |__| |  __/ (_| | |_| | |_| || || |_| |
 |_____/ \___|\__, |_____\____|_| \___/
              |___/
`

const separator = "----------------------------------------------------------------"

// Repl is an interactive shell: input lines accumulate into a Tiny BASIC
// program buffer, and dot-commands act on that buffer.
type Repl struct {
	Prompt string
	lines  []string
}

// New returns a Repl ready to Start.
func New() *Repl {
	return &Repl{Prompt: "degoto >>> "}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", separator)
	greenColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", separator)
	cyanColor.Fprintln(w, "Enter Tiny BASIC lines, one at a time.")
	cyanColor.Fprintln(w, ".run    translate the program accumulated so far")
	cyanColor.Fprintln(w, ".show   print the accumulated program")
	cyanColor.Fprintln(w, ".trace  classify the next goto/label pair without rewriting it")
	cyanColor.Fprintln(w, ".reset  clear the accumulated program")
	cyanColor.Fprintln(w, ".exit   quit")
	blueColor.Fprintf(w, "%s\n", separator)
}

// Start runs the read-eval-print loop until .exit or EOF.
func (r *Repl) Start(in io.Reader, out io.Writer) {
	r.printBanner(out)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(in),
		Stdout: out,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(out, "Good bye!")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if r.dispatch(line, out) {
			return
		}
	}
}

// dispatch handles one input line, returning true if the REPL should exit.
func (r *Repl) dispatch(line string, out io.Writer) bool {
	switch line {
	case ".exit":
		fmt.Fprintln(out, "Good bye!")
		return true
	case ".reset":
		r.lines = nil
		cyanColor.Fprintln(out, "program cleared")
		return false
	case ".show":
		cyanColor.Fprint(out, r.source())
		return false
	case ".run":
		r.run(out)
		return false
	case ".trace":
		r.trace(out)
		return false
	}

	r.lines = append(r.lines, line)
	return false
}

func (r *Repl) source() string { return strings.Join(r.lines, "\n") + "\n" }

func (r *Repl) run(out io.Writer) {
	program, err := parser.NewParser(r.source()).Parse()
	if err != nil {
		redColor.Fprintf(out, "[PARSE ERROR] %v\n", err)
		return
	}
	if err := elim.Eliminate(program); err != nil {
		redColor.Fprintf(out, "[ELIMINATION ERROR] %v\n", err)
		redColor.Fprint(out, backend.DumpProgram(program))
		return
	}
	code, err := backend.Emit(program)
	if err != nil {
		redColor.Fprintf(out, "[EMIT ERROR] %v\n", err)
		return
	}
	yellowColor.Fprint(out, code)
}

func (r *Repl) trace(out io.Writer) {
	program, err := parser.NewParser(r.source()).Parse()
	if err != nil {
		redColor.Fprintf(out, "[PARSE ERROR] %v\n", err)
		return
	}
	for _, ctx := range program.Order {
		class := elim.ClassifyFirst(program.Contexts[ctx])
		if class == "" {
			continue
		}
		cyanColor.Fprintf(out, "%s: next goto/label pair classifies as case %s\n", ctx, class)
		return
	}
	cyanColor.Fprintln(out, "no remaining goto/label pair")
}
