package backend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tinybasic-tools/degoto/parser"
)

// Emit renders an eliminated Program (one with no remaining Goto nodes) as
// Go source text. Every Tiny BASIC variable becomes a field of a single
// state struct threaded through the program's contexts as method receivers;
// "main" becomes func (s *state) main(), and every other context becomes a
// subroutine method named by its GOSUB target label, called in place of
// Gosub statements.
func Emit(program *parser.Program) (string, error) {
	vars := collectVars(program)
	names := make([]string, 0, len(vars))
	for n := range vars {
		names = append(names, n)
	}
	sort.Strings(names)

	var out strings.Builder
	out.WriteString("package main\n\n")

	imports := []string{"fmt"}
	if programHasEnd(program) {
		imports = append(imports, "os")
	}
	out.WriteString("import (\n")
	for _, imp := range imports {
		fmt.Fprintf(&out, "\t%q\n", imp)
	}
	out.WriteString(")\n\n")

	out.WriteString("type state struct {\n")
	for _, n := range names {
		typ := "int"
		if vars[n] {
			typ = "bool"
		}
		fmt.Fprintf(&out, "\t%s %s\n", n, typ)
	}
	out.WriteString("}\n\n")

	out.WriteString("func main() {\n\ts := &state{}\n\ts.main()\n}\n\n")

	for _, ctx := range program.Order {
		fmt.Fprintf(&out, "func (s *state) %s() {\n", contextFuncName(ctx))
		e := &emitter{}
		e.emitStmts(program.Contexts[ctx], 1)
		out.WriteString(e.buf.String())
		out.WriteString("}\n\n")
	}

	return out.String(), nil
}

func contextFuncName(ctx string) string {
	if ctx == "main" {
		return "main"
	}
	return "f" + ctx
}

type emitter struct {
	buf strings.Builder
}

func (e *emitter) indent(depth int) { e.buf.WriteString(strings.Repeat("\t", depth)) }

func (e *emitter) emitStmts(stmts []parser.Statement, depth int) {
	for _, s := range stmts {
		e.emitStmt(s, depth)
	}
}

func (e *emitter) emitStmt(stmt parser.Statement, depth int) {
	e.indent(depth)
	switch st := stmt.(type) {
	case *parser.Let:
		fmt.Fprintf(&e.buf, "s.%s = %s\n", st.LValue.Name, exprToGo(st.RValue))

	case *parser.If:
		fmt.Fprintf(&e.buf, "if %s {\n", condsToGo(st.Conditions))
		e.emitStmts(st.Statements, depth+1)
		e.indent(depth)
		e.buf.WriteString("}\n")

	case *parser.Loop:
		if st.Conditions == nil {
			e.buf.WriteString("for {\n")
			e.emitStmts(st.Statements, depth+1)
			e.indent(depth)
			e.buf.WriteString("}\n")
			break
		}
		// Do-while: the span ran to reach this point, so the guard is
		// checked after the body, not before (spec.md §4.5).
		e.buf.WriteString("for {\n")
		e.emitStmts(st.Statements, depth+1)
		e.indent(depth + 1)
		fmt.Fprintf(&e.buf, "if !(%s) {\n", condsToGo(st.Conditions))
		e.indent(depth + 2)
		e.buf.WriteString("break\n")
		e.indent(depth + 1)
		e.buf.WriteString("}\n")
		e.indent(depth)
		e.buf.WriteString("}\n")

	case *parser.Gosub:
		fmt.Fprintf(&e.buf, "s.%s()\n", contextFuncName(fmt.Sprintf("%d", st.TargetLabel)))

	case *parser.Return:
		e.buf.WriteString("return\n")

	case *parser.Print:
		e.emitPrint(st)

	case *parser.Input:
		e.emitInput(st)

	case *parser.End:
		e.buf.WriteString("os.Exit(0)\n")

	case *parser.Break:
		e.buf.WriteString("break\n")

	case *parser.Goto:
		fmt.Fprintf(&e.buf, "panic(\"unresolved goto %d\")\n", st.TargetLabel)

	default:
		fmt.Fprintf(&e.buf, "// unhandled statement %T\n", stmt)
	}
}

func (e *emitter) emitPrint(st *parser.Print) {
	args := make([]string, len(st.Items))
	for i, item := range st.Items {
		switch it := item.(type) {
		case parser.StringItem:
			args[i] = fmt.Sprintf("%q", it.Value)
		case parser.ExprItem:
			args[i] = exprToGo(it.Value)
		}
	}
	fmt.Fprintf(&e.buf, "fmt.Println(%s)\n", strings.Join(args, ", "))
}

func (e *emitter) emitInput(st *parser.Input) {
	args := make([]string, len(st.Variables))
	for i, v := range st.Variables {
		args[i] = "&s." + v.Name
	}
	fmt.Fprintf(&e.buf, "fmt.Scan(%s)\n", strings.Join(args, ", "))
}

// collectVars walks every context and records each Tiny BASIC variable
// name, marking it bool when it's ever the target of a Let whose value is
// a BooleanExpr (the shape goto elimination's synthesized temps always
// take) or the name tested by a VariableCond/NotVariableCond, and int
// otherwise.
func collectVars(program *parser.Program) map[string]bool {
	vars := make(map[string]bool)
	for _, ctx := range program.Order {
		walkStmts(program.Contexts[ctx], vars)
	}
	return vars
}

func walkStmts(stmts []parser.Statement, vars map[string]bool) {
	for _, stmt := range stmts {
		switch st := stmt.(type) {
		case *parser.Let:
			if _, ok := vars[st.LValue.Name]; !ok {
				vars[st.LValue.Name] = false
			}
			if _, isBool := st.RValue.(*parser.BooleanExpr); isBool {
				vars[st.LValue.Name] = true
			}
			walkExpr(st.RValue, vars)
		case *parser.If:
			walkConds(st.Conditions, vars)
			walkStmts(st.Statements, vars)
		case *parser.Loop:
			walkConds(st.Conditions, vars)
			walkStmts(st.Statements, vars)
		case *parser.Print:
			for _, item := range st.Items {
				if ei, ok := item.(parser.ExprItem); ok {
					walkExpr(ei.Value, vars)
				}
			}
		case *parser.Input:
			for _, v := range st.Variables {
				if _, ok := vars[v.Name]; !ok {
					vars[v.Name] = false
				}
			}
		}
	}
}

func walkExpr(expr parser.Expr, vars map[string]bool) {
	switch e := expr.(type) {
	case *parser.VariableExpr:
		if _, ok := vars[e.Name]; !ok {
			vars[e.Name] = false
		}
	case *parser.ArithmeticExpr:
		walkExpr(e.Left, vars)
		walkExpr(e.Right, vars)
	case *parser.BooleanExpr:
		walkConds(e.Conditions, vars)
	case *parser.ParenExpr:
		walkExpr(e.Inner, vars)
	case *parser.NotExpr:
		walkExpr(e.Inner, vars)
	}
}

func walkConds(conds []parser.Condition, vars map[string]bool) {
	for _, c := range conds {
		switch cond := c.(type) {
		case parser.Relation:
			walkExpr(cond.Left, vars)
			walkExpr(cond.Right, vars)
		case parser.VariableCond:
			vars[cond.Name] = true
		case parser.NotVariableCond:
			vars[cond.Name] = true
		}
	}
}

func programHasEnd(program *parser.Program) bool {
	for _, ctx := range program.Order {
		if stmtsHaveEnd(program.Contexts[ctx]) {
			return true
		}
	}
	return false
}

func stmtsHaveEnd(stmts []parser.Statement) bool {
	for _, stmt := range stmts {
		switch st := stmt.(type) {
		case *parser.End:
			return true
		case *parser.If:
			if stmtsHaveEnd(st.Statements) {
				return true
			}
		case *parser.Loop:
			if stmtsHaveEnd(st.Statements) {
				return true
			}
		}
	}
	return false
}
