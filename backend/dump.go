package backend

import (
	"fmt"
	"strings"

	"github.com/tinybasic-tools/degoto/parser"
)

// DumpProgram renders a Program's statement tree as an indented, labeled
// listing for diagnostics — surfaced when elimination fails so the
// offending context can be inspected. Mirrors bastors/debug.py's Print
// visitor (label column, then two-space indent per nesting level).
func DumpProgram(program *parser.Program) string {
	var b strings.Builder
	for _, ctx := range program.Order {
		fmt.Fprintf(&b, "\n%s:\n", ctx)
		dumpStmts(&b, program.Contexts[ctx], 1)
	}
	return b.String()
}

func dumpStmts(b *strings.Builder, stmts []parser.Statement, depth int) {
	for _, stmt := range stmts {
		dumpStmt(b, stmt, depth)
	}
}

func dumpStmt(b *strings.Builder, stmt parser.Statement, depth int) {
	label := "     "
	if l := stmt.Lbl(); l != nil {
		label = fmt.Sprintf("%-5d", *l)
	}
	fmt.Fprintf(b, "%s%s%s\n", label, strings.Repeat("  ", depth), describeStmt(stmt))

	switch st := stmt.(type) {
	case *parser.If:
		dumpStmts(b, st.Statements, depth+1)
	case *parser.Loop:
		dumpStmts(b, st.Statements, depth+1)
	}
}

func describeStmt(stmt parser.Statement) string {
	switch st := stmt.(type) {
	case *parser.Let:
		return fmt.Sprintf("LET %s = %s", st.LValue.Name, describeExpr(st.RValue))
	case *parser.If:
		return fmt.Sprintf("IF %s", describeConds(st.Conditions))
	case *parser.Loop:
		if st.Conditions == nil {
			return "LOOP"
		}
		return fmt.Sprintf("LOOP WHILE %s", describeConds(st.Conditions))
	case *parser.Goto:
		return fmt.Sprintf("GOTO %d", st.TargetLabel)
	case *parser.Gosub:
		return fmt.Sprintf("GOSUB %d", st.TargetLabel)
	case *parser.Return:
		return "RETURN"
	case *parser.Print:
		return "PRINT"
	case *parser.Input:
		return "INPUT"
	case *parser.End:
		return "END"
	case *parser.Break:
		return "BREAK"
	default:
		return fmt.Sprintf("%T", stmt)
	}
}

func describeExpr(expr parser.Expr) string {
	switch e := expr.(type) {
	case *parser.NumberExpr:
		return fmt.Sprintf("%d", e.Value)
	case *parser.VariableExpr:
		return e.Name
	case *parser.ArithmeticExpr:
		return fmt.Sprintf("%s %s %s", describeExpr(e.Left), e.Op, describeExpr(e.Right))
	case *parser.BooleanExpr:
		return describeConds(e.Conditions)
	case *parser.ParenExpr:
		return fmt.Sprintf("(%s)", describeExpr(e.Inner))
	case *parser.NotExpr:
		return fmt.Sprintf("NOT %s", describeExpr(e.Inner))
	default:
		return fmt.Sprintf("%T", expr)
	}
}

func describeConds(conds []parser.Condition) string {
	var b strings.Builder
	for i, c := range conds {
		if i > 0 {
			switch c.GetLink() {
			case parser.LinkAnd:
				b.WriteString(" AND ")
			case parser.LinkOr:
				b.WriteString(" OR ")
			}
		}
		switch cond := c.(type) {
		case parser.Relation:
			fmt.Fprintf(&b, "%s %s %s", describeExpr(cond.Left), cond.Op, describeExpr(cond.Right))
		case parser.VariableCond:
			b.WriteString(cond.Name)
		case parser.NotVariableCond:
			fmt.Fprintf(&b, "NOT %s", cond.Name)
		case parser.TrueFalseCond:
			fmt.Fprintf(&b, "%t", cond.Value)
		}
	}
	return b.String()
}
