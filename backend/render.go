// Package backend turns an eliminated parser.Program (no remaining Goto
// nodes) into Go source text, and can dump a Program's statement tree for
// diagnostics when elimination fails.
package backend

import (
	"fmt"

	"github.com/tinybasic-tools/degoto/parser"
)

var relOpToGo = map[string]string{
	"=":  "==",
	"<>": "!=",
	"<":  "<",
	"<=": "<=",
	">":  ">",
	">=": ">=",
}

// exprToGo renders expr as a Go expression referencing fields of s.
func exprToGo(expr parser.Expr) string {
	switch e := expr.(type) {
	case *parser.NumberExpr:
		return fmt.Sprintf("%d", e.Value)
	case *parser.VariableExpr:
		return "s." + e.Name
	case *parser.ArithmeticExpr:
		return fmt.Sprintf("(%s %s %s)", exprToGo(e.Left), e.Op, exprToGo(e.Right))
	case *parser.BooleanExpr:
		return condsToGo(e.Conditions)
	case *parser.ParenExpr:
		return fmt.Sprintf("(%s)", exprToGo(e.Inner))
	case *parser.NotExpr:
		return fmt.Sprintf("!(%s)", exprToGo(e.Inner))
	default:
		return fmt.Sprintf("/* unknown expr %T */", expr)
	}
}

// condsToGo joins a Condition list into a single Go boolean expression,
// folding strictly left to right in Link order rather than relying on Go's
// && /|| precedence, which would silently reorder a ... OR b ... AND c.
func condsToGo(conds []parser.Condition) string {
	if len(conds) == 0 {
		return "true"
	}
	acc := condToGo(conds[0])
	for _, c := range conds[1:] {
		op := " && "
		if c.GetLink() == parser.LinkOr {
			op = " || "
		}
		acc = fmt.Sprintf("(%s%s%s)", acc, op, condToGo(c))
	}
	return acc
}

func condToGo(cond parser.Condition) string {
	switch c := cond.(type) {
	case parser.Relation:
		op, ok := relOpToGo[c.Op]
		if !ok {
			op = c.Op
		}
		return fmt.Sprintf("%s %s %s", exprToGo(c.Left), op, exprToGo(c.Right))
	case parser.VariableCond:
		return "s." + c.Name
	case parser.NotVariableCond:
		return "!s." + c.Name
	case parser.TrueFalseCond:
		if c.Value {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("/* unknown condition %T */", cond)
	}
}
