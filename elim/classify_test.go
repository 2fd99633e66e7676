package elim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tinybasic-tools/degoto/parser"
)

func label(n int) *int { return &n }

func TestClassifySameBlockBefore(t *testing.T) {
	stmts := []parser.Statement{
		&parser.If{
			Conditions: []parser.Condition{parser.TrueFalseCond{Value: true}},
			Statements: []parser.Statement{&parser.Goto{TargetLabel: 20}},
		},
		&parser.Let{Base: parser.Base{Label: label(10)}, LValue: &parser.VariableExpr{Name: "A"}, RValue: &parser.NumberExpr{Value: 1}},
		&parser.Print{Base: parser.Base{Label: label(20)}, Items: []parser.PrintItem{parser.ExprItem{Value: &parser.VariableExpr{Name: "A"}}}},
	}
	require.Equal(t, "1.1", ClassifyFirst(stmts))
}

func TestClassifySameBlockAfter(t *testing.T) {
	stmts := []parser.Statement{
		&parser.Let{Base: parser.Base{Label: label(10)}, LValue: &parser.VariableExpr{Name: "A"}, RValue: &parser.NumberExpr{Value: 1}},
		&parser.If{
			Conditions: []parser.Condition{parser.TrueFalseCond{Value: true}},
			Statements: []parser.Statement{&parser.Goto{TargetLabel: 10}},
		},
	}
	require.Equal(t, "1.2", ClassifyFirst(stmts))
}

func TestClassifyGotoInParentBlock(t *testing.T) {
	// 10 IF TRUE THEN GOTO 30       (goto's block is the top level)
	// 20 IF B THEN 30 PRINT "HI"    (30 is nested inside this If's body)
	stmts := []parser.Statement{
		&parser.If{
			Base:       parser.Base{Label: label(10)},
			Conditions: []parser.Condition{parser.TrueFalseCond{Value: true}},
			Statements: []parser.Statement{&parser.Goto{TargetLabel: 30}},
		},
		&parser.If{
			Base:       parser.Base{Label: label(20)},
			Conditions: []parser.Condition{parser.VariableCond{Name: "B"}},
			Statements: []parser.Statement{
				&parser.Print{Base: parser.Base{Label: label(30)}, Items: []parser.PrintItem{parser.StringItem{Value: "HI"}}},
			},
		},
	}
	require.Equal(t, "2.1", ClassifyFirst(stmts))
}

func TestClassifyNoGotoReturnsEmpty(t *testing.T) {
	stmts := []parser.Statement{
		&parser.Let{LValue: &parser.VariableExpr{Name: "A"}, RValue: &parser.NumberExpr{Value: 1}},
	}
	require.Equal(t, "", ClassifyFirst(stmts))
}
