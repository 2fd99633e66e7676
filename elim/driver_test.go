package elim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tinybasic-tools/degoto/parser"
)

func hasGoto(stmts []parser.Statement) bool {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *parser.Goto:
			return true
		case *parser.If:
			if hasGoto(s.Statements) {
				return true
			}
		case *parser.Loop:
			if hasGoto(s.Statements) {
				return true
			}
		}
	}
	return false
}

func parseProgram(t *testing.T, src string) *parser.Program {
	t.Helper()
	p := parser.NewParser(src)
	prog, err := p.Parse()
	require.NoError(t, err)
	return prog
}

func TestEliminateBackwardLoop(t *testing.T) {
	src := "10 PRINT \"HI\"\n20 LET A = A + 1\n30 IF A < 5 THEN GOTO 10\n40 END\n"
	prog := parseProgram(t, src)
	require.NoError(t, Eliminate(prog))
	require.False(t, hasGoto(prog.Contexts["main"]))
}

func TestEliminateForwardSkip(t *testing.T) {
	src := "10 IF A = 1 THEN GOTO 30\n20 LET B = 2\n30 PRINT B\n40 END\n"
	prog := parseProgram(t, src)
	require.NoError(t, Eliminate(prog))
	require.False(t, hasGoto(prog.Contexts["main"]))
}

func TestEliminateGotoOverNestedBlock(t *testing.T) {
	src := "10 IF A = 1 THEN GOTO 30\n20 IF B = 1 THEN LET C = 1\n25 PRINT C\n30 LET D = 4\n40 END\n"
	prog := parseProgram(t, src)
	require.NoError(t, Eliminate(prog))
	require.False(t, hasGoto(prog.Contexts["main"]))
}

func TestEliminateGosubContext(t *testing.T) {
	src := "10 GOSUB 100\n20 END\n100 PRINT \"HI\"\n110 RETURN\n"
	prog := parseProgram(t, src)
	require.NoError(t, Eliminate(prog))
	for _, ctx := range prog.Order {
		require.False(t, hasGoto(prog.Contexts[ctx]), "context %s still has a goto", ctx)
	}
}

func TestEliminateIsIdempotentOnGotoFreeProgram(t *testing.T) {
	src := "10 LET A = 1\n20 PRINT A\n30 END\n"
	prog := parseProgram(t, src)
	before := len(prog.Contexts["main"])
	require.NoError(t, Eliminate(prog))
	require.Equal(t, before, len(prog.Contexts["main"]))
}

// TestEliminateOverlappingGotoLabelPairs is spec.md §8.3 scenario 5: the
// tail nested under algo11's guard for the first goto contains a second
// goto whose label sits back out in the top-level block, making it case 3.1
// once the first rewrite has run. Exercises moveUpABlock's climb.
func TestEliminateOverlappingGotoLabelPairs(t *testing.T) {
	src := "1 LET A=2\n" +
		"IF A = 0 THEN GOTO 7\n" +
		"3 LET C=A*2+B\n" +
		"4 LET A=A+1\n" +
		"IF B > 3 THEN GOTO 10\n" +
		"5 LET C=A+B\n" +
		"6 PRINT A, B, C\n" +
		"7 INPUT A\n" +
		"8 PRINT \"HELLO\"\n" +
		"10 INPUT B\n" +
		"11 END\n"
	prog := parseProgram(t, src)
	require.NoError(t, Eliminate(prog))
	require.False(t, hasGoto(prog.Contexts["main"]))
}

// TestEliminateClimbsOutOfNestedIf is spec.md §8.3 scenario 4: a goto three
// blocks deep targets a label in the outermost block (case 3.1). The
// parser can never produce this shape directly (chained IFs flatten into
// AND-linked conditions at one level), so the tree is hand-built.
func TestEliminateClimbsOutOfNestedIf(t *testing.T) {
	outerLabel := 20
	innerGoto := &parser.Goto{TargetLabel: outerLabel}
	innermostIf := &parser.If{
		Conditions: []parser.Condition{parser.Relation{Left: &parser.VariableExpr{Name: "C"}, Right: &parser.NumberExpr{Value: 1}, Op: "=", Link: parser.LinkInitial}},
		Statements: []parser.Statement{innerGoto},
	}
	middleIf := &parser.If{
		Conditions: []parser.Condition{parser.Relation{Left: &parser.VariableExpr{Name: "B"}, Right: &parser.NumberExpr{Value: 1}, Op: "=", Link: parser.LinkInitial}},
		Statements: []parser.Statement{innermostIf},
	}
	outerIf := &parser.If{
		Conditions: []parser.Condition{parser.Relation{Left: &parser.VariableExpr{Name: "A"}, Right: &parser.NumberExpr{Value: 1}, Op: "=", Link: parser.LinkInitial}},
		Statements: []parser.Statement{middleIf},
	}
	two := 20
	label := &parser.Print{Base: parser.Base{Label: &two}}
	prog := parser.NewProgram()
	prog.Contexts["main"] = []parser.Statement{outerIf, label, &parser.End{}}
	prog.Order = []string{"main"}

	require.NoError(t, Eliminate(prog))
	require.False(t, hasGoto(prog.Contexts["main"]))
}
