package elim

import (
	"strconv"

	"github.com/tinybasic-tools/degoto/parser"
)

// gotoLabelPair is a Goto and its target label's location within a single
// context, plus enough state to carry out the rewrite (spec.md §3.6).
// Mirrors bastors/goto_elimination.py:GotoLabelPair.
type gotoLabelPair struct {
	root      *[]parser.Statement
	gotoPath  []int
	labelPath []int
	target    int
	temps     *tempCounter
}

// before reports whether the goto occurs textually before its label,
// comparing paths index by index until they diverge.
func (p *gotoLabelPair) before() bool {
	for i, gi := range p.gotoPath {
		if i >= len(p.labelPath) {
			return true
		}
		li := p.labelPath[i]
		if gi < li {
			return true
		}
		if gi > li {
			return false
		}
	}
	return false
}

// pathInLoop reports whether the statement list one level above the last
// index of path is a Loop's body.
func pathInLoop(stmts []parser.Statement, path []int) bool {
	if len(path) <= 1 {
		return false
	}
	for i, idx := range path {
		if idx < 0 || idx >= len(stmts) {
			return false
		}
		stmt := stmts[idx]
		if i == len(path)-2 {
			_, isLoop := stmt.(*parser.Loop)
			return isLoop
		}
		switch s := stmt.(type) {
		case *parser.Loop:
			return pathInLoop(s.Statements, path[1:])
		case *parser.If:
			return pathInLoop(s.Statements, path[1:])
		default:
			return false
		}
	}
	return false
}

func (p *gotoLabelPair) gotoInLoop() bool  { return pathInLoop(*p.root, p.gotoPath) }
func (p *gotoLabelPair) labelInLoop() bool { return pathInLoop(*p.root, p.labelPath) }

// sameBlock reports whether the goto and label currently live in the same
// enclosing statement list.
func (p *gotoLabelPair) sameBlock() bool {
	return len(p.gotoPath) == len(p.labelPath) && pathEqual(dropLast(p.gotoPath), dropLast(p.labelPath))
}

// gotoTempVar ensures the If wrapping the goto has a single condition that
// is a bare variable reference, synthesizing `LET tN = BooleanExpr(conds)`
// and rewriting the If's condition to VariableCond(tN) if needed. Returns
// the variable name now guarding the goto. Mirrors
// bastors/goto_elimination.py:GotoLabelPair.goto_temp_var.
func (p *gotoLabelPair) gotoTempVar() string {
	block := getBlock(p.root, p.gotoPath)
	gotoIdx := p.gotoPath[len(p.gotoPath)-1]
	wrapping := (*block)[gotoIdx].(*parser.If)
	conds := wrapping.Conditions

	if len(conds) == 1 {
		if vc, ok := conds[0].(parser.VariableCond); ok {
			return vc.Name
		}
	}

	tempName := p.temps.next()
	tempVar := &parser.Let{
		LValue: &parser.VariableExpr{Name: tempName},
		RValue: &parser.BooleanExpr{Conditions: conds},
	}
	insertStmt(block, gotoIdx, tempVar)

	p.gotoPath[len(p.gotoPath)-1]++
	// A label in the same block at or past the insertion point (directly,
	// or nested inside a later statement of that block) shifts right by one.
	idx := len(p.gotoPath) - 1
	if len(p.labelPath) > idx && pathEqual(p.labelPath[:idx], p.gotoPath[:idx]) && p.labelPath[idx] >= gotoIdx {
		p.labelPath[idx]++
	}

	newGotoIdx := p.gotoPath[len(p.gotoPath)-1]
	(*block)[newGotoIdx] = &parser.If{
		Base:       parser.Base{Label: wrapping.Label},
		Conditions: []parser.Condition{parser.VariableCond{Name: tempName, Link: parser.LinkInitial}},
		Statements: wrapping.Statements,
	}
	return tempName
}

// tempCounter generates globally-fresh `t1, t2, ...` names for one
// Eliminate call, reset to zero on entry (spec.md §5).
type tempCounter struct{ n int }

func (c *tempCounter) next() string {
	c.n++
	return "t" + strconv.Itoa(c.n)
}
