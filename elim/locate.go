package elim

import (
	"strconv"

	"github.com/tinybasic-tools/degoto/parser"
)

// findGoto scans stmts in pre-order for the first Goto, converting it to a
// single-statement conditional in place if it isn't already alone in its
// enclosing list (spec.md §4.2/§4.3). Mirrors
// bastors/goto_elimination.py:find_goto; in particular, a Goto that is
// already the sole statement of its list is left unconverted and its index
// is deliberately omitted from path — the caller's own index then names the
// wrapping If/Loop, which already satisfies "the goto" (spec.md §4.5
// terminology).
func findGoto(stmts []parser.Statement) (path []int, target int, found bool) {
	for index, stmt := range stmts {
		switch s := stmt.(type) {
		case *parser.Goto:
			if len(stmts) != 1 {
				stmts[index] = convertToConditional(s)
				return []int{index}, s.TargetLabel, true
			}
			return []int{}, s.TargetLabel, true
		case *parser.Loop:
			if p, t, ok := findGoto(s.Statements); ok {
				return append([]int{index}, p...), t, true
			}
		case *parser.If:
			if p, t, ok := findGoto(s.Statements); ok {
				return append([]int{index}, p...), t, true
			}
		}
	}
	return nil, 0, false
}

// convertToConditional wraps a bare Goto into If(TrueFalseCond(true), [Goto])
// so every rewrite algorithm can assume the goto is single-statement
// conditional (spec.md §4.3 (1)).
func convertToConditional(g *parser.Goto) parser.Statement {
	return &parser.If{
		Base:       parser.Base{Label: g.Label},
		Conditions: []parser.Condition{parser.TrueFalseCond{Value: true, Link: parser.LinkInitial}},
		Statements: []parser.Statement{g},
	}
}

// findLabel scans stmts in pre-order for the statement whose label equals
// target. Mirrors bastors/goto_elimination.py:find_label.
func findLabel(target int, stmts []parser.Statement) (path []int, found bool) {
	for index, stmt := range stmts {
		if lbl := stmt.Lbl(); lbl != nil && *lbl == target {
			return []int{index}, true
		}
		switch s := stmt.(type) {
		case *parser.Loop:
			if p, ok := findLabel(target, s.Statements); ok {
				return append([]int{index}, p...), true
			}
		case *parser.If:
			if p, ok := findLabel(target, s.Statements); ok {
				return append([]int{index}, p...), true
			}
		}
	}
	return nil, false
}

// findPair locates the first goto/label pair in a context's statement list,
// or returns (nil, nil) if the context has no remaining Goto. Mirrors
// bastors/goto_elimination.py:find_pair.
func findPair(root *[]parser.Statement, counter *tempCounter) (*gotoLabelPair, error) {
	gotoPath, target, ok := findGoto(*root)
	if !ok {
		return nil, nil
	}
	labelPath, found := findLabel(target, *root)
	if !found {
		return nil, &EliminationError{Msg: "could not find label: " + strconv.Itoa(target)}
	}
	return &gotoLabelPair{root: root, gotoPath: gotoPath, labelPath: labelPath, target: target, temps: counter}, nil
}
