package elim

import "github.com/tinybasic-tools/degoto/parser"

// moveUpABlock pushes pair's goto out of its current block and into the
// parent block, right after the container (If/Loop) that currently holds
// it. Used by cases 3.x (label in an ancestor block) and 4.x (disjoint
// blocks) to climb toward a common block with the label. Mirrors
// bastors/goto_elimination.py:move_up_a_block.
func moveUpABlock(pair *gotoLabelPair) {
	temp := pair.gotoTempVar()

	block := getBlock(pair.root, pair.gotoPath)
	gotoIdx := pair.gotoPath[len(pair.gotoPath)-1]
	parentPath := dropLast(pair.gotoPath)
	parentBlock := getBlock(pair.root, parentPath)
	containerIdx := parentPath[len(parentPath)-1]

	if pair.gotoInLoop() {
		(*block)[gotoIdx] = &parser.If{
			Conditions: []parser.Condition{parser.VariableCond{Name: temp, Link: parser.LinkInitial}},
			Statements: []parser.Statement{&parser.Break{}},
		}
	} else {
		after := append([]parser.Statement{}, (*block)[gotoIdx+1:]...)
		if len(after) > 0 {
			inverted := parser.InvertConditions([]parser.Condition{parser.VariableCond{Name: temp, Link: parser.LinkInitial}})
			wrapped := &parser.If{Conditions: inverted, Statements: after}
			replaceRange(block, gotoIdx, len(*block), []parser.Statement{wrapped})
		} else {
			deleteStmt(block, gotoIdx)
		}
	}

	sunk := &parser.If{
		Conditions: []parser.Condition{parser.VariableCond{Name: temp, Link: parser.LinkInitial}},
		Statements: []parser.Statement{&parser.Goto{TargetLabel: pair.target}},
	}
	insertStmt(parentBlock, containerIdx+1, sunk)

	// The sunk goto lands in parentBlock (grandParentPath's block) at
	// containerIdx+1, one level shallower than the old gotoPath.
	grandParentPath := dropLast(parentPath)
	pair.gotoPath = append(clonePath(grandParentPath), containerIdx+1)

	// A label in parentBlock at or past the insertion point, whether a
	// direct sibling of the container or nested inside a later sibling,
	// shifts right by one.
	idx := len(parentPath) - 1
	if len(pair.labelPath) >= len(parentPath) && pathEqual(pair.labelPath[:idx], grandParentPath) {
		if pair.labelPath[idx] >= containerIdx+1 {
			pair.labelPath[idx]++
		}
	}
}

// reinitTempIfLabelInLoop inserts `LET temp = FALSE` immediately before the
// label so a later loop iteration doesn't see a stale guard from a previous
// jump (spec.md §4.5). Re-locates the label fresh rather than trusting a
// pair's possibly-stale labelPath, since the caller has just finished a
// rewrite that may have moved it.
func reinitTempIfLabelInLoop(root *[]parser.Statement, target int, temp string) {
	labelPath, ok := findLabel(target, *root)
	if !ok {
		return
	}
	if !pathInLoop(*root, labelPath) {
		return
	}
	block := getBlock(root, labelPath)
	idx := labelPath[len(labelPath)-1]
	reinit := &parser.Let{
		LValue: &parser.VariableExpr{Name: temp},
		RValue: &parser.BooleanExpr{Conditions: []parser.Condition{parser.TrueFalseCond{Value: false, Link: parser.LinkInitial}}},
	}
	insertStmt(block, idx, reinit)
}
