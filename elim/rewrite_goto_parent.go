package elim

import "github.com/tinybasic-tools/degoto/parser"

// algo21 rewrites case 2.1 (goto before label, label nested inside a child
// block of the goto's own block). It repeatedly sinks the goto one level
// down: the child block on the path to the label gets its guard ORed with
// the goto's temp so it's entered when the goto would have fired, and a
// guarded copy of the goto becomes the first statement of that child's
// body. Once the goto and label share a block, algo11 finishes the job.
// Mirrors
// bastors/goto_elimination.py:algo_2_1__goto_in_parent_block__before.
func algo21(pair *gotoLabelPair) {
	temp := pair.gotoTempVar()

	for {
		lenGoto := len(pair.gotoPath)
		if lenGoto == len(pair.labelPath) && pathEqual(dropLast(pair.gotoPath), dropLast(pair.labelPath)) {
			break
		}

		block := getBlock(pair.root, pair.gotoPath)
		gotoIdx := pair.gotoPath[len(pair.gotoPath)-1]
		childIdx := pair.labelPath[lenGoto-1]

		between := append([]parser.Statement{}, (*block)[gotoIdx+1:childIdx]...)
		sunk := &parser.If{
			Conditions: []parser.Condition{parser.VariableCond{Name: temp, Link: parser.LinkInitial}},
			Statements: []parser.Statement{&parser.Goto{TargetLabel: pair.target}},
		}

		switch child := (*block)[childIdx].(type) {
		case *parser.If:
			child.Conditions = append(append([]parser.Condition{}, child.Conditions...), parser.VariableCond{Name: temp, Link: parser.LinkOr})
			child.Statements = append([]parser.Statement{sunk}, child.Statements...)
		case *parser.Loop:
			if child.Conditions != nil {
				child.Conditions = append(append([]parser.Condition{}, child.Conditions...), parser.VariableCond{Name: temp, Link: parser.LinkOr})
			}
			child.Statements = append([]parser.Statement{sunk}, child.Statements...)
		}

		var newChildIdx int
		if len(between) > 0 {
			inverted := parser.InvertConditions([]parser.Condition{parser.VariableCond{Name: temp, Link: parser.LinkInitial}})
			wrapped := &parser.If{Conditions: inverted, Statements: between}
			replaceRange(block, gotoIdx, childIdx, []parser.Statement{wrapped})
			newChildIdx = gotoIdx + 1
		} else {
			deleteRange(block, gotoIdx, childIdx)
			newChildIdx = gotoIdx
		}

		pair.gotoPath = append(clonePath(dropLast(pair.gotoPath)), newChildIdx, 0)
		newLabelPath := clonePath(pair.labelPath)
		newLabelPath[lenGoto-1] = newChildIdx
		newLabelPath[lenGoto]++
		pair.labelPath = newLabelPath
	}

	algo11(pair)
	reinitTempIfLabelInLoop(pair.root, pair.target, temp)
}

// algo22 rewrites case 2.2 (goto after label, label nested inside a child
// block of the goto's own block). The child block holding the label, plus
// everything up to the goto, becomes the body of a Loop keyed on the goto's
// temp, with the (now do-while) goto moved to the loop's first statement;
// from there it's structurally a 2.1 situation, so algo21 finishes it.
// Mirrors
// bastors/goto_elimination.py:algo_2_2__goto_in_parent_block__after.
func algo22(pair *gotoLabelPair) {
	pair.gotoTempVar()

	lenGoto := len(pair.gotoPath)
	block := getBlock(pair.root, pair.gotoPath)
	gotoIdx := pair.gotoPath[len(pair.gotoPath)-1]
	childIdx := pair.labelPath[lenGoto-1]

	span := append([]parser.Statement{}, (*block)[childIdx:gotoIdx]...)
	gotoStmt := (*block)[gotoIdx].(*parser.If)
	childLabel := (*block)[childIdx].Lbl()

	newLoop := &parser.Loop{
		Base:       parser.Base{Label: childLabel},
		Conditions: gotoStmt.Conditions,
		Statements: append([]parser.Statement{gotoStmt}, span...),
	}
	replaceRange(block, childIdx, gotoIdx+1, []parser.Statement{newLoop})

	// The child now sits at index 1 of the new loop's body, right after the
	// moved goto, so the label path gains that extra level.
	pair.gotoPath = append(clonePath(dropLast(pair.gotoPath)), childIdx, 0)
	newLabelPath := append(clonePath(pair.labelPath[:lenGoto]), 1)
	newLabelPath = append(newLabelPath, pair.labelPath[lenGoto:]...)
	pair.labelPath = newLabelPath

	algo21(pair)
}
