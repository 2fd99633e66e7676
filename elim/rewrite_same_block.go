package elim

import "github.com/tinybasic-tools/degoto/parser"

// algo11 rewrites case 1.1 (goto before its label, same enclosing block):
// the statements between the goto and the label only run when the goto
// would NOT have fired, so they're wrapped in If(invert(conditions), between).
// If there's nothing between them, the goto is simply dead and dropped.
// Mirrors
// bastors/goto_elimination.py:algo_1_1_same_level_same_block__before.
func algo11(pair *gotoLabelPair) {
	block := getBlock(pair.root, pair.gotoPath)
	gotoIdx := pair.gotoPath[len(pair.gotoPath)-1]
	labelIdx := pair.labelPath[len(pair.labelPath)-1]
	gotoStmt := (*block)[gotoIdx].(*parser.If)

	between := append([]parser.Statement{}, (*block)[gotoIdx+1:labelIdx]...)
	if len(between) == 0 {
		deleteStmt(block, gotoIdx)
		return
	}

	inverted := parser.InvertConditions(gotoStmt.Conditions)
	newIf := &parser.If{
		Base:       parser.Base{Label: gotoStmt.Label},
		Conditions: inverted,
		Statements: between,
	}
	replaceRange(block, gotoIdx, labelIdx, []parser.Statement{newIf})
}

// algo12 rewrites case 1.2 (goto after its label, same enclosing block): the
// span from the label up to (not including) the goto becomes the body of a
// Loop that repeats while the goto's conditions hold — a structured
// "continue from the top" in place of the backward jump. Mirrors
// bastors/goto_elimination.py:algo_1_2_same_level_same_block__after.
func algo12(pair *gotoLabelPair) {
	block := getBlock(pair.root, pair.gotoPath)
	gotoIdx := pair.gotoPath[len(pair.gotoPath)-1]
	labelIdx := pair.labelPath[len(pair.labelPath)-1]
	gotoStmt := (*block)[gotoIdx].(*parser.If)

	span := append([]parser.Statement{}, (*block)[labelIdx:gotoIdx]...)
	labelStmt := (*block)[labelIdx]
	newLoop := &parser.Loop{
		Base:       parser.Base{Label: labelStmt.Lbl()},
		Conditions: gotoStmt.Conditions,
		Statements: span,
	}
	replaceRange(block, labelIdx, gotoIdx+1, []parser.Statement{newLoop})
}
