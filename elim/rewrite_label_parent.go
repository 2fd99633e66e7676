package elim

// algo31 rewrites case 3.1 (label before goto, label's block is an
// ancestor of the goto's block): climb the goto up one block at a time
// with moveUpABlock until it lands in the label's own block, then finish
// with algo11. Mirrors
// bastors/goto_elimination.py:algo_3_1__label_in_parent_block__before.
func algo31(pair *gotoLabelPair) {
	for !pair.sameBlock() {
		moveUpABlock(pair)
	}
	algo11(pair)
}

// algo32 rewrites case 3.2 (label after goto, label's block is an ancestor
// of the goto's block): same climb as algo31, finishing with algo12.
// Mirrors
// bastors/goto_elimination.py:algo_3_2__label_in_parent_block__after.
func algo32(pair *gotoLabelPair) {
	temp := pair.gotoTempVar()
	for !pair.sameBlock() {
		moveUpABlock(pair)
	}
	algo12(pair)
	reinitTempIfLabelInLoop(pair.root, pair.target, temp)
}
