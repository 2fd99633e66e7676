package elim

// algo4Common climbs the goto up one block at a time with moveUpABlock
// until it shares an ancestor chain with the label (classification becomes
// "2.1" or "2.2"), then hands off to the matching case-2 algorithm. Shared
// by algo41 and algo42, which classify() dispatches to identically once
// the climb starts — only their entry classification differs. Mirrors
// bastors/goto_elimination.py:algo_4_1__label_in_disjunct__before and
// algo_4_2__label_in_disjunct__after.
func algo4Common(pair *gotoLabelPair) {
	pair.gotoTempVar()
	for {
		switch pair.classify() {
		case "2.1":
			algo21(pair)
			return
		case "2.2":
			algo22(pair)
			return
		}
		moveUpABlock(pair)
	}
}

func algo41(pair *gotoLabelPair) { algo4Common(pair) }
func algo42(pair *gotoLabelPair) { algo4Common(pair) }
