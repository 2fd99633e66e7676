package elim

import "github.com/tinybasic-tools/degoto/parser"

// classify assigns a GotoLabelPair to one of the 8 rewrite cases described
// in spec.md §4.4. Mirrors bastors/goto_elimination.py:GotoLabelPair.classify,
// which cites https://dzone.com/articles/goto-elimination-algorithm as its
// original source.
func (p *gotoLabelPair) classify() string {
	lenGoto := len(p.gotoPath)
	lenLabel := len(p.labelPath)
	before := p.before()

	// Case 1.1/1.2: same length, same enclosing block.
	if lenGoto == lenLabel {
		if lenGoto == 1 || pathEqual(dropLast(p.gotoPath), dropLast(p.labelPath)) {
			if before {
				return "1.1"
			}
			return "1.2"
		}
	}

	// Case 2.1/2.2: label strictly deeper, goto's block contains the chain
	// down to the label.
	if lenLabel-lenGoto >= 1 {
		labelSub := p.labelPath[:lenGoto]
		if pathEqual(dropLast(labelSub), dropLast(p.gotoPath)) {
			if before {
				return "2.1"
			}
			return "2.2"
		}
	}

	// Case 3.1/3.2: label strictly shallower.
	if lenGoto-lenLabel >= 1 {
		gotoSub := p.gotoPath[:lenLabel]
		if pathEqual(dropLast(gotoSub), dropLast(p.labelPath)) {
			if before {
				return "3.1"
			}
			return "3.2"
		}
	}

	// Case 4.1/4.2: disjoint blocks.
	if before {
		return "4.1"
	}
	return "4.2"
}

// ClassifyFirst returns the classification of the first goto/label pair
// found in stmts, or "" if there is none. Exposed for introspection (the
// interactive .trace command) and tests, mirroring
// bastors/goto_elimination.py:classify_goto.
func ClassifyFirst(stmts []parser.Statement) string {
	root := stmts
	pair, err := findPair(&root, &tempCounter{})
	if err != nil || pair == nil {
		return ""
	}
	return pair.classify()
}
