package elim

import "github.com/tinybasic-tools/degoto/parser"

// Eliminate rewrites every context of program in place, replacing each Goto
// with structured If/Loop/Break control flow. It repeatedly locates the
// first remaining goto/label pair in program order, classifies it into one
// of eight cases (spec.md §4.4), and dispatches to the matching rewrite,
// restarting the search after every rewrite since paths are invalidated by
// it. Mirrors bastors/goto_elimination.py:eliminate_goto.
func Eliminate(program *parser.Program) error {
	temps := &tempCounter{}

	for _, ctx := range program.Order {
		stmts := program.Contexts[ctx]
		root := &stmts

		for {
			pair, err := findPair(root, temps)
			if err != nil {
				return err
			}
			if pair == nil {
				break
			}

			switch pair.classify() {
			case "1.1":
				algo11(pair)
			case "1.2":
				algo12(pair)
			case "2.1":
				algo21(pair)
			case "2.2":
				algo22(pair)
			case "3.1":
				algo31(pair)
			case "3.2":
				algo32(pair)
			case "4.1":
				algo41(pair)
			case "4.2":
				algo42(pair)
			default:
				return &EliminationError{Msg: "unsupported goto case"}
			}
		}

		program.Contexts[ctx] = *root
	}

	return nil
}
