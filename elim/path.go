// Package elim implements the GOTO-elimination pass: an iterative,
// case-driven tree rewrite that turns a parser.Program containing
// arbitrary Goto nodes into an equivalent Program containing only
// sequencing, If, Loop and Break.
package elim

import "github.com/tinybasic-tools/degoto/parser"

// dropLast returns path with its final index removed, identifying the
// block (statement list) that path's last index lives in, one level up.
func dropLast(path []int) []int {
	if len(path) == 0 {
		return path
	}
	return path[:len(path)-1]
}

func pathEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func clonePath(p []int) []int {
	out := make([]int, len(p))
	copy(out, p)
	return out
}

// getBlock returns a pointer to the statement slice that path's last index
// selects into, descending through nested If/Loop bodies starting at root.
// Mirrors bastors/goto_elimination.py:get_block.
func getBlock(root *[]parser.Statement, path []int) *[]parser.Statement {
	current := root
	for i := 0; i < len(path)-1; i++ {
		idx := path[i]
		stmt := (*current)[idx]
		switch s := stmt.(type) {
		case *parser.If:
			current = &s.Statements
		case *parser.Loop:
			current = &s.Statements
		default:
			return nil
		}
	}
	return current
}

// insertStmt inserts stmt at index idx in *block, shifting later elements
// right.
func insertStmt(block *[]parser.Statement, idx int, stmt parser.Statement) {
	s := *block
	s = append(s, nil)
	copy(s[idx+1:], s[idx:len(s)-1])
	s[idx] = stmt
	*block = s
}

// deleteStmt removes the statement at index idx from *block.
func deleteStmt(block *[]parser.Statement, idx int) {
	deleteRange(block, idx, idx+1)
}

// deleteRange removes the half-open range [start,end) from *block.
func deleteRange(block *[]parser.Statement, start, end int) {
	s := *block
	s = append(s[:start:start], s[end:]...)
	*block = s
}

// replaceRange replaces the half-open range [start,end) of *block with repl.
func replaceRange(block *[]parser.Statement, start, end int, repl []parser.Statement) {
	s := *block
	tail := append([]parser.Statement{}, s[end:]...)
	out := append([]parser.Statement{}, s[:start]...)
	out = append(out, repl...)
	out = append(out, tail...)
	*block = out
}
