package lexer

import "fmt"

// LexError reports an unrecognized or malformed token.
type LexError struct {
	Msg  string
	Line int
	Col  int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("syntax error: %s [%d:%d]", e.Msg, e.Line, e.Col)
}
