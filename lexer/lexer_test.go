package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(t *testing.T, src string) []TokenType {
	t.Helper()
	lex := NewLexer(src)
	toks, err := lex.ConsumeTokens()
	require.NoError(t, err)
	types := make([]TokenType, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}

func TestLexerBasicLine(t *testing.T) {
	types := tokenTypes(t, `10 LET A=1`)
	assert.Equal(t, []TokenType{NUMBER, STATEMENT, VARIABLE, RELATION, NUMBER}, types)
}

func TestLexerTwoCharRelops(t *testing.T) {
	for _, src := range []string{"A<=1", "A>=1", "A<>1"} {
		lex := NewLexer(src)
		_, err := lex.NextToken() // VARIABLE
		require.NoError(t, err)
		tok, err := lex.NextToken()
		require.NoError(t, err)
		assert.Equal(t, RELATION, tok.Type)
		assert.Len(t, tok.Literal, 2)
	}
}

func TestLexerStringLiteral(t *testing.T) {
	lex := NewLexer(`PRINT "HELLO"`)
	toks, err := lex.ConsumeTokens()
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, STRING, toks[1].Type)
	assert.Equal(t, "HELLO", toks[1].Literal)
}

func TestLexerRemComment(t *testing.T) {
	types := tokenTypes(t, "10 REM this is ignored\n20 END")
	assert.Equal(t, []TokenType{NUMBER, COMMENT, NUMBER, STATEMENT}, types)
}

func TestLexerUnterminatedString(t *testing.T) {
	lex := NewLexer(`PRINT "HELLO`)
	_, err := lex.NextToken()
	require.NoError(t, err)
	_, err = lex.NextToken()
	require.Error(t, err)
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
}

func TestLexerInvalidIdentifier(t *testing.T) {
	lex := NewLexer("FOOBAR")
	_, err := lex.NextToken()
	require.Error(t, err)
}

func TestLexerLineColumnTracking(t *testing.T) {
	lex := NewLexer("10\nLET A=1")
	tok, err := lex.NextToken()
	require.NoError(t, err)
	assert.Equal(t, 1, tok.Line)
	tok, err = lex.NextToken()
	require.NoError(t, err)
	assert.Equal(t, 2, tok.Line)
}
