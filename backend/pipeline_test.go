package backend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tinybasic-tools/degoto/elim"
	"github.com/tinybasic-tools/degoto/parser"
)

func compile(t *testing.T, src string) string {
	t.Helper()
	prog, err := parser.NewParser(src).Parse()
	require.NoError(t, err)
	require.NoError(t, elim.Eliminate(prog))
	out, err := Emit(prog)
	require.NoError(t, err)
	return out
}

func TestEmitSimplePrintAndEnd(t *testing.T) {
	out := compile(t, "10 PRINT \"HELLO\"\n20 END\n")
	require.Contains(t, out, "package main")
	require.Contains(t, out, `fmt.Println("HELLO")`)
	require.Contains(t, out, "os.Exit(0)")
}

func TestEmitBackwardGotoBecomesLoop(t *testing.T) {
	out := compile(t, "10 PRINT \"HI\"\n20 LET A = A + 1\n30 IF A < 5 THEN GOTO 10\n40 END\n")
	require.Contains(t, out, "for {")
	require.Contains(t, out, "break")
	require.NotContains(t, out, "GOTO")
}

func TestEmitForwardGotoBecomesIf(t *testing.T) {
	out := compile(t, "10 IF A = 1 THEN GOTO 30\n20 LET B = 2\n30 PRINT B\n40 END\n")
	require.Contains(t, out, "if ")
	require.Contains(t, out, "s.B = 2")
}

func TestEmitGosubBecomesMethodCall(t *testing.T) {
	out := compile(t, "10 GOSUB 100\n20 END\n100 PRINT \"HI\"\n110 RETURN\n")
	require.Contains(t, out, "s.f100()")
	require.Contains(t, out, "func (s *state) f100() {")
	require.Contains(t, out, "return")
}

func TestEmitMultipleBackwardLoops(t *testing.T) {
	out := compile(t, "10 PRINT \"A\"\n20 LET X = X + 1\n30 IF X < 3 THEN GOTO 10\n40 PRINT \"B\"\n50 LET Y = Y + 1\n60 IF Y < 3 THEN GOTO 40\n70 END\n")
	require.Equal(t, 2, strings.Count(out, "for {"))
}

func TestEmitInputReadsIntoFields(t *testing.T) {
	out := compile(t, "10 INPUT A, B\n20 PRINT A + B\n30 END\n")
	require.Contains(t, out, "fmt.Scan(&s.A, &s.B)")
}

// TestEmitOverlappingGotoLabelPairs is spec.md §8.3 scenario 5: the second
// goto's target sits back out past the guard the first goto's rewrite
// introduced, reaching case 3.1 (moveUpABlock). Regression test for a bug
// where the climbed goto path and a shifted label path were computed one
// level off, which either panicked or left a stray goto/panic call behind.
func TestEmitOverlappingGotoLabelPairs(t *testing.T) {
	src := "1 LET A=2\n" +
		"IF A = 0 THEN GOTO 7\n" +
		"3 LET C=A*2+B\n" +
		"4 LET A=A+1\n" +
		"IF B > 3 THEN GOTO 10\n" +
		"5 LET C=A+B\n" +
		"6 PRINT A, B, C\n" +
		"7 INPUT A\n" +
		"8 PRINT \"HELLO\"\n" +
		"10 INPUT B\n" +
		"11 END\n"
	out := compile(t, src)
	require.NotContains(t, out, "unresolved goto")
	require.Contains(t, out, "os.Exit(0)")
}
