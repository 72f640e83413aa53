package rdparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szma/brewlis/lisp"
	"github.com/szma/brewlis/parser/token"
)

func parseProgram(t *testing.T, src string) ([]*lisp.LVal, error) {
	t.Helper()
	p := New(token.NewScanner("test", []byte(src)))
	return p.ParseProgram()
}

func TestParseAtoms(t *testing.T) {
	exprs, err := parseProgram(t, "1 2.5 -3 foo <=")
	require.NoError(t, err)
	require.Len(t, exprs, 5)
	assert.Equal(t, lisp.LNumber, exprs[0].Type)
	assert.Equal(t, 1.0, exprs[0].Num)
	assert.Equal(t, 2.5, exprs[1].Num)
	assert.Equal(t, -3.0, exprs[2].Num)
	assert.Equal(t, lisp.LSymbol, exprs[3].Type)
	assert.Equal(t, "foo", exprs[3].Str)
	assert.Equal(t, "<=", exprs[4].Str)
}

func TestParseConsExpression(t *testing.T) {
	exprs, err := parseProgram(t, "(+ 1 (neg 2))")
	require.NoError(t, err)
	require.Len(t, exprs, 1)
	expr := exprs[0]
	require.Equal(t, lisp.LSExpr, expr.Type)
	require.Len(t, expr.Cells, 3)
	assert.Equal(t, "+", expr.Cells[0].Str)
	assert.Equal(t, 1.0, expr.Cells[1].Num)
	inner := expr.Cells[2]
	require.Equal(t, lisp.LSExpr, inner.Type)
	require.Len(t, inner.Cells, 2)
	assert.Equal(t, "neg", inner.Cells[0].Str)
}

func TestParseEmptyList(t *testing.T) {
	exprs, err := parseProgram(t, "()")
	require.NoError(t, err)
	require.Len(t, exprs, 1)
	assert.Equal(t, lisp.LSExpr, exprs[0].Type)
	assert.Len(t, exprs[0].Cells, 0)
}

func TestParseMultipleTopLevelForms(t *testing.T) {
	exprs, err := parseProgram(t, "(define x 1) (+ x 1)")
	require.NoError(t, err)
	assert.Len(t, exprs, 2)
}

func TestParseSkipsComments(t *testing.T) {
	exprs, err := parseProgram(t, "; leading\n(+ 1 ; inline\n 2)")
	require.NoError(t, err)
	require.Len(t, exprs, 1)
	assert.Len(t, exprs[0].Cells, 3)
}

func TestParseCommentBeforeCloseParen(t *testing.T) {
	exprs, err := parseProgram(t, "(+ 1 2 ; note\n)")
	require.NoError(t, err)
	require.Len(t, exprs, 1)
	assert.Len(t, exprs[0].Cells, 3)

	exprs, err = parseProgram(t, "(foo ; a\n ; b\n)")
	require.NoError(t, err)
	require.Len(t, exprs, 1)
	assert.Len(t, exprs[0].Cells, 1)
}

func TestParseUnbalancedParens(t *testing.T) {
	_, err := parseProgram(t, "(+ 1 2")
	require.Error(t, err)
	lerr, ok := err.(*lisp.ErrorVal)
	require.True(t, ok)
	assert.Equal(t, lisp.ErrUnmatchedSyntax, lerr.Condition)
}

func TestParseUnexpectedToken(t *testing.T) {
	_, err := parseProgram(t, ")")
	require.Error(t, err)
	lerr, ok := err.(*lisp.ErrorVal)
	require.True(t, ok)
	assert.Equal(t, lisp.ErrUnexpectedToken, lerr.Condition)
}

func TestParseScanError(t *testing.T) {
	_, err := parseProgram(t, "(+ 1 #)")
	require.Error(t, err)
	lerr, ok := err.(*lisp.ErrorVal)
	require.True(t, ok)
	assert.Equal(t, lisp.ErrScan, lerr.Condition)
}

func TestParseSourceLocations(t *testing.T) {
	exprs, err := parseProgram(t, "1\n(foo)")
	require.NoError(t, err)
	require.Len(t, exprs, 2)
	require.NotNil(t, exprs[0].Source)
	assert.Equal(t, 1, exprs[0].Source.Line)
	require.NotNil(t, exprs[1].Source)
	assert.Equal(t, 2, exprs[1].Source.Line)
}
