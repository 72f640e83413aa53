package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szma/brewlis/lisp"
)

func TestParse(t *testing.T) {
	exprs, err := Parse("test", []byte("(+ 1 2) 3"))
	require.NoError(t, err)
	require.Len(t, exprs, 2)
	assert.Equal(t, lisp.LSExpr, exprs[0].Type)
	assert.Equal(t, lisp.LNumber, exprs[1].Type)
}

func TestParseEmptySource(t *testing.T) {
	exprs, err := Parse("test", nil)
	require.NoError(t, err)
	assert.Len(t, exprs, 0)
}

func TestIsIncomplete(t *testing.T) {
	_, err := Parse("test", []byte("(define f"))
	require.Error(t, err)
	assert.True(t, IsIncomplete(err))

	_, err = Parse("test", []byte(")"))
	require.Error(t, err)
	assert.False(t, IsIncomplete(err))

	assert.False(t, IsIncomplete(nil))
}

func TestIncompleteInputCompletesWithMoreText(t *testing.T) {
	buf := []byte("(define f\n")
	_, err := Parse("test", buf)
	require.True(t, IsIncomplete(err))

	buf = append(buf, []byte("42)")...)
	exprs, err := Parse("test", buf)
	require.NoError(t, err)
	require.Len(t, exprs, 1)
	assert.Len(t, exprs[0].Cells, 3)
}
