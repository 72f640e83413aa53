package token

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerTokens(t *testing.T) {
	s := NewScanner("test", []byte("(ab\ncd)"))

	require.NoError(t, s.ScanRune())
	assert.Equal(t, '(', s.Rune())
	tok := s.EmitToken(PAREN_L)
	assert.Equal(t, PAREN_L, tok.Type)
	assert.Equal(t, "(", tok.Text)
	assert.Equal(t, 0, tok.Source.Pos)
	assert.Equal(t, 1, tok.Source.Line)

	require.NoError(t, s.ScanRune())
	require.NoError(t, s.ScanRune())
	tok = s.EmitToken(SYMBOL)
	assert.Equal(t, "ab", tok.Text)
	assert.Equal(t, 1, tok.Source.Pos)
	assert.Equal(t, 1, tok.Source.Line)

	// consume the newline without emitting it
	require.NoError(t, s.ScanRune())
	s.Ignore()

	require.NoError(t, s.ScanRune())
	require.NoError(t, s.ScanRune())
	tok = s.EmitToken(SYMBOL)
	assert.Equal(t, "cd", tok.Text)
	assert.Equal(t, 2, tok.Source.Line)

	require.NoError(t, s.ScanRune())
	tok = s.EmitToken(PAREN_R)
	assert.Equal(t, ")", tok.Text)

	assert.Equal(t, io.EOF, s.ScanRune())
}

func TestScannerPeek(t *testing.T) {
	s := NewScanner("test", []byte("xy"))

	c, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 'x', c)
	// peeking does not advance
	c, ok = s.Peek()
	require.True(t, ok)
	assert.Equal(t, 'x', c)

	require.NoError(t, s.ScanRune())
	c, ok = s.Peek()
	require.True(t, ok)
	assert.Equal(t, 'y', c)

	require.NoError(t, s.ScanRune())
	_, ok = s.Peek()
	assert.False(t, ok)
}

func TestScannerInvalidUTF8(t *testing.T) {
	s := NewScanner("test", []byte{'a', 0xff})
	require.NoError(t, s.ScanRune())
	_, ok := s.Peek()
	assert.False(t, ok)
	err := s.ScanRune()
	require.Error(t, err)
	assert.NotEqual(t, io.EOF, err)
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "f[3]", (&Location{File: "f", Pos: 3}).String())
	assert.Equal(t, "f:2", (&Location{File: "f", Pos: 3, Line: 2}).String())
	assert.Equal(t, "f:2:1", (&Location{File: "f", Pos: 3, Line: 2, Col: 1}).String())
}
