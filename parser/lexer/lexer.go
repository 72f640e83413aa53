package lexer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/szma/brewlis/parser/token"
)

const miscWordRunes = "0123456789" + miscWordSymbols
const miscWordSymbols = "._+-*/=<>!&~%?$^"

// Lexer produces a lazy stream of tokens from a scanner.  After the input is
// exhausted NextToken returns EOF tokens indefinitely.
type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune

	readErr error
}

// New initializes and returns a Lexer that reads runes from s.
func New(s *token.Scanner) *Lexer {
	return &Lexer{
		scanner: s,
	}
}

// NextToken scans and returns the next token in the source text.
func (lex *Lexer) NextToken() *token.Token {
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	lex.readErr = lex.skipWhitespace()
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	if lex.readChar() != nil {
		return lex.emitError(lex.readErr, true)
	}
	switch lex.ch {
	case '(':
		return lex.charToken(token.PAREN_L)
	case ')':
		return lex.charToken(token.PAREN_R)
	case ';':
		for {
			c, ok := lex.scanner.Peek()
			if !ok || c == '\n' {
				break
			}
			if err := lex.readChar(); err != nil {
				return lex.emitError(err, false)
			}
		}
		return lex.scanner.EmitToken(token.COMMENT)
	default:
		if isWord(lex.ch) {
			if err := lex.readWord(); err != nil {
				return lex.emit(token.ERROR, err.Error())
			}
			return lex.emitWord()
		}
		lex.readErr = fmt.Errorf("unexpected text starting with %q", lex.ch)
		return lex.emit(token.ERROR, lex.readErr.Error())
	}
}

// emitWord classifies a maximal word run.  Any run that parses completely as
// a floating point number is a number literal and anything else is a symbol.
// Words like "inf" that ParseFloat accepts but that don't look numeric stay
// symbols so that they can be bound in the environment.
func (lex *Lexer) emitWord() *token.Token {
	text := lex.scanner.Text()
	if !numberStart(rune(text[0])) {
		return lex.scanner.EmitToken(token.SYMBOL)
	}
	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return lex.scanner.EmitToken(token.NUMBER)
	}
	return lex.scanner.EmitToken(token.SYMBOL)
}

func (lex *Lexer) emit(typ token.Type, text string) *token.Token {
	tok := &token.Token{
		Type:   typ,
		Text:   text,
		Source: lex.scanner.LocStart(),
	}
	lex.scanner.Ignore()
	return tok
}

func (lex *Lexer) emitError(err error, expectEOF bool) *token.Token {
	if err == io.EOF {
		if expectEOF {
			return lex.emit(token.EOF, "")
		}
		return lex.emit(token.ERROR, "unexpected EOF")
	}
	return lex.emit(token.ERROR, err.Error())
}

func (lex *Lexer) charToken(typ token.Type) *token.Token {
	return lex.scanner.EmitToken(typ)
}

func (lex *Lexer) readWord() error {
	for isWord(lex.peekRune()) {
		err := lex.readChar()
		if err != nil {
			return err
		}
	}
	return nil
}

func (lex *Lexer) skipWhitespace() error {
	for unicode.IsSpace(lex.peekRune()) {
		err := lex.readChar()
		if err != nil {
			return err
		}
	}
	lex.scanner.Ignore()
	return nil
}

func (lex *Lexer) peekRune() rune {
	r, _ := lex.scanner.Peek()
	return r
}

func (lex *Lexer) readChar() error {
	lex.readErr = lex.scanner.ScanRune()
	if lex.readErr != nil {
		return lex.readErr
	}
	lex.ch = lex.scanner.Rune()
	return nil
}

func isWord(c rune) bool {
	return unicode.IsLetter(c) || strings.ContainsRune(miscWordRunes, c)
}

func numberStart(c rune) bool {
	return isDigit(c) || c == '+' || c == '-' || c == '.'
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
