/*
Package parser provides a lisp parser.

	expr   := '(' <expr>* ')' | <number> | <symbol>
	number := a maximal word accepted entirely by strconv.ParseFloat
	symbol := any other maximal word
*/
package parser

import (
	"errors"

	"github.com/szma/brewlis/lisp"
	"github.com/szma/brewlis/parser/rdparser"
	"github.com/szma/brewlis/parser/token"
)

// Parse parses every top level expression in src and returns them in source
// order.  The name identifies the source buffer in error messages.
func Parse(name string, src []byte) ([]*lisp.LVal, error) {
	s := token.NewScanner(name, src)
	p := rdparser.New(s)
	return p.ParseProgram()
}

// IsIncomplete returns true when err indicates that src ended before a form
// was closed.  A front end reading interactive input can buffer the text and
// retry with more lines appended.
func IsIncomplete(err error) bool {
	var lerr *lisp.ErrorVal
	if !errors.As(err, &lerr) {
		return false
	}
	return lerr.Condition == lisp.ErrUnmatchedSyntax
}
