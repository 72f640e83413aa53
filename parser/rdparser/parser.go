// Package rdparser implements a recursive descent parser producing lisp
// expression trees.
package rdparser

import (
	"strconv"

	"github.com/szma/brewlis/lisp"
	"github.com/szma/brewlis/parser/lexer"
	"github.com/szma/brewlis/parser/token"
)

// Parser is a lisp parser.
type Parser struct {
	lex  *lexer.Lexer
	curr *token.Token
	peek *token.Token
}

// New initializes and returns a new Parser that reads tokens from scanner.
func New(scanner *token.Scanner) *Parser {
	p := &Parser{
		lex: lexer.New(scanner),
	}
	p.initTokens()
	return p
}

func (p *Parser) initTokens() {
	// Setup the peek token so the parser is in the proper state when the
	// first parse function is called.
	p.ReadToken()
}

// ParseProgram parses all top level expressions in the source text and
// returns them in source order.
func (p *Parser) ParseProgram() ([]*lisp.LVal, error) {
	var exprs []*lisp.LVal

	for {
		for p.expect(token.COMMENT) {
		}
		if p.expect(token.EOF) {
			break
		}
		expr := p.ParseExpression()
		if expr.Type == lisp.LError {
			return nil, lisp.GoError(expr)
		}
		exprs = append(exprs, expr)
	}

	return exprs, nil
}

// ParseExpression parses a single expression.  Parse errors are returned as
// error LVals.
func (p *Parser) ParseExpression() *lisp.LVal {
	for p.expect(token.COMMENT) {
	}
	switch p.PeekType() {
	case token.NUMBER:
		return p.ParseLiteralNumber()
	case token.SYMBOL:
		return p.ParseSymbol()
	case token.PAREN_L:
		return p.ParseConsExpression()
	case token.ERROR, token.INVALID:
		p.ReadToken()
		return p.errorf(lisp.ErrScan, "%s", p.Token().Text)
	default:
		p.ReadToken()
		return p.errorf(lisp.ErrUnexpectedToken, "%s unexpected %s", p.Token().Source, p.Token().Type)
	}
}

func (p *Parser) ParseLiteralNumber() *lisp.LVal {
	if !p.expect(token.NUMBER) {
		return p.errorf(lisp.ErrParse, "invalid number literal: %v", p.PeekType())
	}
	text := p.Token().Text
	x, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return p.errorf(lisp.ErrParse, "invalid number literal: %v", text)
	}
	return p.Number(x)
}

func (p *Parser) ParseSymbol() *lisp.LVal {
	if !p.expect(token.SYMBOL) {
		return p.errorf(lisp.ErrParse, "invalid symbol: %v", p.PeekType())
	}
	return p.Symbol(p.Token().Text)
}

func (p *Parser) ParseConsExpression() *lisp.LVal {
	if !p.expect(token.PAREN_L) {
		return p.errorf(lisp.ErrParse, "invalid expression: %v", p.PeekType())
	}
	open := p.Token()
	expr := p.tokenLVal(lisp.SExpr(nil))
	for {
		for p.expect(token.COMMENT) {
		}
		if p.expect(token.EOF) {
			return p.errorf(lisp.ErrUnmatchedSyntax, "unmatched %s", open.Text)
		}
		if p.expect(token.PAREN_R) {
			break
		}
		x := p.ParseExpression()
		if x.Type == lisp.LError {
			return x
		}
		expr.Cells = append(expr.Cells, x)
	}
	return expr
}

// ReadToken advances the parser one token.
func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

// Token returns the current token.
func (p *Parser) Token() *token.Token {
	return p.curr
}

// Peek returns the next token without advancing.
func (p *Parser) Peek() *token.Token {
	return p.peek
}

// PeekType returns the type of the next token without advancing.
func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

func (p *Parser) Symbol(sym string) *lisp.LVal {
	return p.tokenLVal(lisp.Symbol(sym))
}

func (p *Parser) Number(x float64) *lisp.LVal {
	return p.tokenLVal(lisp.Number(x))
}

func (p *Parser) tokenLVal(v *lisp.LVal) *lisp.LVal {
	v.Source = p.Token().Source
	return v
}

// expect advances past the next token and returns true when its type is one
// of typ.  With no arguments expect reports whether any token remains.
func (p *Parser) expect(typ ...token.Type) bool {
	peekType := p.peek.Type
	if len(typ) == 0 {
		return peekType != token.EOF
	}
	for _, typ := range typ {
		if typ == peekType {
			p.ReadToken()
			return true
		}
	}
	return false
}

func (p *Parser) errorf(condition string, format string, v ...interface{}) *lisp.LVal {
	err := lisp.ErrorConditionf(condition, format, v...)
	err.Source = p.Token().Source
	return err
}
