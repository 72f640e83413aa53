package lisp

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/szma/brewlis/parser/token"
)

// LValType is the type of an LVal
type LValType uint

// Possible LValType values
const (
	LInvalid LValType = iota
	LNumber
	LSymbol
	LSExpr
	LFun
	LNil
	LError

	numLValTypes
)

var lvalTypeStrings = [numLValTypes]string{
	LInvalid: "INVALID",
	LNumber:  "number",
	LSymbol:  "symbol",
	LSExpr:   "sexpr",
	LFun:     "function",
	LNil:     "nil",
	LError:   "error",
}

func (t LValType) String() string {
	if t >= numLValTypes {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// LFunType distinguishes ordinary functions, whose arguments are evaluated
// before a call, from special operators, which receive their arguments
// unevaluated.
type LFunType uint

// Possible LFunType values
const (
	LFunNone LFunType = iota
	LFunSpecialOp
)

// LVal is a lisp value.  The same representation serves as the parsed
// expression tree and as the result of evaluation.  Evaluation never mutates
// an LVal in place; lambdas hold shared read-only references to their body.
type LVal struct {
	Type   LValType
	Num    float64
	Str    string // symbol name or error message text
	Cells  []*LVal
	Source *token.Location

	// Condition names the error class of an LError value (e.g.
	// "unbound-symbol").
	Condition string

	// Variables needed for function values
	FunType LFunType
	Builtin LBuiltin
	FID     string
	Env     *LEnv
	Formals *LVal
	Body    *LVal
}

// Number returns an LVal representing the number x.
func Number(x float64) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  x,
	}
}

// Bool returns a number LVal encoding ok, 1 for true and 0 for false.  The
// language has no boolean type and uses numeric truthiness.
func Bool(ok bool) *LVal {
	if ok {
		return Number(1)
	}
	return Number(0)
}

// Symbol returns an LVal representing the symbol s
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// SExpr returns an LVal representing an S-expression, a symbolic expression.
func SExpr(cells []*LVal) *LVal {
	return &LVal{
		Type:  LSExpr,
		Cells: cells,
	}
}

// Nil returns an LVal representing nil, the absence of a meaningful value.
func Nil() *LVal {
	return &LVal{
		Type: LNil,
	}
}

// Fun returns an LVal representing a builtin function.
func Fun(fid string, formals *LVal, fn LBuiltin) *LVal {
	return &LVal{
		Type:    LFun,
		FID:     fid,
		Formals: formals,
		Builtin: fn,
	}
}

// SpecialOp returns an LVal representing a special operator, a function
// which receives unevaluated arguments.
func SpecialOp(fid string, formals *LVal, fn LBuiltin) *LVal {
	return &LVal{
		Type:    LFun,
		FunType: LFunSpecialOp,
		FID:     fid,
		Formals: formals,
		Builtin: fn,
	}
}

// Lambda returns an anonymous function with the given formals and body.  The
// returned function holds a shared reference to env, the environment where
// the lambda was created, which is what makes free-variable resolution
// lexical.
func Lambda(env *LEnv, formals *LVal, body *LVal) *LVal {
	return &LVal{
		Type:    LFun,
		Env:     env,
		Formals: formals,
		Body:    body,
	}
}

// IsSpecialFun returns true if v is a special operator.
func (v *LVal) IsSpecialFun() bool {
	return v.Type == LFun && v.FunType == LFunSpecialOp
}

// IsNil returns true if v is the nil value.
func (v *LVal) IsNil() bool {
	return v.Type == LNil
}

// IsTruthy returns the truth value of v.  Nil and the number 0 are false and
// every other value is true.
func (v *LVal) IsTruthy() bool {
	switch v.Type {
	case LNil:
		return false
	case LNumber:
		return v.Num != 0
	default:
		return true
	}
}

// Len returns the number of cells in v.
func (v *LVal) Len() int {
	return len(v.Cells)
}

// Copy creates a copy of the receiver.  Cells, formals, and bodies are
// copied deeply while environment references remain shared, preserving
// closure semantics.
func (v *LVal) Copy() *LVal {
	if v == nil {
		return nil
	}
	cp := &LVal{}
	*cp = *v                 // shallow copy of all fields
	cp.Cells = v.copyCells() // deep copy of v.Cells
	cp.Formals = v.Formals.Copy()
	cp.Body = v.Body.Copy()
	return cp
}

func (v *LVal) copyCells() []*LVal {
	if len(v.Cells) == 0 {
		return nil
	}
	cells := make([]*LVal, len(v.Cells))
	for i := range cells {
		cells[i] = v.Cells[i].Copy()
	}
	return cells
}

func (v *LVal) String() string {
	switch v.Type {
	case LNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case LSymbol:
		return v.Str
	case LSExpr:
		return exprString(v, "(", ")")
	case LNil:
		return "()"
	case LFun:
		if v.Builtin != nil {
			return v.FID
		}
		return fmt.Sprintf("(lambda %v %v)", v.Formals, v.Body)
	case LError:
		return (*ErrorVal)(v).Error()
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func exprString(v *LVal, left string, right string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}
