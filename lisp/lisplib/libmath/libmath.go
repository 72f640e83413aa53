// Package libmath provides transcendental math functions and constants.
package libmath

import (
	"math"

	"github.com/szma/brewlis/lisp"
	"github.com/szma/brewlis/lisp/lisplib/internal/libutil"
)

// LoadPackage adds the math library to env.
func LoadPackage(env *lisp.LEnv) *lisp.LVal {
	env.PutGlobal(lisp.Symbol("pi"), lisp.Number(math.Pi))
	env.PutGlobal(lisp.Symbol("e"), lisp.Number(math.E))
	env.PutGlobal(lisp.Symbol("inf"), lisp.Number(math.Inf(1)))
	env.PutGlobal(lisp.Symbol("-inf"), lisp.Number(math.Inf(-1)))
	for _, fn := range builtins {
		env.AddBuiltins(fn)
	}
	return lisp.Nil()
}

var builtins = []*libutil.Builtin{
	libutil.Function("sin", lisp.Formals("number"), builtin1(math.Sin)),
	libutil.Function("cos", lisp.Formals("number"), builtin1(math.Cos)),
	libutil.Function("tan", lisp.Formals("number"), builtin1(math.Tan)),
	libutil.Function("sinh", lisp.Formals("number"), builtin1(math.Sinh)),
	libutil.Function("cosh", lisp.Formals("number"), builtin1(math.Cosh)),
	libutil.Function("tanh", lisp.Formals("number"), builtin1(math.Tanh)),
	libutil.Function("exp", lisp.Formals("number"), builtin1(math.Exp)),
	libutil.Function("ln", lisp.Formals("number"), builtin1(math.Log)),
	libutil.Function("sqrt", lisp.Formals("number"), builtin1(math.Sqrt)),
	libutil.Function("floor", lisp.Formals("number"), builtin1(math.Floor)),
	libutil.Function("ceil", lisp.Formals("number"), builtin1(math.Ceil)),
	libutil.Function("log", lisp.Formals("base", "number"), builtinLog),
}

// builtin1 adapts a unary float function into a type checked builtin.
func builtin1(fn func(float64) float64) lisp.LBuiltin {
	return func(env *lisp.LEnv, args *lisp.LVal) *lisp.LVal {
		x := args.Cells[0]
		if x.Type != lisp.LNumber {
			return lisp.ErrorConditionf(lisp.ErrType, "argument is not a number: %v", x)
		}
		return lisp.Number(fn(x.Num))
	}
}

func builtinLog(env *lisp.LEnv, args *lisp.LVal) *lisp.LVal {
	base := args.Cells[0]
	x := args.Cells[1]
	if base.Type != lisp.LNumber {
		return lisp.ErrorConditionf(lisp.ErrType, "argument is not a number: %v", base)
	}
	if x.Type != lisp.LNumber {
		return lisp.ErrorConditionf(lisp.ErrType, "argument is not a number: %v", x)
	}
	return lisp.Number(math.Log(x.Num) / math.Log(base.Num))
}
