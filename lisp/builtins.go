package lisp

import "math"

// LBuiltin is a Go function that executes a lisp function.
type LBuiltin func(env *LEnv, args *LVal) *LVal

// LBuiltinDef is a built-in function definition.
type LBuiltinDef interface {
	Name() string
	Formals() *LVal
	Eval(env *LEnv, args *LVal) *LVal
}

type langBuiltin struct {
	name    string
	formals *LVal
	fun     LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Formals() *LVal {
	return fun.formals
}

func (fun *langBuiltin) Eval(env *LEnv, args *LVal) *LVal {
	return fun.fun(env, args)
}

var userBuiltins []*langBuiltin
var langBuiltins = []*langBuiltin{
	{">=", Formals("a", "b"), builtinGEq},
	{">", Formals("a", "b"), builtinGT},
	{"<=", Formals("a", "b"), builtinLEq},
	{"<", Formals("a", "b"), builtinLT},
	{"=", Formals("a", "b"), builtinEqNum},
	{"pow", Formals("a", "b"), builtinPow},
	{"^", Formals("a", "b"), builtinPow},
	{"mod", Formals("a", "b"), builtinMod},
	{"abs", Formals("x"), builtinAbs},
	{"max", Formals("real", VarArgSymbol, "rest"), builtinMax},
	{"min", Formals("real", VarArgSymbol, "rest"), builtinMin},
	{"not", Formals("expr"), builtinNot},
	{"+", Formals(VarArgSymbol, "x"), builtinAdd},
	{"-", Formals(VarArgSymbol, "x"), builtinSub},
	{"/", Formals(VarArgSymbol, "x"), builtinDiv},
	{"*", Formals(VarArgSymbol, "x"), builtinMul},
}

// RegisterDefaultBuiltin adds the given function to the list returned by
// DefaultBuiltins.
func RegisterDefaultBuiltin(name string, formals *LVal, fn LBuiltin) {
	userBuiltins = append(userBuiltins, &langBuiltin{name, formals.Copy(), fn})
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	funs := make([]LBuiltinDef, len(langBuiltins)+len(userBuiltins))
	for i := range langBuiltins {
		funs[i] = langBuiltins[i]
	}
	offset := len(langBuiltins)
	for i := range userBuiltins {
		funs[offset+i] = userBuiltins[i]
	}
	return funs
}

// numberArgs extracts float64 operands from args, returning a type-mismatch
// error if any argument is not a number.
func numberArgs(args *LVal) ([]float64, *LVal) {
	xs := make([]float64, len(args.Cells))
	for i, c := range args.Cells {
		if c.Type != LNumber {
			return nil, ErrorConditionf(ErrType, "argument is not a number: %v", c)
		}
		xs[i] = c.Num
	}
	return xs, nil
}

func builtinGEq(env *LEnv, args *LVal) *LVal {
	xs, lerr := numberArgs(args)
	if lerr != nil {
		return lerr
	}
	return Bool(xs[0] >= xs[1])
}

func builtinGT(env *LEnv, args *LVal) *LVal {
	xs, lerr := numberArgs(args)
	if lerr != nil {
		return lerr
	}
	return Bool(xs[0] > xs[1])
}

func builtinLEq(env *LEnv, args *LVal) *LVal {
	xs, lerr := numberArgs(args)
	if lerr != nil {
		return lerr
	}
	return Bool(xs[0] <= xs[1])
}

func builtinLT(env *LEnv, args *LVal) *LVal {
	xs, lerr := numberArgs(args)
	if lerr != nil {
		return lerr
	}
	return Bool(xs[0] < xs[1])
}

func builtinEqNum(env *LEnv, args *LVal) *LVal {
	xs, lerr := numberArgs(args)
	if lerr != nil {
		return lerr
	}
	return Bool(xs[0] == xs[1])
}

func builtinPow(env *LEnv, args *LVal) *LVal {
	xs, lerr := numberArgs(args)
	if lerr != nil {
		return lerr
	}
	return Number(math.Pow(xs[0], xs[1]))
}

func builtinMod(env *LEnv, args *LVal) *LVal {
	xs, lerr := numberArgs(args)
	if lerr != nil {
		return lerr
	}
	if xs[1] == 0 {
		return ErrorConditionf(ErrDivideByZero, "mod by zero")
	}
	return Number(math.Mod(xs[0], xs[1]))
}

func builtinAbs(env *LEnv, args *LVal) *LVal {
	xs, lerr := numberArgs(args)
	if lerr != nil {
		return lerr
	}
	return Number(math.Abs(xs[0]))
}

func builtinMax(env *LEnv, args *LVal) *LVal {
	xs, lerr := numberArgs(args)
	if lerr != nil {
		return lerr
	}
	m := xs[0]
	for _, x := range xs[1:] {
		m = math.Max(m, x)
	}
	return Number(m)
}

func builtinMin(env *LEnv, args *LVal) *LVal {
	xs, lerr := numberArgs(args)
	if lerr != nil {
		return lerr
	}
	m := xs[0]
	for _, x := range xs[1:] {
		m = math.Min(m, x)
	}
	return Number(m)
}

func builtinNot(env *LEnv, args *LVal) *LVal {
	return Bool(!args.Cells[0].IsTruthy())
}

func builtinAdd(env *LEnv, args *LVal) *LVal {
	xs, lerr := numberArgs(args)
	if lerr != nil {
		return lerr
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return Number(sum)
}

func builtinSub(env *LEnv, args *LVal) *LVal {
	xs, lerr := numberArgs(args)
	if lerr != nil {
		return lerr
	}
	switch len(xs) {
	case 0:
		return Number(0)
	case 1:
		return Number(-xs[0])
	}
	diff := xs[0]
	for _, x := range xs[1:] {
		diff -= x
	}
	return Number(diff)
}

func builtinDiv(env *LEnv, args *LVal) *LVal {
	xs, lerr := numberArgs(args)
	if lerr != nil {
		return lerr
	}
	// A single operand is inverted.
	if len(xs) == 1 {
		xs = []float64{1, xs[0]}
	}
	if len(xs) == 0 {
		return Number(1)
	}
	quot := xs[0]
	for _, x := range xs[1:] {
		if x == 0 {
			return ErrorConditionf(ErrDivideByZero, "division by zero")
		}
		quot /= x
	}
	return Number(quot)
}

func builtinMul(env *LEnv, args *LVal) *LVal {
	xs, lerr := numberArgs(args)
	if lerr != nil {
		return lerr
	}
	prod := 1.0
	for _, x := range xs {
		prod *= x
	}
	return Number(prod)
}
