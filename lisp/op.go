package lisp

import "fmt"

var userSpecialOps []*langBuiltin
var langSpecialOps = []*langBuiltin{
	{"define", Formals("sym", "expr"), opDefine},
	{"lambda", Formals("formals", "expr"), opLambda},
	{"if", Formals("condition", "then", VarArgSymbol, "else"), opIf},
	{"begin", Formals(VarArgSymbol, "expr"), opBegin},
	{"cond", Formals(VarArgSymbol, "branch"), opCond},
	{"let", Formals("bindings", VarArgSymbol, "expr"), opLet},
	{"let*", Formals("bindings", VarArgSymbol, "expr"), opLetSeq},
	{"or", Formals(VarArgSymbol, "expr"), opOr},
	{"and", Formals(VarArgSymbol, "expr"), opAnd},
}

// RegisterDefaultSpecialOp adds the given function to the list returned by
// DefaultSpecialOps.
func RegisterDefaultSpecialOp(name string, formals *LVal, fn LBuiltin) {
	userSpecialOps = append(userSpecialOps, &langBuiltin{name, formals.Copy(), fn})
}

// DefaultSpecialOps returns the default set of LBuiltinDef added to LEnv
// objects when LEnv.AddSpecialOps is called without arguments.
func DefaultSpecialOps() []LBuiltinDef {
	ops := make([]LBuiltinDef, len(langSpecialOps)+len(userSpecialOps))
	for i := range langSpecialOps {
		ops[i] = langSpecialOps[i]
	}
	offset := len(langSpecialOps)
	for i := range userSpecialOps {
		ops[offset+i] = userSpecialOps[i]
	}
	return ops
}

// (define sym expr)
func opDefine(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 2 {
		return berrf("define", "two arguments expected (got %d)", len(args.Cells))
	}
	sym := args.Cells[0]
	if sym.Type != LSymbol {
		return berrf("define", "first argument is not a symbol: %v", sym.Type)
	}
	v := env.Eval(args.Cells[1])
	if v.Type == LError {
		return v
	}
	env.Put(sym, v)
	return v
}

// (lambda formals expr)
func opLambda(env *LEnv, v *LVal) *LVal {
	if len(v.Cells) != 2 {
		return berrf("lambda", "two arguments expected (got %d)", len(v.Cells))
	}
	formals := v.Cells[0]
	switch formals.Type {
	case LSymbol:
		// A bare symbol declares a single formal argument.
		formals = SExpr([]*LVal{formals})
	case LSExpr:
		seen := make(map[string]bool, len(formals.Cells))
		for _, sym := range formals.Cells {
			if sym.Type != LSymbol {
				return berrf("lambda", "first argument contains a non-symbol: %v", sym.Type)
			}
			if seen[sym.Str] {
				return berrf("lambda", "duplicate formal argument: %s", sym.Str)
			}
			seen[sym.Str] = true
		}
	default:
		return berrf("lambda", "first argument is not a symbol or list of symbols: %v", formals.Type)
	}
	// The lambda captures env itself, not a copy, so bindings made later in
	// the defining scope are visible through the chain.
	return Lambda(env, formals, v.Cells[1])
}

// (if condition then else?)
func opIf(env *LEnv, s *LVal) *LVal {
	if len(s.Cells) != 2 && len(s.Cells) != 3 {
		return berrf("if", "two or three arguments expected (got %d)", len(s.Cells))
	}
	r := env.Eval(s.Cells[0])
	if r.Type == LError {
		return r
	}
	if r.IsTruthy() {
		return env.Eval(s.Cells[1])
	}
	if len(s.Cells) == 3 {
		return env.Eval(s.Cells[2])
	}
	return Nil()
}

// (begin expr*)
func opBegin(env *LEnv, args *LVal) *LVal {
	val := Nil()
	for _, c := range args.Cells {
		val = env.Eval(c)
		if val.Type == LError {
			return val
		}
	}
	return val
}

// (cond (test-form then-form)*)
func opCond(env *LEnv, args *LVal) *LVal {
	last := len(args.Cells) - 1
	for i, branch := range args.Cells {
		if branch.Type != LSExpr {
			return berrf("cond", "argument is not a list: %v", branch.Type)
		}
		if len(branch.Cells) != 2 {
			return berrf("cond", "argument is not a pair (length %d)", len(branch.Cells))
		}
		var test *LVal
		if branch.Cells[0].Type == LSymbol && branch.Cells[0].Str == "else" {
			if i != last {
				return berrf("cond", "invalid syntax: else")
			}
			test = Bool(true)
		} else {
			test = env.Eval(branch.Cells[0])
		}
		if test.Type == LError {
			return test
		}
		if !test.IsTruthy() {
			continue
		}
		return env.Eval(branch.Cells[1])
	}
	return Nil()
}

// (let ((sym expr)*) expr*)
func opLet(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) == 0 {
		return berrf("let", "at least one argument expected")
	}
	letenv := NewEnv(env)
	bindlist := args.Cells[0]
	if bindlist.Type != LSExpr {
		return berrf("let", "first argument is not a list: %v", bindlist.Type)
	}
	// Binding expressions are evaluated in the enclosing scope before any
	// binding is made.
	vals := make([]*LVal, len(bindlist.Cells))
	for i, bind := range bindlist.Cells {
		if bind.Type != LSExpr || len(bind.Cells) != 2 {
			return berrf("let", "first argument is not a list of pairs")
		}
		vals[i] = env.Eval(bind.Cells[1])
		if vals[i].Type == LError {
			return vals[i]
		}
	}
	for i, bind := range bindlist.Cells {
		if bind.Cells[0].Type != LSymbol {
			return berrf("let", "binding name is not a symbol: %v", bind.Cells[0].Type)
		}
		letenv.Put(bind.Cells[0], vals[i])
	}
	return opBegin(letenv, SExpr(args.Cells[1:]))
}

// (let* ((sym expr)*) expr*)
func opLetSeq(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) == 0 {
		return berrf("let*", "at least one argument expected")
	}
	letenv := NewEnv(env)
	bindlist := args.Cells[0]
	if bindlist.Type != LSExpr {
		return berrf("let*", "first argument is not a list: %v", bindlist.Type)
	}
	for _, bind := range bindlist.Cells {
		if bind.Type != LSExpr || len(bind.Cells) != 2 {
			return berrf("let*", "first argument is not a list of pairs")
		}
		if bind.Cells[0].Type != LSymbol {
			return berrf("let*", "binding name is not a symbol: %v", bind.Cells[0].Type)
		}
		val := letenv.Eval(bind.Cells[1])
		if val.Type == LError {
			return val
		}
		letenv.Put(bind.Cells[0], val)
	}
	return opBegin(letenv, SExpr(args.Cells[1:]))
}

// (or expr*)
func opOr(env *LEnv, s *LVal) *LVal {
	for _, c := range s.Cells {
		r := env.Eval(c)
		if r.Type == LError {
			return r
		}
		if r.IsTruthy() {
			return Bool(true)
		}
	}
	return Bool(false)
}

// (and expr*)
func opAnd(env *LEnv, s *LVal) *LVal {
	for _, c := range s.Cells {
		r := env.Eval(c)
		if r.Type == LError {
			return r
		}
		if !r.IsTruthy() {
			return Bool(false)
		}
	}
	return Bool(true)
}

// berrf returns a special-form-error whose message is prefixed with the name
// of the offending form.
func berrf(form string, format string, v ...interface{}) *LVal {
	return ErrorConditionf(ErrSpecialForm, "%s: %s", form, fmt.Sprintf(format, v...))
}
