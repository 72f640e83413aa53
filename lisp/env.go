package lisp

import "fmt"

// LEnv is a lisp environment, a frame of symbol bindings chained to the
// frame of the enclosing lexical scope.  Frames are shared by reference;
// closures keep their defining frame chain alive and observe later bindings
// made in ancestor frames.
type LEnv struct {
	Scope  map[string]*LVal
	Parent *LEnv
}

// NewEnv initializes and returns a new LEnv with the given parent frame.  A
// nil parent creates a root (top level) environment.
func NewEnv(parent *LEnv) *LEnv {
	return &LEnv{
		Scope:  make(map[string]*LVal),
		Parent: parent,
	}
}

// Get takes an LSymbol k and returns the LVal it is bound to, searching the
// current frame and then its ancestors.  Get returns an unbound-symbol error
// when no frame in the chain binds k.
func (env *LEnv) Get(k *LVal) *LVal {
	if k.Type != LSymbol {
		return ErrorConditionf(ErrType, "cannot resolve non-symbol: %v", k.Type)
	}
	v, ok := env.Scope[k.Str]
	if ok {
		return v
	}
	if env.Parent != nil {
		return env.Parent.Get(k)
	}
	return ErrorConditionf(ErrUnboundSymbol, "%s", k.Str)
}

// Put takes an LSymbol k and binds it to v in the current frame only,
// shadowing any binding of k in an ancestor frame.
func (env *LEnv) Put(k, v *LVal) {
	if k.Type != LSymbol {
		return
	}
	if v == nil {
		panic("nil value")
	}
	env.Scope[k.Str] = v
}

// GetGlobal takes LSymbol k and returns the value it is bound to in the root
// environment (global scope).
func (env *LEnv) GetGlobal(k *LVal) *LVal {
	return env.root().Get(k)
}

// PutGlobal takes an LSymbol k and binds it to v in the root environment
// (global scope).
func (env *LEnv) PutGlobal(k, v *LVal) {
	env.root().Put(k, v)
}

func (env *LEnv) root() *LEnv {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

// AddSpecialOps binds the given special operators to their names in env.
// When called with no arguments AddSpecialOps adds the DefaultSpecialOps to
// env.
func (env *LEnv) AddSpecialOps(ops ...LBuiltinDef) {
	if len(ops) == 0 {
		ops = DefaultSpecialOps()
	}
	for _, op := range ops {
		k := Symbol(op.Name())
		exist := env.Get(k)
		if exist.Type != LError {
			panic("symbol already defined: " + op.Name())
		}
		id := fmt.Sprintf("<special-op ``%s''>", op.Name())
		env.Put(k, SpecialOp(id, op.Formals(), op.Eval))
	}
}

// AddBuiltins binds the given funs to their names in env.  When called with
// no arguments AddBuiltins adds the DefaultBuiltins to env.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		k := Symbol(f.Name())
		exist := env.Get(k)
		if exist.Type != LError {
			panic("symbol already defined: " + f.Name())
		}
		id := fmt.Sprintf("<builtin-function ``%s''>", f.Name())
		env.Put(k, Fun(id, f.Formals(), f.Eval))
	}
}

// InitializeUserEnv installs the default special operators and builtin
// functions into env, which must be a root environment.
func InitializeUserEnv(env *LEnv) *LVal {
	if env.Parent != nil {
		return Errorf("environment is not a root environment")
	}
	env.AddSpecialOps()
	env.AddBuiltins()
	return Nil()
}

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Numbers, functions, nil, and errors evaluate to themselves.
func (env *LEnv) Eval(v *LVal) *LVal {
	switch v.Type {
	case LSymbol:
		return env.Get(v)
	case LSExpr:
		return env.EvalSExpr(v)
	default:
		return v
	}
}

// EvalSExpr evaluates the function application s and returns the resulting
// LVal.  The first error encountered aborts evaluation of s.
func (env *LEnv) EvalSExpr(s *LVal) *LVal {
	if s.Type != LSExpr {
		return Errorf("not an s-expression")
	}
	if len(s.Cells) == 0 {
		return ErrorConditionf(ErrEmptyApplication, "missing function expression")
	}

	f := env.Eval(s.Cells[0])
	if f.Type == LError {
		return f
	}
	if f.Type != LFun {
		return ErrorConditionf(ErrNotCallable, "first element of expression is not a function: %v", f)
	}

	args := SExpr(nil)
	if f.IsSpecialFun() {
		// Arguments to a special operator are not evaluated.
		args.Cells = s.Cells[1:]
	} else {
		// Evaluate arguments eagerly, left to right, before invoking f.
		args.Cells = make([]*LVal, len(s.Cells)-1)
		for i, c := range s.Cells[1:] {
			v := env.Eval(c)
			if v.Type == LError {
				return v
			}
			args.Cells[i] = v
		}
	}
	return env.Call(f, args)
}

// Call invokes LFun fun with the list args.  The body of a lambda is
// evaluated in a new frame whose parent is the environment captured at
// lambda creation, not the caller's environment.
func (env *LEnv) Call(fun *LVal, args *LVal) *LVal {
	if fun.IsSpecialFun() {
		// Special operators validate their own form shape.
		return fun.Builtin(env, args)
	}
	if fun.Builtin != nil {
		if lerr := checkArity(fun.Formals, args); lerr != nil {
			return lerr
		}
		return fun.Builtin(env, args)
	}

	if len(args.Cells) != len(fun.Formals.Cells) {
		return ErrorConditionf(ErrArity, "expected %d arguments (got %d)",
			len(fun.Formals.Cells), len(args.Cells))
	}
	fenv := NewEnv(fun.Env)
	for i, sym := range fun.Formals.Cells {
		fenv.Put(sym, args.Cells[i])
	}
	return fenv.Eval(fun.Body)
}

// checkArity validates the argument count of a builtin function call against
// its formal argument list.  Formals containing VarArgSymbol accept any
// number of arguments beyond the required prefix.
func checkArity(formals *LVal, args *LVal) *LVal {
	nreq := 0
	vararg := false
	for _, sym := range formals.Cells {
		if sym.Str == VarArgSymbol {
			vararg = true
			break
		}
		nreq++
	}
	n := len(args.Cells)
	if vararg {
		if n < nreq {
			return ErrorConditionf(ErrArity, "expected at least %d arguments (got %d)", nreq, n)
		}
		return nil
	}
	if n != nreq {
		return ErrorConditionf(ErrArity, "expected %d arguments (got %d)", nreq, n)
	}
	return nil
}
