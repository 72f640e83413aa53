package lisp

// VarArgSymbol is the symbol that indicates a variadic argument in a builtin
// function's list of formal arguments.
const VarArgSymbol = "&"

// Formals returns a list of formal argument symbols for a builtin function
// definition.
func Formals(names ...string) *LVal {
	s := SExpr(make([]*LVal, len(names)))
	for i, name := range names {
		s.Cells[i] = Symbol(name)
	}
	return s
}
