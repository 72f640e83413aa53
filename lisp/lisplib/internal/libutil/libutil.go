// Package libutil contains utilities for implementing brewlis libraries.
package libutil

import "github.com/szma/brewlis/lisp"

// Builtin is a basic implementation of lisp.LBuiltinDef.
type Builtin struct {
	name    string
	formals *lisp.LVal
	fun     lisp.LBuiltin
}

var _ lisp.LBuiltinDef = (*Builtin)(nil)

// Function returns a Builtin with the given name, formals, and function.
func Function(name string, formals *lisp.LVal, fun lisp.LBuiltin) *Builtin {
	return &Builtin{name, formals, fun}
}

// Name implements lisp.LBuiltinDef.
func (fun *Builtin) Name() string {
	return fun.name
}

// Formals implements lisp.LBuiltinDef.
func (fun *Builtin) Formals() *lisp.LVal {
	return fun.formals
}

// Eval implements lisp.LBuiltinDef.
func (fun *Builtin) Eval(env *lisp.LEnv, args *lisp.LVal) *lisp.LVal {
	return fun.fun(env, args)
}
