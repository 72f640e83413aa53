// Package lisplib loads the standard brewlis library.
package lisplib

import (
	"github.com/szma/brewlis/lisp"
	"github.com/szma/brewlis/lisp/lisplib/libmath"
)

// LoadLibrary adds the standard library to env.
func LoadLibrary(env *lisp.LEnv) *lisp.LVal {
	lerr := libmath.LoadPackage(env)
	if lerr.Type == lisp.LError {
		return lerr
	}
	return lisp.Nil()
}
