// Package lisptest provides a table driven harness for evaluating brewlis
// source text and comparing printed results.
package lisptest

import (
	"testing"

	"github.com/szma/brewlis/lisp"
	"github.com/szma/brewlis/lisp/lisplib"
	"github.com/szma/brewlis/parser"
)

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially by a lisp.LEnv.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated (or error) result, rendered as text
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// NewEnv returns a root environment initialized the way the front end
// initializes a session environment.
func NewEnv() *lisp.LEnv {
	env := lisp.NewEnv(nil)
	lisp.InitializeUserEnv(env)
	lisplib.LoadLibrary(env)
	return env
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		env := NewEnv()
		for j, expr := range test.TestSequence {
			v, err := parser.Parse("test", []byte(expr.Expr))
			if err != nil {
				if err.Error() != expr.Result {
					t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				}
				continue
			}
			if len(v) == 0 {
				t.Errorf("test %d %q: expr %d: no expression parsed", i, test.Name, j)
				continue
			}
			if len(v) != 1 {
				t.Errorf("test %d %q: expr %d: more than one expression parsed (%d)", i, test.Name, j, len(v))
				continue
			}
			result := env.Eval(v[0]).String()
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
		}
	}
}
