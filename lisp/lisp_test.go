package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLValString(t *testing.T) {
	assert.Equal(t, "3", Number(3).String())
	assert.Equal(t, "0.5", Number(0.5).String())
	assert.Equal(t, "-2.5", Number(-2.5).String())
	assert.Equal(t, "x", Symbol("x").String())
	assert.Equal(t, "()", Nil().String())
	assert.Equal(t, "()", SExpr(nil).String())
	assert.Equal(t, "(+ 1 2)",
		SExpr([]*LVal{Symbol("+"), Number(1), Number(2)}).String())
}

func TestLambdaString(t *testing.T) {
	fun := Lambda(nil, Formals("x"),
		SExpr([]*LVal{Symbol("+"), Symbol("x"), Number(1)}))
	assert.Equal(t, "(lambda (x) (+ x 1))", fun.String())
}

func TestBool(t *testing.T) {
	assert.Equal(t, 1.0, Bool(true).Num)
	assert.Equal(t, 0.0, Bool(false).Num)
}

func TestIsTruthy(t *testing.T) {
	assert.False(t, Nil().IsTruthy())
	assert.False(t, Number(0).IsTruthy())
	assert.True(t, Number(0.1).IsTruthy())
	assert.True(t, Number(-1).IsTruthy())
	assert.True(t, Symbol("x").IsTruthy())
}

func TestCopySharesEnvironment(t *testing.T) {
	env := NewEnv(nil)
	fun := Lambda(env, Formals("x"), Symbol("x"))
	cp := fun.Copy()
	assert.Same(t, fun.Env, cp.Env)
	assert.NotSame(t, fun.Formals, cp.Formals)
}
