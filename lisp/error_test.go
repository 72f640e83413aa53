package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	lerr := Errorf("test error message")
	msg := GoError(lerr).Error()
	assert.Equal(t, "error: test error message", msg)

	lerr = ErrorConditionf(ErrType, "argument is not a number: foo")
	msg = GoError(lerr).Error()
	assert.Equal(t, "type-mismatch: argument is not a number: foo", msg)
}

func TestGoErrorNonError(t *testing.T) {
	assert.Nil(t, GoError(Number(1)))
	assert.Nil(t, GoError(Nil()))
}

func TestErrorString(t *testing.T) {
	lerr := ErrorConditionf(ErrUnboundSymbol, "foo")
	assert.Equal(t, "unbound-symbol: foo", lerr.String())
}
