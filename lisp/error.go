package lisp

import "fmt"

// Error condition symbols attached to LError values.  The condition names
// the error class while the message carries the offending symbol or form.
const (
	// ErrScan reports an unrecognized character during tokenization.
	ErrScan = "scan-error"
	// ErrParse reports a literal the parser could not interpret.
	ErrParse = "parse-error"
	// ErrUnmatchedSyntax reports input that ends before a form is closed.
	ErrUnmatchedSyntax = "unmatched-syntax"
	// ErrUnexpectedToken reports a standalone token that cannot begin an
	// expression.
	ErrUnexpectedToken = "unexpected-token"
	// ErrUnboundSymbol reports a symbol with no binding in the environment
	// chain.
	ErrUnboundSymbol = "unbound-symbol"
	// ErrEmptyApplication reports evaluation of an empty list.
	ErrEmptyApplication = "empty-application"
	// ErrSpecialForm reports a special form with an invalid shape.
	ErrSpecialForm = "special-form-error"
	// ErrNotCallable reports application of a value that is not a function.
	ErrNotCallable = "not-callable"
	// ErrArity reports a call with the wrong number of arguments.
	ErrArity = "arity-mismatch"
	// ErrType reports a numeric operation applied to a non-number.
	ErrType = "type-mismatch"
	// ErrDivideByZero reports division (or mod) with a zero divisor.
	ErrDivideByZero = "division-by-zero"
)

// ErrorVal implements the error interface so that errors can be first class
// lisp objects.  The error message is stored in the Str field and the error
// class in the Condition field.
type ErrorVal LVal

// Error implements the error interface.
func (e *ErrorVal) Error() string {
	if e.Condition != "" {
		return e.Condition + ": " + e.Str
	}
	return e.Str
}

// Errorf returns an LVal representing a formatted error message with the
// generic condition "error".
func Errorf(format string, v ...interface{}) *LVal {
	return ErrorConditionf("error", format, v...)
}

// ErrorConditionf returns an error LVal with the given condition and a
// formatted error message.
func ErrorConditionf(condition string, format string, v ...interface{}) *LVal {
	return &LVal{
		Type:      LError,
		Condition: condition,
		Str:       fmt.Sprintf(format, v...),
	}
}

// GoError converts an error LVal into a Go error.  GoError returns nil when
// v is not an error.
func GoError(v *LVal) error {
	if v.Type != LError {
		return nil
	}
	return (*ErrorVal)(v)
}
