package lisptest

import "testing"

func TestErrorConditions(t *testing.T) {
	tests := TestSuite{
		{"parse errors", TestSequence{
			{"(foo", "unmatched-syntax: unmatched ("},
			{"(define x (+ 1 2)", "unmatched-syntax: unmatched ("},
			{")", "unexpected-token: test:1 unexpected )"},
			{"(+ 1 #)", "scan-error: unexpected text starting with '#'"},
		}},
		{"eval errors carry the offending form", TestSequence{
			{"missing", "unbound-symbol: missing"},
			{"(0)", "not-callable: first element of expression is not a function: 0"},
			{"((lambda (a b) a) 1)", "arity-mismatch: expected 2 arguments (got 1)"},
			{"(< 1 (lambda (x) x))", "type-mismatch: argument is not a number: (lambda (x) x)"},
		}},
		{"errors abort the current form only", TestSequence{
			{"(define ok 1)", "1"},
			{"(begin (define partial 2) (boom))", "unbound-symbol: boom"},
			{"ok", "1"},
			// bindings committed before the failing sub-expression persist
			{"partial", "2"},
		}},
	}
	RunTestSuite(t, tests)
}
