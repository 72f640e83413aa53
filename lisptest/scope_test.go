package lisptest

import "testing"

func TestScope(t *testing.T) {
	tests := TestSuite{
		{"lexical scope", TestSequence{
			{"(define x 1)", "1"},
			{"(let ((x 2)) x)", "2"},
			{"x", "1"},
			{"((lambda (x) x) 3)", "3"},
			{"x", "1"},
			{"(((lambda (x) (lambda () (+ x 2))) 3))", "5"},
		}},
		{"closures capture the defining environment", TestSequence{
			{"(begin (define make-adder (lambda (n) (lambda (x) (+ x n)))) 0)", "0"},
			{"(begin (define add5 (make-adder 5)) (add5 3))", "8"},
			// invoking from a scope that shadows n still resolves against
			// the captured frame
			{"((lambda (n) (add5 n)) 100)", "105"},
		}},
		{"captured frames observe later sibling definitions", TestSequence{
			{"(begin (define f (lambda () later)) (define later 7) (f))", "7"},
		}},
		{"lexical rather than dynamic resolution", TestSequence{
			{"(begin (define y 10) (define f (lambda () y)) ((lambda (y) (f)) 99))", "10"},
		}},
		{"child frame writes never reach the parent", TestSequence{
			{"(define x 1)", "1"},
			{"((lambda (ignored) (define x 2)) 0)", "2"},
			{"x", "1"},
		}},
		{"let evaluates bindings in the enclosing scope", TestSequence{
			{"(define x 1)", "1"},
			{"(let ((x 2) (y x)) y)", "1"},
			{"(let* ((x 2) (y x)) y)", "2"},
		}},
		{"error does not discard earlier bindings", TestSequence{
			{"(begin (define a 1) (undefined))", "unbound-symbol: undefined"},
			{"a", "1"},
		}},
	}
	RunTestSuite(t, tests)
}
