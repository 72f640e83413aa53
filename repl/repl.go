// Package repl implements an interactive brewlis session.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/szma/brewlis/lisp"
	"github.com/szma/brewlis/lisp/lisplib"
	"github.com/szma/brewlis/parser"
)

// RunRepl runs a simple repl.  One environment persists for the whole
// session so top level bindings survive across inputs.
func RunRepl(prompt string) {
	env := lisp.NewEnv(nil)
	lisp.InitializeUserEnv(env)
	if lerr := lisplib.LoadLibrary(env); lerr.Type == lisp.LError {
		errln(lisp.GoError(lerr))
		return
	}

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf []byte
	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err != nil && err != readline.ErrInterrupt {
			break
		}
		if err == readline.ErrInterrupt {
			line = nil
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			line = append(buf, line...)
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(line) == 0 {
			continue
		}
		exprs, perr := parser.Parse("stdin", line)
		if perr != nil {
			if parser.IsIncomplete(perr) {
				buf = line
				rl.SetPrompt(contPrompt)
				continue
			}
			errln(perr)
			continue
		}
		for _, expr := range exprs {
			fmt.Println(env.Eval(expr))
		}
	}
	if err != io.EOF {
		errln(err)
	}
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
