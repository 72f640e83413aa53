package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/szma/brewlis/lisp"
	"github.com/szma/brewlis/lisp/lisplib"
	"github.com/szma/brewlis/parser"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long:  `Run lisp code supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		names, exprs, err := runReadExpressions(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		env := lisp.NewEnv(nil)
		lisp.InitializeUserEnv(env)
		if lerr := lisplib.LoadLibrary(env); lerr.Type == lisp.LError {
			fmt.Fprintln(os.Stderr, lisp.GoError(lerr))
			os.Exit(1)
		}
		for i := range exprs {
			vals, err := parser.Parse(names[i], exprs[i])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			for _, v := range vals {
				r := env.Eval(v)
				if r.Type == lisp.LError {
					fmt.Fprintln(os.Stderr, lisp.GoError(r))
					os.Exit(1)
				}
				if runPrint {
					fmt.Println(r)
				}
			}
		}
	},
}

func runReadExpressions(args []string) ([]string, [][]byte, error) {
	names := make([]string, len(args))
	exprs := make([][]byte, len(args))
	if runExpression {
		for i := range args {
			names[i] = "cli"
			exprs[i] = []byte(args[i])
		}
		return names, exprs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		names[i] = path
		exprs[i] = b
	}
	return names, exprs, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
