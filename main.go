package main

import "github.com/szma/brewlis/cmd"

func main() {
	cmd.Execute()
}
