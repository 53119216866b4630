package main

import "github.com/lextransition/lexcite-cli/cmd"

func main() {
	cmd.Execute()
}
