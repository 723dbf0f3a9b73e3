package main

import "github.com/fidlr/playstats/cmd"

func main() {
	cmd.Execute()
}
