package main

import "splitnest-cli/cmd"

func main() {
	cmd.Execute()
}
