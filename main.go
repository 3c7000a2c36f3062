package main

import "shootseeder/cmd"

func main() {
	cmd.Execute()
}
