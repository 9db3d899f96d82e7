package main

import "github.com/notelab/partwise/cmd"

func main() {
	cmd.Execute()
}
