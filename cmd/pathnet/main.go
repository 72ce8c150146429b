package main

import "github.com/OpenTraceLab/pathnet/cmd/pathnet/cmd"

func main() {
	cmd.Execute()
}
