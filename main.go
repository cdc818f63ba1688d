package main

import "go-krushivishwa/cmd"

func main() {
	cmd.Execute()
}
