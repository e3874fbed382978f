package main

import "github.com/hollandre/fitscan/internal/adapters/cli"

func main() {
	cli.Execute()
}
