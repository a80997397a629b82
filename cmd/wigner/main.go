package main

import (
	"os"

	"github.com/katalvlaran/wigner/cmd/wigner/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
