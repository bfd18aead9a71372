package main

import (
	"os"

	"github.com/vecexlang/vecex/cmd/vecex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
