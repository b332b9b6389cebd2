package main

import (
	"os"

	"github.com/hogword/hogword-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
