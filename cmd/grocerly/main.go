package main

import (
	"os"

	"github.com/grocerly/grocerly/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
