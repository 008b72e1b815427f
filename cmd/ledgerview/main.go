package main

import (
	"os"

	"github.com/ledgerview/ledgerview/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
