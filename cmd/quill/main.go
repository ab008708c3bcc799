package main

import (
	"os"

	"github.com/simonhull/quill/internal/commands"
)

func main() {
	if err := commands.NewApp().Execute(); err != nil {
		os.Exit(1)
	}
}
