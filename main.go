package main

import (
	"os"

	"github.com/Max-Nicolai/MindPath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
