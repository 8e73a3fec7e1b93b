package main

import (
	"os"

	"github.com/campusterm/campus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
