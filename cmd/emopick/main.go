package main

import (
	"fmt"
	"os"

	"github.com/runger/emopick/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "emopick: %v\n", err)
		os.Exit(2)
	}
	os.Exit(cmd.ExitCode())
}
