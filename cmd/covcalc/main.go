package main

import (
	"fmt"
	"os"

	"github.com/Electronya/covcalc/cmd/covcalc/app"
)

func main() {
	if err := app.NewCovcalcCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
