package main

import (
	"fmt"
	"os"

	"github.com/penwyp/go-entparser/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "go-entparser: %v\n", err)
		os.Exit(1)
	}
}
