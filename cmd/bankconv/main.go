package main

import (
	"fmt"
	"os"

	"github.com/bankconv/bankconv/internal/commands"
)

func main() {
	if err := commands.Execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stdout, "Error: %v\n", err)
		os.Exit(1)
	}
}
