// Package main is the entry point for the ifccheck CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/boscotek/ifccheck/cmd/ifccheck/commands"
	ifcerrors "github.com/boscotek/ifccheck/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		var exitErr *ifcerrors.ExitError
		if errors.As(err, &exitErr) {
			if !exitErr.Reported {
				if exitErr.Err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr.Err)
				}
				if exitErr.Suggestion != "" {
					fmt.Fprintf(os.Stderr, "%s\n", exitErr.Suggestion)
				}
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ifcerrors.ExitFailure)
	}
}
