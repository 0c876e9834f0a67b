// Package main is the entry point for the osdetect CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/thoreinstein/osdetect/cmd/osdetect/commands"
	"github.com/thoreinstein/osdetect/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}
	printError(os.Stderr, err)
	os.Exit(errors.ExitCode(err))
}

// printError writes err and any suggestion to w. An ExitError carrying
// neither an error nor a suggestion only sets the exit code.
func printError(w io.Writer, err error) {
	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	if exitErr.Err != nil {
		fmt.Fprintf(w, "Error: %v\n", exitErr.Err)
	}
	if exitErr.Suggestion != "" {
		fmt.Fprintf(w, "  %s\n", exitErr.Suggestion)
	}
}
