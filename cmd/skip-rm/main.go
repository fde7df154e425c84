// Package main is the entry point for the skip-rm wrapper.
package main

import (
	"errors"
	"os"

	"github.com/xdg/skip-rm/internal/cmd"
	"github.com/xdg/skip-rm/internal/term"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		var exitErr *cmd.ExitCodeError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				term.Error("%v", exitErr.Err)
			}
			os.Exit(exitErr.Code)
		}
		term.Error("%v", err)
		os.Exit(1)
	}
}
