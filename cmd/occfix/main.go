package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/glamberson/occfix/internal/cli"
	"github.com/glamberson/occfix/pkg/occfix"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(occfix.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(occfix.ExitCodeForError(err))
	}
}
