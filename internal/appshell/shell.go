// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the context-aware entry point a binary hands to Main.
type RunFunc func(context.Context, []string, io.Writer, io.Writer) int

// Main wires a RunFunc to the process: SIGINT/SIGTERM cancel the
// context, and a run that ends canceled exits 130 (the conventional
// 128+SIGINT code) unless it already reported a failure.
func Main(run RunFunc) {
	os.Exit(Execute(run, os.Args[1:], os.Stdout, os.Stderr))
}

// Execute is Main without the os.Exit, for tests and embedding.
func Execute(run RunFunc, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, stdout, stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
