package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"

	"skiddie/internal/launcher"
	"skiddie/internal/round"
	"skiddie/internal/ui"
)

const exitInterrupted = 130

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err, os.Stderr))
}

// exitCode reports err on w and maps it to a process status. Leaving
// without picking a game is not a failure.
func exitCode(err error, w io.Writer) int {
	switch {
	case err == nil, errors.Is(err, launcher.ErrNoSelection):
		return 0
	case isInterrupt(err):
		return exitInterrupted
	default:
		fmt.Fprintln(w, "skiddie:", err)
		return 1
	}
}

func isInterrupt(err error) bool {
	return errors.Is(err, round.ErrInterrupted) ||
		errors.Is(err, ui.ErrInterrupted) ||
		errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, context.Canceled)
}
