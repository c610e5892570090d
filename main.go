package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samzong/commitx/cmd"
)

func main() {
	// Interrupts cancel the pending prompt; the session reports the abort.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	cancel()

	if err == nil {
		return
	}
	// Faults were printed with their stack by the command.
	if !errors.Is(err, cmd.ErrFault) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(1)
}
