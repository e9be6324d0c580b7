package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sgostarter/i/l"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := l.NewConsoleLoggerWrapper()

	if err := newRootCmd(newApp(logger)).ExecuteContext(ctx); err != nil {
		logger.WithFields(l.ErrorField(err)).Error("tabfunc failed")

		cancel()
		os.Exit(1) // nolint: gocritic
	}
}
