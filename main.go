package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	exitCode := HandleExitError(os.Stderr, RunApp(ctx, os.Args[1:], os.Stdout))
	stop()
	os.Exit(exitCode)
}
