package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

const ExitCodeMainError = 1

const ApiVersion = "v1"

const shutdownTimeout = 5 * time.Second

// RunApp serves the API until ctx is cancelled or the listener fails.
func RunApp(ctx context.Context, args []string, logOutput io.Writer) error {
	flags := flag.NewFlagSet("spreadsheet", flag.ContinueOnError)
	configPath := flags.String("config", "", "Path to config.yaml (optional)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	config, err := LoadConfig(*configPath, os.LookupEnv)
	if err != nil {
		return err
	}

	logger := NewLogger(logOutput, config.SlogLevel())
	gin.SetMode(gin.ReleaseMode)

	serviceContainer, err := BuildServiceContainer(config, logger)
	if err != nil {
		return err
	}
	defer serviceContainer.Database.Close()

	server := &http.Server{
		Addr:              config.Listen,
		Handler:           serviceContainer.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()
	logger.Info("listening", slog.String("addr", config.Listen), slog.String("basePath", config.BasePath))

	select {
	case err = <-serveErr:
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err = server.Shutdown(shutdownCtx)
		logger.Info("stopped")
	}

	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	return err
}

func NewLogger(output io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level}))
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
		return ExitCodeMainError
	}

	return 0
}
