package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func _freeAddr(t *testing.T) string {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()
	return listener.Addr().String()
}

func TestRunApp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		addr := _freeAddr(t)
		t.Setenv("DATABASE_FILEPATH", filepath.Join(t.TempDir(), "spreadsheet.db"))
		t.Setenv("LISTEN_ADDR", addr)
		t.Setenv("AUTH_TOKEN", "")

		ctx, cancel := context.WithCancel(context.Background())
		appErr := make(chan error, 1)
		go func() {
			appErr <- RunApp(ctx, nil, io.Discard)
		}()

		var err error
		var res *http.Response
		client := http.Client{
			Timeout: time.Second * 2,
		}
		for i := 0; i < 20; i++ {
			time.Sleep(50 * time.Millisecond)
			res, err = client.Get("http://" + addr + "/healthcheck")
			if err == nil {
				break
			}
		}

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		body, err := io.ReadAll(res.Body)
		_ = res.Body.Close()
		assert.NoError(t, err)
		assert.Equal(t, "health", string(body))

		cancel()
		select {
		case err = <-appErr:
			assert.NoError(t, err)
		case <-time.After(shutdownTimeout + time.Second):
			t.Fatal("RunApp did not stop after cancellation")
		}
	})

	t.Run("database open failure", func(t *testing.T) {
		t.Setenv("DATABASE_FILEPATH", filepath.Join(t.TempDir(), "missing", "spreadsheet.db"))
		t.Setenv("LISTEN_ADDR", _freeAddr(t))

		err := RunApp(context.Background(), nil, io.Discard)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no such file or directory")
	})

	t.Run("missing config file", func(t *testing.T) {
		err := RunApp(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "none.yaml")}, io.Discard)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "config")
	})

	t.Run("unknown flag", func(t *testing.T) {
		err := RunApp(context.Background(), []string{"-nope"}, io.Discard)

		assert.Error(t, err)
	})
}

func TestHandleExitError(t *testing.T) {
	t.Run("Handle exit error", func(t *testing.T) {
		var actualExitCode int
		var out bytes.Buffer

		testCases := map[error]int{
			errors.New("dummy error"): ExitCodeMainError,
			nil:                       0,
		}

		for err, expectedCode := range testCases {
			out.Reset()
			actualExitCode = HandleExitError(&out, err)

			assert.Equal(t, expectedCode, actualExitCode)
			if err == nil {
				assert.Empty(t, out.String(), "Error is not empty")
			} else {
				assert.Contains(t, out.String(), err.Error(), "error output hasn't error description")
			}
		}
	})
}
