package main

import (
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// denom.ok runs the app and expects it to succeed.
func mockMainShouldSucceed() int {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("Fatal error", slog.Any("err", err))
		return 1
	}
	return 0
}

// denom.error runs the app and expects it to fail.
func mockMainShouldFail() int {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("Fatal error", slog.Any("err", err))
		return 0
	}
	fmt.Fprintf(os.Stderr, "expected an error but none was returned\n")
	return 1
}

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"denom.ok":    mockMainShouldSucceed,
		"denom.error": mockMainShouldFail,
	}))
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:           "tests",
		UpdateScripts: os.Getenv("UPDATE_SNAPSHOTS") == "1",
	})
}
