package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/stage"
)

func writeStage(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunCheckReturnsError(t *testing.T) {
	flagRows, flagCols = 2, 3
	t.Cleanup(func() { flagRows, flagCols = 20, 20 })

	good := writeStage(t, "good.stg", "1 0 2\n0 3 0\n")
	bad := writeStage(t, "bad.stg", "1 0 2\n0 9 0\n")

	if err := runCheck(checkCmd, []string{good}); err != nil {
		t.Fatalf("runCheck(good) = %v, expected nil", err)
	}

	err := runCheck(checkCmd, []string{good, bad})
	if !errors.Is(err, stage.ErrToken) {
		t.Errorf("runCheck(bad) = %v, expected ErrToken", err)
	}
}

func TestRunCheckClosesLogFile(t *testing.T) {
	flagRows, flagCols = 2, 3
	flagLogFile = filepath.Join(t.TempDir(), "check.log")
	flagLogLevel = "debug"
	t.Cleanup(func() {
		flagRows, flagCols = 20, 20
		flagLogFile, flagLogLevel = "", "info"
	})

	bad := writeStage(t, "bad.stg", "1 0\n")
	if err := runCheck(checkCmd, []string{bad}); err == nil {
		t.Fatal("expected an error for a short row")
	}

	// The deferred close has run, so the rejection is on disk.
	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "stage rejected") {
		t.Errorf("log file = %q, expected the rejection", data)
	}
}
