package cli

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fatih/color"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	successColor = color.New(color.FgGreen)
	headerColor  = color.New(color.FgCyan)
)

// PrintError writes err to w in red.
func PrintError(w io.Writer, err error) {
	errorColor.Fprintf(w, "Error: %v\n", err)
}

func printSuccess(w io.Writer, format string, args ...any) {
	successColor.Fprintf(w, "✓ "+format+"\n", args...)
}

func printHeader(w io.Writer, path string, at time.Time) {
	headerColor.Fprintf(w, "-- %s (%s)\n", path, at.Format("15:04:05"))
}

// newLogger returns a text logger on w; debug lowers the level from warn to debug.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// writeStatements prints one statement per line.
func writeStatements(w io.Writer, statements []string) error {
	for _, stmt := range statements {
		if _, err := fmt.Fprintln(w, stmt); err != nil {
			return err
		}
	}
	return nil
}
