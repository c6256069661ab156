// Package errors prints command failures for the terminal.
package errors

import (
	"fmt"
	"os"

	"github.com/julianstephens/zoneline/internal/logger"
)

const prefix = "Error: "

// exit is swapped out in tests.
var exit = os.Exit

// Format renders err for stderr. A nil error formats as "".
func Format(err error) string {
	if err == nil {
		return ""
	}
	return prefix + err.Error()
}

// Formatf is Format for a message built from a template.
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf(prefix+format, args...)
}

// Fatal records err in the log file, prints it and exits with status 1.
// main passes the command result straight in, so nil is a no-op.
func Fatal(err error) {
	if err == nil {
		return
	}
	fail(err.Error(), Format(err))
}

// Fatalf is Fatal for a message built from a template.
func Fatalf(format string, args ...interface{}) {
	fail(fmt.Sprintf(format, args...), Formatf(format, args...))
}

func fail(cause, msg string) {
	logger.Error("zoneline exited", "cause", cause)
	fmt.Fprintln(os.Stderr, msg)
	exit(1)
}
