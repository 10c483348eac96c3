package cmd

import (
	"fmt"
	"os"
)

// Warning writes a warning message to standard error.
func Warning(message string) {
	fmt.Fprintln(os.Stderr, "Warning:", message)
}

// Error writes an error message to standard error.
func Error(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
}

// Fatal writes an error message to standard error and terminates the process
// with an error exit code.
func Fatal(err error) {
	Error(err)
	os.Exit(1)
}
