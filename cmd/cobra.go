package cmd

import (
	"github.com/spf13/cobra"
)

// Mainify converts an error-returning Cobra entry point into a standard Cobra
// entry point. Entry points can then rely on defer-based cleanup, which
// wouldn't run if they terminated the process directly: the error propagates
// out of the entry point first and only then terminates the process.
func Mainify(entry func(*cobra.Command, []string) error) func(*cobra.Command, []string) {
	return func(command *cobra.Command, arguments []string) {
		if err := entry(command, arguments); err != nil {
			Fatal(err)
		}
	}
}
