package main

import (
	"fmt"
	"strconv"
	"syscall"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/osbridge-io/osbridge/cmd"
	"github.com/osbridge-io/osbridge/pkg/syserror"
)

// errnoMain is the entry point for the errno command.
func errnoMain(_ *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) < 1 || len(arguments) > 2 {
		return errors.New("invalid number of arguments")
	}

	// Parse the error number.
	number, err := strconv.ParseUint(arguments[0], 10, 32)
	if err != nil {
		return errors.Wrap(err, "unable to parse error number")
	}
	errno := syscall.Errno(number)

	// Extract the context, if any.
	context := "error"
	if len(arguments) == 2 {
		context = arguments[1]
	}

	// Display the translation.
	fmt.Println("Name:", syserror.Name(errno))
	fmt.Println("Kind:", syserror.Classify(errno))
	fmt.Println("Message:", syserror.Message(errno, context))

	// Success.
	return nil
}

// errnoCommand is the errno command.
var errnoCommand = &cobra.Command{
	Use:   "errno <number> [<context>]",
	Short: "Translate a system error number",
	Run:   cmd.Mainify(errnoMain),
}

// errnoConfiguration stores configuration for the errno command.
var errnoConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := errnoCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&errnoConfiguration.help, "help", "h", false, "Show help information")
}
