package main

import (
	"os"
	"os/exec"

	"github.com/joho/godotenv"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/osbridge-io/osbridge/cmd"
	"github.com/osbridge-io/osbridge/pkg/power"
)

// caffeinateMain is the entry point for the caffeinate command.
func caffeinateMain(_ *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) == 0 {
		return errors.New("no command specified")
	}

	// Inject environment variables from a dotenv file, if requested.
	if caffeinateConfiguration.envFile != "" {
		if err := godotenv.Load(caffeinateConfiguration.envFile); err != nil {
			return errors.Wrap(err, "unable to load environment file")
		}
	}

	// Run the command with system sleep disabled. Platforms without an
	// inhibition mechanism still run the command.
	err := power.WhileSleepDisabled(func() error {
		process := exec.Command(arguments[0], arguments[1:]...)
		process.Stdin = os.Stdin
		process.Stdout = os.Stdout
		process.Stderr = os.Stderr
		return process.Run()
	})
	if err != nil {
		// Propagate the child's exit code where available.
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			os.Exit(exit.ExitCode())
		}
		return errors.Wrap(err, "unable to run command")
	}

	// Success.
	return nil
}

// caffeinateCommand is the caffeinate command.
var caffeinateCommand = &cobra.Command{
	Use:   "caffeinate [--env-file <path>] -- <command> [<args>...]",
	Short: "Run a command with system sleep disabled",
	Run:   cmd.Mainify(caffeinateMain),
}

// caffeinateConfiguration stores configuration for the caffeinate command.
var caffeinateConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// envFile is the path to a dotenv file to load before running the command.
	envFile string
}

func init() {
	// Grab a handle for the command line flags.
	flags := caffeinateCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&caffeinateConfiguration.help, "help", "h", false, "Show help information")

	// Wire up caffeinate command flags.
	flags.StringVar(&caffeinateConfiguration.envFile, "env-file", "", "Load environment variables from a file")
}
