package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/mattn/go-isatty"

	"github.com/spf13/cobra"

	"github.com/osbridge-io/osbridge/pkg/osbridge"
)

// rootMain is the entry point for the root command.
func rootMain(command *cobra.Command, _ []string) error {
	// If no command was given, show help information.
	command.Help()

	// Success.
	return nil
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:          "osbridge",
	Version:      osbridge.Version,
	Short:        "Observe UNIX host state for build tooling",
	RunE:         rootMain,
	SilenceUsage: true,
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Disable Cobra's command sorting behavior. By default, it sorts commands
	// alphabetically in the help output.
	cobra.EnableCommandSorting = false

	// Disable Cobra's use of mousetrap since this tool is UNIX-focused.
	cobra.MousetrapHelpText = ""

	// Disable colorization if standard output isn't a terminal.
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	// Set the template used by the version flag.
	rootCommand.SetVersionTemplate("osbridge version {{ .Version }}\n")

	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Register commands. We do this here (rather than in individual init
	// functions) so that we can control the order.
	rootCommand.AddCommand(
		statCommand,
		xattrCommand,
		errnoCommand,
		monitorCommand,
		caffeinateCommand,
		watchCommand,
		versionCommand,
	)
}

func main() {
	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
