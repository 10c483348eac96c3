package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/osbridge-io/osbridge/cmd"
	"github.com/osbridge-io/osbridge/pkg/filesystem/watching"
)

// watchMain is the entry point for the watch command.
func watchMain(_ *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 1 {
		return errors.New("invalid number of arguments")
	}
	root := arguments[0]

	// Set up watch cancellation on termination signals.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signalTermination := make(chan os.Signal, 1)
	signal.Notify(signalTermination, cmd.TerminationSignals...)
	go func() {
		<-signalTermination
		cancel()
	}()

	// Print a line for each watch strobe.
	events := make(chan struct{}, 1)
	go func() {
		for range events {
			fmt.Println(time.Now().Format(time.RFC3339), "change detected")
		}
	}()

	// Watch until cancelled. A watch terminated by a termination signal isn't
	// an error.
	err := watching.Watch(ctx, root, events,
		time.Duration(watchConfiguration.pollingInterval)*time.Second,
	)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// watchCommand is the watch command.
var watchCommand = &cobra.Command{
	Use:   "watch <path>",
	Short: "Watch a path for filesystem metadata changes",
	Run:   cmd.Mainify(watchMain),
}

// watchConfiguration stores configuration for the watch command.
var watchConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// pollingInterval is the fallback polling interval in seconds.
	pollingInterval uint32
}

func init() {
	// Grab a handle for the command line flags.
	flags := watchCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&watchConfiguration.help, "help", "h", false, "Show help information")

	// Wire up watch command flags.
	flags.Uint32Var(&watchConfiguration.pollingInterval, "polling-interval", 10,
		"Specify the polling interval in seconds",
	)
}
