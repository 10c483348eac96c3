package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/osbridge-io/osbridge/cmd"
	"github.com/osbridge-io/osbridge/pkg/logging"
	"github.com/osbridge-io/osbridge/pkg/monitoring"
)

// monitorMain is the entry point for the monitor command.
func monitorMain(_ *cobra.Command, _ []string) error {
	// Load configuration if a path was specified, otherwise use defaults.
	configuration := monitoring.DefaultConfiguration()
	if monitorConfiguration.configuration != "" {
		loaded, err := monitoring.LoadConfiguration(monitorConfiguration.configuration)
		if err != nil {
			return errors.Wrap(err, "unable to load configuration")
		}
		configuration = loaded
	}
	monitoring.SetConfiguration(configuration)

	// Tag this monitoring session so that interleaved logs from multiple
	// invocations can be told apart.
	session := uuid.NewString()
	logger := logging.RootLogger.Sublogger(session[:8])
	logger.Info("monitoring started")

	// Register event logging callbacks. Registration has to precede any
	// monitor start.
	monitoring.RegisterSuspensionCallback(func(reason monitoring.SuspensionReason) {
		logger.Infof("suspension event: %v", reason)
	})
	monitoring.RegisterThermalCallback(func(load int) {
		logger.Infof("thermal load: %d", load)
	})
	monitoring.RegisterMemoryPressureCallback(func(level monitoring.MemoryPressureLevel) {
		logger.Infof("memory pressure: %v", level)
	})
	monitoring.RegisterSystemLoadAdvisoryCallback(func(advisory int) {
		logger.Infof("system load advisory: %d", advisory)
	})

	// Start all monitors.
	monitoring.StartSuspensionMonitoring()
	monitoring.StartThermalMonitoring()
	monitoring.StartMemoryPressureMonitoring()
	monitoring.StartSystemLoadAdvisoryMonitoring()

	// Set up signal handling and wait for termination.
	signalTermination := make(chan os.Signal, 1)
	signal.Notify(signalTermination, cmd.TerminationSignals...)
	<-signalTermination
	fmt.Println()
	logger.Info("monitoring stopped")

	// Success.
	return nil
}

// monitorCommand is the monitor command.
var monitorCommand = &cobra.Command{
	Use:   "monitor [--config <path>]",
	Short: "Log system events until terminated",
	Args:  cobra.NoArgs,
	Run:   cmd.Mainify(monitorMain),
}

// monitorConfiguration stores configuration for the monitor command.
var monitorConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// configuration is the path to a monitoring configuration file.
	configuration string
}

func init() {
	// Grab a handle for the command line flags.
	flags := monitorCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&monitorConfiguration.help, "help", "h", false, "Show help information")

	// Wire up monitor command flags.
	flags.StringVar(&monitorConfiguration.configuration, "config", "", "Specify a configuration file")
}
