package main

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/fatih/color"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/osbridge-io/osbridge/cmd"
	"github.com/osbridge-io/osbridge/pkg/filesystem"
)

// describeType returns a human-readable file type description.
func describeType(mode filesystem.Mode) string {
	if mode.IsDirectory() {
		return "directory"
	} else if mode.IsSymbolicLink() {
		return "symbolic link"
	} else if mode.IsRegularFile() {
		return "regular file"
	}
	return "other"
}

// printRecord displays a metadata record for the specified path.
func printRecord(path string, record *filesystem.StatRecord) {
	fmt.Println(color.CyanString(path))
	fmt.Println("  Type:", describeType(record.Mode))
	fmt.Printf("  Mode: %04o\n", record.Mode&filesystem.ModePermissionsMask)
	fmt.Printf("  Size: %s (%d bytes)\n", humanize.Bytes(record.Size), record.Size)
	fmt.Printf("  Owner: %d  Group: %d  Links: %d\n",
		record.OwnerID, record.GroupID, record.Links,
	)
	fmt.Printf("  Device: %d  Inode: %d\n", record.DeviceID, record.FileID)
	for _, kind := range []filesystem.TimeKind{
		filesystem.TimeAccess,
		filesystem.TimeModification,
		filesystem.TimeChange,
	} {
		fmt.Printf("  %s time: %s (%d.%09d)\n",
			kind, record.Time(kind).Format("2006-01-02 15:04:05.000000000 -0700"),
			record.Seconds(kind), record.Nanoseconds(kind),
		)
	}
	if birth, ok := record.BirthTime(); ok {
		fmt.Println("  Birth time:", birth.Format("2006-01-02 15:04:05.000000000 -0700"))
	}
}

// statMain is the entry point for the stat command.
func statMain(_ *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) == 0 {
		return errors.New("no paths specified")
	}

	// Query and display each path.
	for _, path := range arguments {
		var record *filesystem.StatRecord
		var err error
		if statConfiguration.follow {
			record, err = filesystem.Stat(path)
		} else {
			record, err = filesystem.Lstat(path)
		}
		if err != nil {
			return errors.Wrapf(err, "unable to query metadata for %s", path)
		}
		printRecord(path, record)
	}

	// Success.
	return nil
}

// statCommand is the stat command.
var statCommand = &cobra.Command{
	Use:   "stat [-L] <path>...",
	Short: "Display filesystem metadata for one or more paths",
	Run:   cmd.Mainify(statMain),
}

// statConfiguration stores configuration for the stat command.
var statConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// follow indicates whether or not to follow symbolic links.
	follow bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := statCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&statConfiguration.help, "help", "h", false, "Show help information")

	// Wire up stat command flags.
	flags.BoolVarP(&statConfiguration.follow, "follow", "L", false, "Follow symbolic links")
}
