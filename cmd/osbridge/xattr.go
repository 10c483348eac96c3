package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/osbridge-io/osbridge/cmd"
	"github.com/osbridge-io/osbridge/pkg/filesystem"
	"github.com/osbridge-io/osbridge/pkg/syserror"
)

// xattrMain is the entry point for the xattr command.
func xattrMain(_ *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 2 {
		return errors.New("invalid number of arguments")
	}
	path, name := arguments[0], arguments[1]

	// Select the read function based on link handling.
	read := filesystem.LGetAttribute
	if xattrConfiguration.follow {
		read = filesystem.GetAttribute
	}

	// Probe the attribute size.
	size, err := read(path, name, nil)
	if err != nil {
		if errors.Is(err, syserror.ErrNoAttribute) {
			return errors.Errorf("attribute %s not present on %s", name, path)
		}
		return errors.Wrap(err, "unable to query attribute size")
	}

	// Read the attribute value. A zero-length attribute needs no second read.
	buffer := make([]byte, size)
	if size > 0 {
		if _, err := read(path, name, buffer); err != nil {
			return errors.Wrap(err, "unable to read attribute")
		}
	}

	// Write the raw value. Attribute values are arbitrary bytes, so avoid any
	// formatting on the way out.
	if _, err := os.Stdout.Write(buffer); err != nil {
		return errors.Wrap(err, "unable to write attribute value")
	}
	fmt.Println()

	// Success.
	return nil
}

// xattrCommand is the xattr command.
var xattrCommand = &cobra.Command{
	Use:   "xattr [-L] <path> <name>",
	Short: "Read an extended attribute from a file",
	Run:   cmd.Mainify(xattrMain),
}

// xattrConfiguration stores configuration for the xattr command.
var xattrConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// follow indicates whether or not to follow symbolic links.
	follow bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := xattrCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&xattrConfiguration.help, "help", "h", false, "Show help information")

	// Wire up xattr command flags.
	flags.BoolVarP(&xattrConfiguration.follow, "follow", "L", false, "Follow symbolic links")
}
