// Package cli implements the plantsim command-line interface.
//
// This package provides commands for unit conversion, browsing the unit
// registry and component library, and running isothermal flash
// calculations. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - convert: Convert a value between units resolved from the registry
//   - units: List registered units, optionally as an interactive browser
//   - components: Show the component library (built-in or from TOML)
//   - stream: Report the derived properties of a process stream
//   - flash: Run an isothermal vapor-liquid flash on a feed mixture
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/allena90/plantsim/pkg/buildinfo"
	"github.com/allena90/plantsim/pkg/component"
	"github.com/allena90/plantsim/pkg/units"
)

// appName is the application name used for display.
const appName = "plantsim"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands: the logger, the unit registry,
// and the component library. Commands resolve everything through this
// state instead of package-level singletons.
type CLI struct {
	Logger   *log.Logger
	Registry *units.Registry
	Library  *component.Library
}

// New creates a new CLI instance with a default logger, the full unit
// catalog, and the built-in component library.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		Registry: units.NewRegistry(),
		Library:  component.DefaultLibrary(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Plantsim runs chemical process engineering calculations",
		Long:         `Plantsim is a CLI toolkit for process engineering: dimensional unit conversion, thermodynamic property lookup, and vapor-liquid equilibrium flash calculations over a built-in or user-supplied component library.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.unitsCommand())
	root.AddCommand(c.componentsCommand())
	root.AddCommand(c.streamCommand())
	root.AddCommand(c.flashCommand())

	return root
}

// loadLibrary swaps in a TOML component library when a path is given,
// keeping the built-in library otherwise.
func (c *CLI) loadLibrary(path string) error {
	if path == "" {
		return nil
	}
	lib, err := component.LoadLibrary(path)
	if err != nil {
		return err
	}
	c.Logger.Debugf("loaded %d components from %s", lib.Len(), path)
	c.Library = lib
	return nil
}
