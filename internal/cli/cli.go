// Package cli implements the rdfstat command-line interface.
//
// rdfstat loads an N-Quads file into one of the rdf backends and reports
// what the dataset holds: quad count, named graphs, default and union graph
// sizes. It is mostly useful to compare backends on the same input.
//
// # Commands
//
//   - load: load an N-Quads file and print statistics
//   - version: print build information
//
// # Logging
//
// Commands log with charmbracelet/log; --verbose (-v) enables debug output,
// including the container events of the chosen backend. The logger travels
// through context.Context.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "rdfstat"

// Build information, set with -ldflags "-X".
var (
	Version = "dev"
	Commit  = "none"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "rdfstat loads RDF datasets and reports their shape",
		Version:      Version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("{{.Name}} version %s\ncommit: %s\n", Version, Commit))

	root.AddCommand(c.loadCommand())
	root.AddCommand(c.versionCommand())
	return root
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", appName, Version, Commit)
		},
	}
}
