// Package cli implements the svgsprite command-line interface.
//
// # Commands
//
//   - compile: Merge SVG files into sprites for the configured modes
//   - config: Print the resolved configuration
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is passed through context.Context and handed to the compilation runner.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/svgsprite/pkg/buildinfo"
	"github.com/matzehuels/svgsprite/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "svgsprite"

	// defaultMode is compiled when neither flags nor the config file name a mode.
	defaultMode = "css"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: config.NewLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "svgsprite merges SVG files into sprites",
		Long:         `svgsprite merges a set of SVG files into one or more sprites (css, view, defs, symbol, stack) along with stylesheets and example pages.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.compileCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// configFlags are shared by commands that resolve a configuration.
type configFlags struct {
	file      string   // config file (yaml, yml, json or toml)
	dest      string   // output root, overrides the file
	modes     []string // requested modes, override the file
	shapeDest string   // intermediate shape directory
}

func (f *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "config", "c", "", "configuration file (yaml, json or toml)")
	cmd.Flags().StringVarP(&f.dest, "dest", "d", "", "output directory")
	cmd.Flags().StringSliceVarP(&f.modes, "mode", "m", nil, "sprite mode(s): css, view, defs, symbol, stack (comma-separated)")
	cmd.Flags().StringVar(&f.shapeDest, "shape-dest", "", "also write every processed shape to this directory")
}

// raw loads the config file and applies flag overrides.
func (f *configFlags) raw(logger *log.Logger) (config.Raw, error) {
	var raw config.Raw
	if f.file != "" {
		var err error
		if raw, err = config.Load(f.file); err != nil {
			return config.Raw{}, err
		}
		logger.Debug("loaded configuration", "file", f.file)
	}
	if f.dest != "" {
		raw.Dest = f.dest
	}
	if f.shapeDest != "" {
		raw.Shape.Dest = f.shapeDest
	}
	if len(f.modes) > 0 {
		requested := make(map[string]any, len(f.modes))
		for _, m := range f.modes {
			if v, ok := raw.Mode[m]; ok {
				requested[m] = v
				continue
			}
			requested[m] = true
		}
		raw.Mode = requested
	}
	if len(raw.Mode) == 0 {
		logger.Info("no mode configured, compiling " + defaultMode)
		raw.Mode = map[string]any{defaultMode: true}
	}
	raw.Log = logger
	return raw, nil
}
