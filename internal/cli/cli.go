// Package cli implements the listview command-line interface.
package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/listview/pkg/buildinfo"
	"github.com/matzehuels/listview/pkg/config"
	"github.com/matzehuels/listview/pkg/engine"
	"github.com/matzehuels/listview/pkg/listview"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "listview"

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

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "listview draws linked lists as they change",
		Long: `listview replays a script of list operations and writes an HTML transcript
with a Graphviz diagram after every mutation. Nodes added since the previous
diagram are drawn in one color and changed fields or references in another.`,
		Version:      buildinfo.Resolved(),
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.runCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.callsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Options Helpers
// =============================================================================

// sessionOpts are the flags shared by commands that replay a script.
type sessionOpts struct {
	config      string // explicit config file; empty searches XDG
	noHighlight bool   // draw every diagram in the default colors
	discover    bool   // locate node fields by reflection
	skipReads   bool   // leave read-only operations out of the transcript
}

func (o *sessionOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.config, "config", "c", "", "config file (default $XDG_CONFIG_HOME/listview/config.toml)")
	cmd.Flags().BoolVar(&o.noHighlight, "no-highlight", false, "do not color new and modified elements")
	cmd.Flags().BoolVar(&o.discover, "discover", false, "locate node fields by reflection instead of the list's accessor")
	cmd.Flags().BoolVar(&o.skipReads, "skip-reads", false, "omit read-only operations from the transcript")
}

// load reads the config file and applies the flags on top of it.
func (o *sessionOpts) load() (config.Config, error) {
	cfg, err := config.Load(o.config)
	if err != nil {
		return cfg, err
	}
	if o.noHighlight {
		cfg.Render.Highlight = false
	}
	if o.skipReads {
		cfg.Transcript.ReadOperations = false
	}
	return cfg, nil
}

func (c *CLI) viewOptions(cfg config.Config, o *sessionOpts) listview.Options {
	eopts := engine.DefaultOptions()
	eopts.Render = cfg.DotOptions()
	eopts.Name = appName
	eopts.Logger = c.Logger
	return listview.Options{
		Engine:    eopts,
		Discover:  o.discover,
		SkipReads: !cfg.Transcript.ReadOperations,
		Logger:    c.Logger,
	}
}

// defaultOutput replaces the script's extension with ext.
func defaultOutput(script, ext string) string {
	base := strings.TrimSuffix(script, filepath.Ext(script))
	if base == "" || base == "-" {
		base = appName
	}
	return base + ext
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
