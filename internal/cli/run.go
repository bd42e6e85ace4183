package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/listview/pkg/engine"
	"github.com/matzehuels/listview/pkg/errors"
	"github.com/matzehuels/listview/pkg/listview"
	"github.com/matzehuels/listview/pkg/script"
	"github.com/matzehuels/listview/pkg/transcript"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	sessionOpts
	output string // transcript path; defaults to the script name with .html
	inline bool   // embed SVG instead of rendering in the browser
	dotDir string // also write each diagram's DOT source here
}

func (c *CLI) runCommand() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run SCRIPT.toml",
		Short: "Replay a script and write an HTML transcript",
		Long: `Replay the operations of a TOML script against a fresh list and write an HTML
transcript with one diagram per mutation.

Each [[op]] table names a call and its arguments:

  kind = "linked"   # or "circular"

  [[op]]
  call = "add"
  args = ["A"]

  [[op]]
  call = "insert"
  args = [0, "B"]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScript(cmd.Context(), args[0], &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "transcript file (default SCRIPT.html)")
	cmd.Flags().BoolVar(&opts.inline, "inline", false, "embed SVG rendered by Graphviz instead of loading d3-graphviz")
	cmd.Flags().StringVar(&opts.dotDir, "dot-dir", "", "also write every diagram as a numbered .dot file to this directory")

	return cmd
}

func (c *CLI) runScript(ctx context.Context, path string, opts *runOpts) error {
	prog := newProgress(c.Logger)

	cfg, err := opts.load()
	if err != nil {
		return err
	}
	if opts.inline {
		cfg.Transcript.InlineSVG = true
	}

	s, err := script.Load(path)
	if err != nil {
		return err
	}
	if s.Title != "" {
		cfg.Transcript.Title = s.Title
	}
	c.Logger.Debug("Loaded script", "path", path, "kind", s.Kind, "ops", len(s.Ops))

	output := opts.output
	if output == "" {
		output = defaultOutput(path, ".html")
	}
	doc, err := transcript.Create(output, cfg.TranscriptOptions())
	if err != nil {
		return err
	}

	var t listview.Transcript = doc
	if opts.dotDir != "" {
		if err := os.MkdirAll(opts.dotDir, 0o755); err != nil {
			doc.Close()
			return errors.Wrap(errors.ErrCodeSink, err, "create %s", opts.dotDir)
		}
		t = &dotFiles{Transcript: doc, dir: opts.dotDir}
	}

	if err := ctx.Err(); err != nil {
		doc.Close()
		return err
	}

	v, runErr := script.Run(s, t, c.viewOptions(cfg, &opts.sessionOpts))
	if v == nil {
		doc.Close()
		return runErr
	}
	diagrams := v.Engine().Renders()
	if err := v.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		printWarning("Stopped early; transcript is partial")
		printFile(output)
		return runErr
	}

	prog.done("Replayed script", "ops", len(s.Ops), "diagrams", diagrams)
	printSuccess("Transcript written")
	printFile(output)
	printStats(len(s.Ops), diagrams)
	if opts.dotDir != "" {
		printFile(opts.dotDir)
	}
	printNextStep("Step through it in the terminal", fmt.Sprintf("%s browse %s", appName, path))
	return nil
}

// dotFiles writes every diagram to dir before passing it on.
type dotFiles struct {
	listview.Transcript
	dir string
}

func (d *dotFiles) WriteDiagram(dg *engine.Diagram) error {
	name := filepath.Join(d.dir, fmt.Sprintf("diagram-%03d.dot", dg.Seq))
	if err := os.WriteFile(name, []byte(dg.DOT), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeSink, err, "write %s", name)
	}
	return d.Transcript.WriteDiagram(dg)
}

func (d *dotFiles) Close() error {
	if c, ok := d.Transcript.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
