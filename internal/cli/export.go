package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/listview/pkg/errors"
	"github.com/matzehuels/listview/pkg/render/dot"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output  string   // base path; the format is appended as the extension
	formats []string // svg, png, jpg, dot
}

func (c *CLI) exportCommand() *cobra.Command {
	var formatsStr string
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export FILE.dot",
		Short: "Lay out a DOT diagram with Graphviz",
		Long:  `Lay out a DOT file, such as one written by "run --dot-dir", and save it as SVG, PNG, or JPG.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			return c.runExport(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (default FILE without extension)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, jpg, dot (comma-separated)")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, input string, opts *exportOpts) error {
	formats := make([]dot.Format, 0, len(opts.formats))
	for _, f := range opts.formats {
		format, err := dot.ParseFormat(f)
		if err != nil {
			return err
		}
		formats = append(formats, format)
	}

	src, err := os.ReadFile(input)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "diagram %s", input)
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", input)
	}

	base := opts.output
	if base == "" {
		base = defaultOutput(input, "")
	}

	prog := newProgress(c.Logger)
	spin := newSpinner(ctx, "Running Graphviz...")
	spin.Start()

	var written []string
	for _, format := range formats {
		data, err := dot.Export(ctx, string(src), format)
		if err != nil {
			spin.StopWithError("Export failed")
			return err
		}
		path := fmt.Sprintf("%s.%s", base, format)
		if path == input {
			path = fmt.Sprintf("%s.out.%s", base, format)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			spin.StopWithError("Export failed")
			return errors.Wrap(errors.ErrCodeSink, err, "write %s", path)
		}
		written = append(written, path)
		c.Logger.Debug("Exported diagram", "format", format, "bytes", len(data))
	}

	if spin.Cancelled() {
		spin.Stop()
		return ctx.Err()
	}
	spin.StopWithSuccess(fmt.Sprintf("Exported %d file(s)", len(written)))
	for _, p := range written {
		printFile(p)
	}
	prog.done("Exported diagram", "input", input)
	return nil
}
