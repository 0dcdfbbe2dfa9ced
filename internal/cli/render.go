package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/render/dot"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	format string // "dot" or "svg"
	output string // output file; empty writes to stdout
}

// newRenderCmd creates the render command, which exports the frame of the
// built graph with its default path.
func newRenderCmd(ro *rootOpts) *cobra.Command {
	opts := renderOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Export the graph and its path as DOT or SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatDOT && opts.format != formatSVG {
				return fmt.Errorf("unknown format %q (want %s or %s)", opts.format, formatDOT, formatSVG)
			}
			cfg, err := ro.load(cmd)
			if err != nil {
				return err
			}
			g, err := buildGraph(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return runRender(cmd, g, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func runRender(cmd *cobra.Command, g *core.Graph, opts renderOpts) error {
	logger := loggerFromContext(cmd.Context())
	src := dot.ToDOT(g.Snapshot(core.NoNode))

	data := []byte(src)
	if opts.format == formatSVG {
		timed := startTimer(logger, "svg render")
		svg, err := dot.RenderSVG(cmd.Context(), src)
		if err != nil {
			return err
		}
		timed.stop("bytes", len(svg))
		data = svg
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	logger.Infof("Wrote %s", opts.output)

	return nil
}
