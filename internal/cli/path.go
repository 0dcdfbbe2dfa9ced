package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/bfs"
	"github.com/katalvlaran/pathgrid/config"
	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/dijkstra"
	"github.com/katalvlaran/pathgrid/scene"
)

// newPathCmd creates the path command. Without --start or --end the
// default endpoints (first and last node) are used. --hops ignores edge
// costs and reports a fewest-edge route instead of the cheapest one.
func newPathCmd(ro *rootOpts) *cobra.Command {
	var (
		start, end int
		hops       bool
	)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Compute the shortest path between two nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ro.load(cmd)
			if err != nil {
				return err
			}
			g, err := buildGraph(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			s := scene.New(g, scene.WithLogger(loggerFromContext(cmd.Context())))
			if cmd.Flags().Changed("start") {
				if err := s.SetStart(start); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("end") {
				if err := s.SetEnd(end); err != nil {
					return err
				}
			}
			var path []int
			if hops {
				path, err = fewestHops(cmd.Context(), g)
			} else {
				var res dijkstra.Result
				res, err = s.FindPath()
				path = res.Path
			}
			if err != nil {
				return fmt.Errorf("path %d → %d: %w", g.Start(), g.End(), err)
			}

			cost, _ := g.PathCost(path)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path: %s\n", formatPath(path))
			fmt.Fprintf(out, "cost: %g\n", cost)
			fmt.Fprintf(out, "hops: %d\n", len(path)-1)
			return nil
		},
	}

	cmd.Flags().IntVar(&start, "start", core.NoNode, "start node id (default: first node)")
	cmd.Flags().IntVar(&end, "end", core.NoNode, "end node id (default: last node)")
	cmd.Flags().BoolVar(&hops, "hops", false, "minimise the number of edges instead of the cost")

	return cmd
}

// fewestHops returns a route with the fewest edges between the endpoints of g.
func fewestHops(ctx context.Context, g *core.Graph) ([]int, error) {
	res, err := bfs.BFS(g, g.Start(), bfs.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return res.PathTo(g.End())
}

// newMazeCmd creates the maze command, which carves a maze from the
// configured grid regardless of --topology.
func newMazeCmd(ro *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "maze",
		Short: "Carve a maze from the configured grid and report its path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ro.load(cmd)
			if err != nil {
				return err
			}
			cfg.Topology = config.TopologyMaze

			timed := startTimer(loggerFromContext(cmd.Context()), "carve")
			g, err := buildGraph(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			timed.stop("cols", cfg.Grid.Cols, "rows", cfg.Grid.Rows, "method", cfg.Maze.Method)

			path := g.Path()
			cost, _ := g.PathCost(path)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes: %d\n", g.NumNodes())
			fmt.Fprintf(out, "edges: %d\n", g.NumEdges())
			fmt.Fprintf(out, "connected: %t\n", bfs.IsConnected(g))
			fmt.Fprintf(out, "components: %d\n", len(bfs.Components(g)))
			if n, err := bfs.CountReachable(g, g.Start()); err == nil {
				fmt.Fprintf(out, "reachable: %d\n", n)
			}
			fmt.Fprintf(out, "path: %s\n", formatPath(path))
			fmt.Fprintf(out, "cost: %g\n", cost)
			return nil
		},
	}
}

// newDescribeCmd creates the describe command.
func newDescribeCmd(ro *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print one line of data per node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ro.load(cmd)
			if err != nil {
				return err
			}
			g, err := buildGraph(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return scene.New(g).Describe(cmd.OutOrStdout())
		},
	}
}

// newConfigCmd creates the config command.
func newConfigCmd(ro *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ro.load(cmd)
			if err != nil {
				return err
			}
			return cfg.Encode(cmd.OutOrStdout())
		},
	}
}
