package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathgrid/bfs"
	"github.com/katalvlaran/pathgrid/config"
)

// sweepResult is the path of one carved maze. spanning is set when every
// node of the maze is reachable from its start.
type sweepResult struct {
	seed     int64
	hops     int
	cost     float64
	reached  bool
	spanning bool
}

// newSweepCmd creates the sweep command. It carves --count mazes with
// consecutive seeds starting at the configured seed. Each job builds its
// own graph, so no graph is shared between goroutines.
func newSweepCmd(ro *rootOpts) *cobra.Command {
	var count, workers int

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Carve many mazes concurrently and report path statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}
			cfg, err := ro.load(cmd)
			if err != nil {
				return err
			}
			cfg.Topology = config.TopologyMaze

			timed := startTimer(loggerFromContext(cmd.Context()), "sweep")
			results := make([]sweepResult, count)
			eg, ctx := errgroup.WithContext(cmd.Context())
			if workers > 0 {
				eg.SetLimit(workers)
			}
			for i := range results {
				job := cfg
				job.Seed = cfg.Seed + int64(i)
				eg.Go(func() error {
					g, err := buildGraph(ctx, job)
					if err != nil {
						return fmt.Errorf("seed %d: %w", job.Seed, err)
					}
					path := g.Path()
					cost, _ := g.PathCost(path)
					n, err := bfs.CountReachable(g, g.Start())
					if err != nil {
						return fmt.Errorf("seed %d: %w", job.Seed, err)
					}
					results[i] = sweepResult{
						seed:     job.Seed,
						hops:     len(path) - 1,
						cost:     cost,
						reached:  len(path) > 0,
						spanning: n == g.NumNodes(),
					}
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}
			timed.stop("mazes", count, "workers", workers)

			return writeSweep(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 8, "number of mazes")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "maximum concurrent jobs (0 = unlimited)")

	return cmd
}

// writeSweep prints one line per seed followed by min/mean/max of the
// reached paths.
func writeSweep(w io.Writer, results []sweepResult) error {
	var (
		reached          int
		spanning         int
		minHops, maxHops int
		sumHops          int
		minCost, maxCost float64
		sumCost          float64
	)
	for _, r := range results {
		if r.spanning {
			spanning++
		}
		if !r.reached {
			if _, err := fmt.Fprintf(w, "seed %d: no path\n", r.seed); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "seed %d: hops %d cost %g\n", r.seed, r.hops, r.cost); err != nil {
			return err
		}
		if reached == 0 || r.hops < minHops {
			minHops = r.hops
		}
		if reached == 0 || r.hops > maxHops {
			maxHops = r.hops
		}
		if reached == 0 || r.cost < minCost {
			minCost = r.cost
		}
		if reached == 0 || r.cost > maxCost {
			maxCost = r.cost
		}
		sumHops += r.hops
		sumCost += r.cost
		reached++
	}

	if _, err := fmt.Fprintf(w, "mazes: %d reached: %d spanning: %d\n", len(results), reached, spanning); err != nil {
		return err
	}
	if reached == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "hops: min %d mean %.2f max %d\ncost: min %g mean %.2f max %g\n",
		minHops, float64(sumHops)/float64(reached), maxHops,
		minCost, sumCost/float64(reached), maxCost)

	return err
}
