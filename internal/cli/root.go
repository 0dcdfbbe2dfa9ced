package cli

import (
	"context"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/config"
)

// rootOpts holds the persistent flags shared by every command.
type rootOpts struct {
	verbose    bool
	configPath string
	seed       int64
	topology   string
}

// Execute runs the pathgrid CLI under ctx and returns the error of the
// failed command, if any. Errors are not printed.
//
// Logging goes to stderr at info level, or debug level with --verbose.
// The logger is attached to the command context.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var opts rootOpts

	root := &cobra.Command{
		Use:           "pathgrid",
		Short:         "pathgrid finds shortest paths on grid and maze graphs",
		Long:          `pathgrid builds simple, grid or maze graphs, finds shortest paths between selected nodes with Dijkstra's algorithm and shows them in the terminal or as Graphviz output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	pf.Int64Var(&opts.seed, "seed", config.DefaultSeed, "random seed for weights and mazes")
	pf.StringVarP(&opts.topology, "topology", "t", "", "graph topology: simple, grid or maze")

	root.AddCommand(newPathCmd(&opts))
	root.AddCommand(newMazeCmd(&opts))
	root.AddCommand(newDescribeCmd(&opts))
	root.AddCommand(newRenderCmd(&opts))
	root.AddCommand(newPlayCmd(&opts))
	root.AddCommand(newSweepCmd(&opts))
	root.AddCommand(newConfigCmd(&opts))

	return root
}

// load resolves the configuration: defaults, then the config file, then
// flags that were set explicitly.
func (o *rootOpts) load(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, err
		}
		loggerFromContext(cmd.Context()).Debug("config loaded", "file", o.configPath)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = o.seed
	}
	if o.topology != "" {
		cfg.Topology = o.topology
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}
