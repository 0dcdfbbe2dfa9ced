package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathgrid/builder"
	"github.com/katalvlaran/pathgrid/config"
	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/maze"
)

// buildGraph builds the configured topology with its default endpoints and
// initial path.
func buildGraph(ctx context.Context, cfg config.Config) (*core.Graph, error) {
	var (
		g   *core.Graph
		err error
	)
	switch cfg.Topology {
	case config.TopologySimple:
		g, err = builder.BuildGraph(builder.Simple())
	case config.TopologyGrid:
		g, err = builder.BuildGraph(builder.Grid(cfg.Layout()), cfg.BuilderOptions()...)
	case config.TopologyMaze:
		g, err = buildMaze(ctx, cfg)
	default:
		err = fmt.Errorf("%w: topology %q", config.ErrInvalidConfig, cfg.Topology)
	}
	if err != nil {
		return nil, err
	}

	loggerFromContext(ctx).Debug("graph built",
		"topology", cfg.Topology, "nodes", g.NumNodes(), "edges", g.NumEdges())

	return g, nil
}

// buildMaze carves a maze out of the configured grid into an empty graph.
// The grid weights and the carve order share cfg.Seed.
func buildMaze(ctx context.Context, cfg config.Config) (*core.Graph, error) {
	opts := append(cfg.BuilderOptions(), builder.WithoutInitialPath())
	base, err := builder.BuildGraph(builder.Grid(cfg.Layout()), opts...)
	if err != nil {
		return nil, err
	}
	dst, err := builder.BuildGraph(builder.Empty())
	if err != nil {
		return nil, err
	}
	err = maze.CarveInto(base, dst,
		maze.WithSeed(cfg.Seed),
		maze.WithMethod(cfg.Maze.Method),
		maze.WithContext(ctx),
	)
	if err != nil {
		return nil, err
	}

	return dst, nil
}

// formatPath joins node ids with spaces; an empty path prints as "none".
func formatPath(path []int) string {
	if len(path) == 0 {
		return "none"
	}
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, " ")
}
