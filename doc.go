// Package pathgrid finds and shows shortest paths on small spatial graphs.
//
// Nodes live at 2-D world positions and are joined by undirected, weighted
// edges. A user picks a start and an end node by pointing at them on screen;
// the shortest path between the two is recomputed with Dijkstra's algorithm
// and marked on the graph for display.
//
// Packages:
//
//	core/       — Graph, Node and Edge, endpoints, per-node search scratch, Frame snapshots
//	gridgraph/  — row-major grid layout: positions, indices, forward neighbours
//	builder/    — graph constructors (simple line, weighted grid) with functional options
//	dijkstra/   — shortest path between two nodes; Recompute marks it on the graph
//	maze/       — randomized depth-first spanning tree carved out of a base graph
//	bfs/        — breadth-first traversal, reachability and connected components
//	pick/       — screen↔world viewport and node pickers (linear scan, R-tree)
//	scene/      — per-frame controller: hover, click-to-select endpoints, zoom camera
//	render/dot  — Graphviz DOT export and SVG rendering
//	render/term — character-cell canvas for terminal display
//	config/     — TOML configuration
//	cmd/pathgrid — command-line interface (path, maze, describe, render, play, sweep)
//
// Quick example:
//
//	g, _ := builder.BuildGraph(builder.Grid(gridgraph.DefaultLayout()), builder.WithSeed(1))
//	s := scene.New(g)
//	_ = s.SetEnd(40)
//	res, err := s.FindPath()
//	if errors.Is(err, dijkstra.ErrNoPath) { ... }
//	fmt.Println(res.Path, res.Cost)
package pathgrid
