// Package maze defines options and errors for carving a spanning-tree maze
// out of a base graph with a randomized depth-first search.
package maze

import (
	"context"
	"errors"
	"math/rand"
)

var (
	// ErrGraphNil is returned when a nil source or destination graph is passed.
	ErrGraphNil = errors.New("maze: graph is nil")

	// ErrEmptyGraph indicates a source graph without nodes.
	ErrEmptyGraph = errors.New("maze: source graph has no nodes")

	// ErrOutputNotEmpty indicates a destination graph that already has nodes.
	ErrOutputNotEmpty = errors.New("maze: destination graph must be empty")

	// ErrNeedRandSource indicates that no random source was configured
	// (WithSeed or WithRand).
	ErrNeedRandSource = errors.New("maze: rng is required")

	// ErrUnknownMethod indicates a Method other than MethodDFS or MethodKruskal.
	ErrUnknownMethod = errors.New("maze: unknown method")
)

// Carving methods.
const (
	// MethodDFS carves with a randomized depth-first search from node 0.
	MethodDFS = "dfs"
	// MethodKruskal carves with randomized Kruskal: shuffled edges joined
	// through a union-find.
	MethodKruskal = "kruskal"
)

// Option configures optional behavior of the carver.
type Option func(*Options)

// Options holds configurable parameters for maze carving.
type Options struct {
	// Ctx allows cancellation; checked once per stack step.
	Ctx context.Context

	// Rand drives the neighbour or edge order. Required.
	Rand *rand.Rand

	// Method selects the carving algorithm. Default MethodDFS.
	Method string

	// OnCarve, if non-nil, is invoked for every tree edge as it is copied
	// into the destination, in carve order.
	OnCarve func(from, to int)
}

// DefaultOptions returns Options with a background context, MethodDFS, no
// random source and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Method: MethodDFS,
	}
}

// WithMethod selects the carving algorithm. Unknown names are reported by
// Carve as ErrUnknownMethod.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithContext sets the Context for carving. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed seeds a fresh random source; equal seeds carve equal mazes from
// equal sources.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithOnCarve installs fn as the tree-edge hook.
func WithOnCarve(fn func(from, to int)) Option {
	return func(o *Options) {
		o.OnCarve = fn
	}
}
