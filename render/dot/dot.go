// Package dot exports path-finding frames as Graphviz DOT and renders them
// to SVG.
//
// Node positions are pinned (pos="x,y!") and rendering uses the neato
// engine, so the picture matches world coordinates instead of a computed
// layout. Colours follow the node roles of core.Frame.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/pathgrid/core"
)

// Fill colours per role.
var roleColor = map[core.Role]string{
	core.RolePlain: "white",
	core.RolePath:  "palegreen",
	core.RoleHover: "pink",
	core.RoleEnd:   "royalblue",
	core.RoleStart: "red",
}

// ToDOT converts a frame to an undirected DOT graph. Each logical edge is
// written once, from its lower node id; path edges are drawn bold green and
// labelled with their cost.
func ToDOT(f core.Frame) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  inputscale=1;\n")
	buf.WriteString("  node [shape=circle, style=filled, width=0.3, fixedsize=true, fontsize=8];\n")
	buf.WriteString("  edge [fontsize=7, color=gray60];\n")
	buf.WriteString("\n")

	for _, n := range f.Nodes {
		fmt.Fprintf(&buf, "  %d [pos=\"%s,%s!\", fillcolor=%s, tooltip=%q];\n",
			n.ID, num(n.X), num(n.Y), roleColor[n.Role], n.Role.String())
	}

	buf.WriteString("\n")
	for _, e := range f.Edges {
		if e.From > e.To {
			continue
		}
		if e.OnPath {
			fmt.Fprintf(&buf, "  %d -- %d [label=%q, color=forestgreen, penwidth=3];\n", e.From, e.To, num(e.Cost))
			continue
		}
		fmt.Fprintf(&buf, "  %d -- %d [label=%q];\n", e.From, e.To, num(e.Cost))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// RenderSVG renders a DOT graph to SVG with the neato engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
