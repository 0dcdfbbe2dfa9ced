// Package gridgraph lays out graph nodes on a rectangular grid.
//
// What:
//
//   - Layout describes Cols×Rows cells, their spacing (DispX, DispY), an origin
//     (StartX, StartY) and the reference height used to flip rows downwards.
//   - Cells are numbered row-major; the index of a cell is the id of the node
//     placed on it by builder.Grid.
//   - ForwardNeighbors enumerates right and bottom neighbours, so visiting every
//     cell once emits each orthogonal adjacency exactly once.
//
// Why:
//
//   - Grid and maze scenes need O(1) id ↔ cell conversion.
//   - Renderers and tests can reason about positions without touching a graph.
//
// Complexity:
//
//   - All Layout methods are O(1).
//
// Errors:
//
//   - ErrEmptyGrid:  no rows or no columns.
//   - ErrBadSpacing: non-positive or non-finite displacement.
//   - ErrBadOrigin:  non-finite origin or reference height.
package gridgraph
