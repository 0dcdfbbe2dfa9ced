// Package pick maps screen positions to graph nodes.
//
// A Viewport converts window pixels to world coordinates: the shorter window
// side spans [-1/zoom, 1/zoom] and the longer one is stretched by the aspect
// ratio. A Picker then finds the node under a world point:
//
//   - Linear scans nodes in id order and returns the first within tolerance.
//   - Indexed answers the same query from an R-tree (rtreego) built once over
//     node positions; among all candidates within tolerance it returns the
//     lowest id, so both pickers agree.
//
// "No node" is never an error: SelectNode returns (core.NoNode, false).
package pick
