// Package scene drives an interactive path-finding view over one graph.
//
// A Scene owns the per-frame state the renderer needs besides the graph
// itself: the node under the cursor (hover) and the camera. Each frame the
// caller feeds an Input; a left press moves the start node, a right press
// moves the end node, and either press recomputes the path. Snapshot returns
// a read-only core.Frame for drawing.
//
// A Scene is not safe for concurrent use; it belongs to the goroutine that
// runs the frame loop.
package scene
