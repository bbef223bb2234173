package simgraph

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/traverse"
)

// Degrees returns the neighbor count of every node in node-index order.
// Edge weights are ignored.
func Degrees(g *Graph) []int {
	degrees := make([]int, len(g.Categories))
	for i := range g.Categories {
		degrees[i] = g.From(int64(i)).Len()
	}
	return degrees
}

// TwoHopCounts returns, for every node in node-index order, the number of
// nodes whose shortest-path distance from it is exactly two edges. The
// count is exact: each node runs an unweighted breadth-first search over
// the whole graph. Nodes unreachable from the source are excluded, and an
// isolated node counts zero.
func TwoHopCounts(g *Graph) []int {
	counts := make([]int, len(g.Categories))

	var bfs traverse.BreadthFirst
	for i := range g.Categories {
		bfs.Reset()

		// BFS discovers nodes in nondecreasing depth, so every depth-2
		// node has been seen before the first depth-3 node stops the walk.
		count := 0
		bfs.Walk(g, g.Categories[i], func(_ graph.Node, depth int) bool {
			if depth == 2 {
				count++
			}
			return depth > 2
		})
		counts[i] = count
	}

	return counts
}
