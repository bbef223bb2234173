package simgraph

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/camdenr/job-similarity-graph/pkg/dataset"
)

// Category is a graph node carrying the job category it represents.
// Node identity is the input row index, never the category name, so
// records with duplicate names stay distinct nodes.
type Category struct {
	id int64
	dataset.JobCategory
}

func (c Category) ID() int64 { return c.id }

// Graph is a simple undirected similarity graph over job categories.
// Two categories are connected when their male-percentage values differ
// by less than the build threshold; the edge weight is that difference.
type Graph struct {
	*simple.WeightedUndirectedGraph
	Categories []Category // Categories[i] is the node with ID i, in input order
}

// Build constructs the similarity graph from the loaded records. Every
// unordered pair of records is compared, so construction is O(n²); the
// dataset is at most a few hundred categories. The result is empty but
// valid for zero or one records.
func Build(records []dataset.JobCategory, threshold float64) *Graph {
	g := &Graph{
		WeightedUndirectedGraph: simple.NewWeightedUndirectedGraph(0, 0),
		Categories:              make([]Category, len(records)),
	}

	for i, rec := range records {
		node := Category{id: int64(i), JobCategory: rec}
		g.Categories[i] = node
		g.AddNode(node)
	}

	for i := range records {
		for j := i + 1; j < len(records); j++ {
			diff := math.Abs(records[i].MalePercentage - records[j].MalePercentage)
			if diff < threshold {
				g.SetWeightedEdge(simple.WeightedEdge{
					F: g.Categories[i],
					T: g.Categories[j],
					W: diff,
				})
			}
		}
	}

	return g
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.Categories) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	edges := g.Edges()
	if edges == nil {
		return 0
	}
	return edges.Len()
}
