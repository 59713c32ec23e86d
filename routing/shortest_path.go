package routing

import (
	"github.com/ttpr0/go-pathviz/graph"
	. "github.com/ttpr0/go-pathviz/util"
)

type IShortestPath interface {
	// Runs the search to the end, returns false if no path exists.
	CalcShortestPath() bool
	// Settles at most count nodes calling visit for each of them.
	//
	// Returns false once the search is finished.
	Steps(count int, visit func(int32)) bool
	GetShortestPath() Path
}

// Computes the shortest path between start and end using Dijkstra.
//
// Returns the node ids along the path or an empty list if end can not be reached.
func ShortestPath(g graph.IGraph, start, end int32) List[int32] {
	alg := NewDijkstra(g, start, end)
	alg.CalcShortestPath()
	return alg.GetShortestPath().Nodes
}
