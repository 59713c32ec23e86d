package algorithm

import (
	"github.com/ttpr0/go-pathviz/graph"
	"github.com/ttpr0/go-pathviz/structs"
	. "github.com/ttpr0/go-pathviz/util"
)

type PQItem struct {
	item int32
	dist float64
}

// Computes distances from the start nodes to every node within max_range.
//
// Starts are given as (node, initial distance) tuples. Nodes outside the range
// are not contained in the result.
func CalcRangeDijkstra(g graph.IGraph, starts Array[Tuple[int32, float64]], max_range float64) Dict[int32, float64] {
	heap := NewPriorityQueue[PQItem, float64](100)
	node_flags := NewDict[int32, float64](100)

	for _, item := range starts {
		start := item.A
		dist := item.B
		if dist > max_range {
			continue
		}
		if curr, ok := node_flags[start]; ok && curr <= dist {
			continue
		}
		node_flags[start] = dist
		heap.Enqueue(PQItem{start, dist}, dist)
	}

	for {
		curr_item, ok := heap.Dequeue()
		if !ok {
			break
		}
		curr_id := curr_item.item
		curr_dist := curr_item.dist
		if node_flags[curr_id] < curr_dist {
			continue
		}
		g.ForAdjacentEdges(curr_id, func(edge structs.WeightedEdge) {
			other_id := edge.To
			new_length := curr_dist + edge.Weight
			if new_length > max_range {
				return
			}
			if other_dist, ok := node_flags[other_id]; !ok || other_dist > new_length {
				node_flags[other_id] = new_length
				heap.Enqueue(PQItem{other_id, new_length}, new_length)
			}
		})
	}
	return node_flags
}
