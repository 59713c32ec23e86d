package routing

import (
	"math"

	"github.com/ttpr0/go-pathviz/graph"
	"github.com/ttpr0/go-pathviz/structs"
	. "github.com/ttpr0/go-pathviz/util"
)

type _Flag struct {
	dist     float64
	prev     int32
	has_prev bool
	visited  bool
}

// Single-source Dijkstra stopped as soon as the target is settled.
//
// Bookkeeping is kept per instance, the graph is never modified.
type Dijkstra struct {
	heap     PriorityQueue[int32, float64]
	g        graph.IGraph
	flags    Dict[int32, _Flag]
	start    int32
	end      int32
	finished bool
}

var _ IShortestPath = &Dijkstra{}

func NewDijkstra(g graph.IGraph, start, end int32) *Dijkstra {
	d := Dijkstra{
		g:     g,
		start: start,
		end:   end,
	}

	flags := NewDict[int32, _Flag](100)
	flags[start] = _Flag{dist: 0, prev: -1}
	d.flags = flags

	heap := NewPriorityQueue[int32, float64](100)
	heap.Enqueue(start, 0)
	d.heap = heap

	if start == end {
		flags[start] = _Flag{dist: 0, prev: -1, visited: true}
		d.finished = true
	}

	return &d
}

func (self *Dijkstra) _GetFlag(node int32) _Flag {
	flag, ok := self.flags[node]
	if !ok {
		return _Flag{dist: math.Inf(1), prev: -1}
	}
	return flag
}

// Settles the next node of the frontier.
//
// Returns the settled node and false if the frontier is exhausted.
func (self *Dijkstra) _Step() (int32, bool) {
	for {
		curr_id, ok := self.heap.Dequeue()
		if !ok {
			self.finished = true
			return -1, false
		}
		curr_flag := self._GetFlag(curr_id)
		if curr_flag.visited {
			continue
		}
		curr_flag.visited = true
		self.flags[curr_id] = curr_flag
		if curr_id == self.end {
			self.finished = true
			return curr_id, true
		}
		self.g.ForAdjacentEdges(curr_id, func(edge structs.WeightedEdge) {
			other_flag := self._GetFlag(edge.To)
			if other_flag.visited {
				return
			}
			new_length := curr_flag.dist + edge.Weight
			if new_length < other_flag.dist {
				other_flag.dist = new_length
				other_flag.prev = curr_id
				other_flag.has_prev = true
				self.flags[edge.To] = other_flag
				self.heap.Enqueue(edge.To, new_length)
			}
		})
		return curr_id, true
	}
}

func (self *Dijkstra) CalcShortestPath() bool {
	for !self.finished {
		self._Step()
	}
	return self._GetFlag(self.end).visited
}

func (self *Dijkstra) Steps(count int, visit func(int32)) bool {
	for c := 0; c < count; c++ {
		if self.finished {
			return false
		}
		node, ok := self._Step()
		if !ok {
			return false
		}
		visit(node)
	}
	return !self.finished
}

// Builds the path from the predecessor chain of end.
//
// An unreachable end or a broken chain both give an empty path.
func (self *Dijkstra) GetShortestPath() Path {
	end_flag := self._GetFlag(self.end)
	if math.IsInf(end_flag.dist, 1) {
		return NewEmptyPath()
	}
	nodes := NewList[int32](10)
	curr := self.end
	for curr != self.start {
		nodes.Add(curr)
		flag := self._GetFlag(curr)
		if !flag.has_prev {
			return NewEmptyPath()
		}
		curr = flag.prev
	}
	nodes.Add(self.start)
	nodes.Reverse()
	return NewPath(nodes, end_flag.dist)
}

// Returns the tentative distance of a node, +Inf if it was not reached yet.
func (self *Dijkstra) GetDistance(node int32) float64 {
	return self._GetFlag(node).dist
}

// Returns the predecessor of a reached node in the current search tree.
func (self *Dijkstra) GetPredecessor(node int32) (int32, bool) {
	flag := self._GetFlag(node)
	return flag.prev, flag.has_prev
}
