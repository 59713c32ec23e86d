package graph

import (
	"github.com/ttpr0/go-pathviz/geo"
	"github.com/ttpr0/go-pathviz/structs"
	. "github.com/ttpr0/go-pathviz/util"
)

//*******************************************
// graph interface
//******************************************

// Read-only view of a graph used by the routing algorithms.
type IGraph interface {
	NodeCount() int
	EdgeCount() int
	IsNode(node int32) bool
	GetNode(node int32) (structs.Node, bool)
	GetNodeGeom(node int32) (geo.Coord, bool)
	// Iterates through the outgoing edges of a node in insertion order.
	ForAdjacentEdges(node int32, callback func(structs.WeightedEdge))
}

//*******************************************
// route graph
//******************************************

// Weighted directed graph keyed by external node ids.
//
// Edges may point to ids that were never added as nodes.
// Not safe for concurrent writes, queries may run concurrently once building is done.
type RouteGraph struct {
	nodes      Dict[int32, structs.Node]
	adjacency  Dict[int32, List[structs.WeightedEdge]]
	edge_count int
}

func NewRouteGraph() *RouteGraph {
	return &RouteGraph{
		nodes:     NewDict[int32, structs.Node](100),
		adjacency: NewDict[int32, List[structs.WeightedEdge]](100),
	}
}

// Inserts or overwrites the node with the given id.
func (self *RouteGraph) AddNode(id int32, lat, lon float64) {
	self.nodes.Set(id, structs.Node{ID: id, Lat: lat, Lon: lon})
}

// Appends a directed edge, parallel edges are kept.
//
// weight has to be finite and non-negative for shortest path queries to be correct.
func (self *RouteGraph) AddEdge(from, to int32, weight float64) {
	edges := self.adjacency[from]
	edges.Add(structs.WeightedEdge{To: to, Weight: weight})
	self.adjacency[from] = edges
	self.edge_count += 1
}

func (self *RouteGraph) NodeCount() int {
	return self.nodes.Length()
}
func (self *RouteGraph) EdgeCount() int {
	return self.edge_count
}
func (self *RouteGraph) IsNode(node int32) bool {
	return self.nodes.ContainsKey(node)
}
func (self *RouteGraph) GetNode(node int32) (structs.Node, bool) {
	n, ok := self.nodes[node]
	return n, ok
}
func (self *RouteGraph) GetNodeGeom(node int32) (geo.Coord, bool) {
	n, ok := self.nodes[node]
	if !ok {
		return geo.Coord{}, false
	}
	return n.Loc(), true
}
func (self *RouteGraph) ForAdjacentEdges(node int32, callback func(structs.WeightedEdge)) {
	for _, edge := range self.adjacency[node] {
		callback(edge)
	}
}

// Returns the outgoing edges of node, the slice must not be modified.
func (self *RouteGraph) GetAdjacency(node int32) []structs.WeightedEdge {
	return self.adjacency[node]
}

// Calls callback for every node in ascending id order.
func (self *RouteGraph) ForNodes(callback func(structs.Node)) {
	for _, id := range SortedKeys(self.nodes) {
		callback(self.nodes[id])
	}
}

// Returns the bounding box of all nodes.
func (self *RouteGraph) GetExtent() geo.Extent {
	extent := geo.NewExtent()
	for _, node := range self.nodes {
		extent.ExtendBy(node.Lat, node.Lon)
	}
	return extent
}
