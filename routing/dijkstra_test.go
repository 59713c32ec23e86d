package routing

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ttpr0/go-pathviz/graph"
	. "github.com/ttpr0/go-pathviz/util"
)

func _LineGraph() *graph.RouteGraph {
	g := graph.NewRouteGraph()
	g.AddNode(0, 0, 0)
	g.AddNode(1, 1, 0)
	g.AddNode(2, 2, 0)
	g.AddNode(3, 10, 10)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(0, 2, 5)
	return g
}

func _Equal(a, b List[int32]) bool {
	if a.Length() != b.Length() {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Sums the weight along path using the cheapest of parallel edges.
func _PathCost(g *graph.RouteGraph, path List[int32]) float64 {
	cost := 0.0
	for i := 0; i < path.Length()-1; i++ {
		best := math.Inf(1)
		for _, e := range g.GetAdjacency(path[i]) {
			if e.To == path[i+1] && e.Weight < best {
				best = e.Weight
			}
		}
		cost += best
	}
	return cost
}

func _BellmanFord(g *graph.RouteGraph, n int, start int32) []float64 {
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[start] = 0
	for round := 0; round < n; round++ {
		for u := 0; u < n; u++ {
			if math.IsInf(dist[u], 1) {
				continue
			}
			for _, e := range g.GetAdjacency(int32(u)) {
				if dist[u]+e.Weight < dist[e.To] {
					dist[e.To] = dist[u] + e.Weight
				}
			}
		}
	}
	return dist
}

func TestShortestPathPrefersCheaperDetour(t *testing.T) {
	g := _LineGraph()
	path := ShortestPath(g, 0, 2)
	if !_Equal(path, List[int32]{0, 1, 2}) {
		t.Errorf("ShortestPath(0, 2) = %v; want [0 1 2]", path)
	}

	alg := NewDijkstra(g, 0, 2)
	if !alg.CalcShortestPath() {
		t.Fatalf("CalcShortestPath() = false; want true")
	}
	if l := alg.GetShortestPath().Length; l != 2 {
		t.Errorf("path length = %v; want 2", l)
	}
}

func TestShortestPathDisconnected(t *testing.T) {
	g := _LineGraph()
	if path := ShortestPath(g, 0, 3); path.Length() != 0 {
		t.Errorf("ShortestPath(0, 3) = %v; want []", path)
	}
	// edges are directed
	if path := ShortestPath(g, 2, 0); path.Length() != 0 {
		t.Errorf("ShortestPath(2, 0) = %v; want []", path)
	}
	alg := NewDijkstra(g, 0, 3)
	if alg.CalcShortestPath() {
		t.Errorf("CalcShortestPath() = true; want false")
	}
	if !alg.GetShortestPath().IsEmpty() {
		t.Errorf("GetShortestPath() is not empty")
	}
}

func TestShortestPathSameNode(t *testing.T) {
	g := _LineGraph()
	for _, id := range []int32{0, 3, 42} {
		alg := NewDijkstra(g, id, id)
		if !alg.CalcShortestPath() {
			t.Errorf("CalcShortestPath(%v, %v) = false; want true", id, id)
		}
		path := alg.GetShortestPath()
		if !_Equal(path.Nodes, List[int32]{id}) || path.Length != 0 {
			t.Errorf("GetShortestPath(%v, %v) = %v; want [%v] with length 0", id, id, path, id)
		}
	}
}

func TestShortestPathUnknownNodes(t *testing.T) {
	g := _LineGraph()
	if path := ShortestPath(g, 0, 99); path.Length() != 0 {
		t.Errorf("ShortestPath(0, 99) = %v; want []", path)
	}
	if path := ShortestPath(g, 99, 0); path.Length() != 0 {
		t.Errorf("ShortestPath(99, 0) = %v; want []", path)
	}

	empty := graph.NewRouteGraph()
	if path := ShortestPath(empty, 0, 1); path.Length() != 0 {
		t.Errorf("ShortestPath() on empty graph = %v; want []", path)
	}
}

func TestShortestPathParallelEdges(t *testing.T) {
	g := graph.NewRouteGraph()
	g.AddNode(0, 0, 0)
	g.AddNode(1, 0, 1)
	g.AddEdge(0, 1, 7)
	g.AddEdge(0, 1, 2)
	g.AddEdge(0, 1, 4)

	alg := NewDijkstra(g, 0, 1)
	alg.CalcShortestPath()
	path := alg.GetShortestPath()
	if !_Equal(path.Nodes, List[int32]{0, 1}) || path.Length != 2 {
		t.Errorf("GetShortestPath() = %v; want [0 1] with length 2", path)
	}
}

func TestShortestPathDanglingTarget(t *testing.T) {
	g := _LineGraph()
	g.AddEdge(2, 50, 1)
	path := ShortestPath(g, 0, 50)
	if !_Equal(path, List[int32]{0, 1, 2, 50}) {
		t.Errorf("ShortestPath(0, 50) = %v; want [0 1 2 50]", path)
	}
	// the dangling node has no geometry
	p := NewPath(path, 3)
	if geom := p.GetGeometry(g); len(geom) != 3 {
		t.Errorf("len(GetGeometry()) = %v; want 3", len(geom))
	}
}

func TestShortestPathMatchesBellmanFord(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		n := 2 + rnd.Intn(15)
		g := graph.NewRouteGraph()
		for i := 0; i < n; i++ {
			g.AddNode(int32(i), rnd.Float64(), rnd.Float64())
		}
		m := rnd.Intn(n * 3)
		for i := 0; i < m; i++ {
			g.AddEdge(int32(rnd.Intn(n)), int32(rnd.Intn(n)), float64(rnd.Intn(20)))
		}

		start := int32(rnd.Intn(n))
		ref := _BellmanFord(g, n, start)
		for end := 0; end < n; end++ {
			path := ShortestPath(g, start, int32(end))
			if math.IsInf(ref[end], 1) {
				if path.Length() != 0 {
					t.Errorf("round %v: ShortestPath(%v, %v) = %v; want []", round, start, end, path)
				}
				continue
			}
			if path.Length() == 0 {
				t.Errorf("round %v: ShortestPath(%v, %v) is empty; want cost %v", round, start, end, ref[end])
				continue
			}
			if path[0] != start || path.Last() != int32(end) {
				t.Errorf("round %v: path %v does not connect %v and %v", round, path, start, end)
			}
			if cost := _PathCost(g, path); cost != ref[end] {
				t.Errorf("round %v: cost of %v = %v; want %v", round, path, cost, ref[end])
			}
		}
	}
}

func TestDijkstraSteps(t *testing.T) {
	g := _LineGraph()
	alg := NewDijkstra(g, 0, 2)

	visited := NewList[int32](3)
	for alg.Steps(1, func(node int32) { visited.Add(node) }) {
	}
	if !_Equal(visited, List[int32]{0, 1, 2}) {
		t.Errorf("settled nodes = %v; want [0 1 2]", visited)
	}
	if alg.Steps(1, func(int32) {}) {
		t.Errorf("Steps() after finish = true; want false")
	}
	if d := alg.GetDistance(2); d != 2 {
		t.Errorf("GetDistance(2) = %v; want 2", d)
	}
	if d := alg.GetDistance(3); !math.IsInf(d, 1) {
		t.Errorf("GetDistance(3) = %v; want +Inf", d)
	}
	if path := alg.GetShortestPath(); !_Equal(path.Nodes, List[int32]{0, 1, 2}) {
		t.Errorf("GetShortestPath() = %v; want [0 1 2]", path.Nodes)
	}
}
