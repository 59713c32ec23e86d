package algorithm

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ttpr0/go-pathviz/graph"
	"github.com/ttpr0/go-pathviz/routing"
	. "github.com/ttpr0/go-pathviz/util"
)

func _LineGraph() *graph.RouteGraph {
	g := graph.NewRouteGraph()
	for i := 0; i < 5; i++ {
		g.AddNode(int32(i), float64(i), 0)
	}
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 2)
	g.AddEdge(2, 3, 3)
	g.AddEdge(3, 4, 4)
	g.AddEdge(0, 3, 10)
	return g
}

func _Starts(node int32) Array[Tuple[int32, float64]] {
	return Array[Tuple[int32, float64]]{MakeTuple(node, 0.0)}
}

func TestRangeDijkstra(t *testing.T) {
	g := _LineGraph()

	dists := CalcRangeDijkstra(g, _Starts(0), 6)
	want := map[int32]float64{0: 0, 1: 1, 2: 3, 3: 6}
	if dists.Length() != len(want) {
		t.Errorf("reached %v nodes; want %v", dists.Length(), len(want))
	}
	for node, dist := range want {
		if got, ok := dists[node]; !ok || got != dist {
			t.Errorf("dist[%v] = %v, %v; want %v", node, got, ok, dist)
		}
	}
	if _, ok := dists[4]; ok {
		t.Errorf("node 4 outside range reached")
	}
}

func TestRangeDijkstraZeroRange(t *testing.T) {
	g := _LineGraph()

	dists := CalcRangeDijkstra(g, _Starts(2), 0)
	if dists.Length() != 1 || dists[2] != 0 {
		t.Errorf("CalcRangeDijkstra with range 0 = %v; want only the start", dists)
	}
}

func TestRangeDijkstraMultipleStarts(t *testing.T) {
	g := _LineGraph()

	starts := Array[Tuple[int32, float64]]{MakeTuple[int32, float64](0, 5), MakeTuple[int32, float64](2, 0)}
	dists := CalcRangeDijkstra(g, starts, 100)
	if dists[0] != 5 || dists[1] != 6 || dists[3] != 3 {
		t.Errorf("dists = %v; want 0:5 1:6 3:3", dists)
	}
}

func TestRangeDijkstraMatchesShortestPath(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := graph.NewRouteGraph()
	const N = 60
	for i := 0; i < N; i++ {
		g.AddNode(int32(i), rng.Float64(), rng.Float64())
	}
	for i := 0; i < 4*N; i++ {
		g.AddEdge(rng.Int31n(N), rng.Int31n(N), float64(rng.Intn(20)))
	}

	dists := CalcRangeDijkstra(g, _Starts(0), math.Inf(1))
	for i := int32(0); i < N; i++ {
		alg := routing.NewDijkstra(g, 0, i)
		found := alg.CalcShortestPath()
		dist, ok := dists[i]
		if found != ok {
			t.Errorf("node %v reached = %v; want %v", i, ok, found)
			continue
		}
		if found && alg.GetShortestPath().Length != dist {
			t.Errorf("dist[%v] = %v; want %v", i, dist, alg.GetShortestPath().Length)
		}
	}
}
