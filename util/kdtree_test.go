package util

import (
	"math"
	"math/rand"
	"testing"
)

func _RandomPoints(rnd *rand.Rand, n int) ([][2]float64, []int32) {
	points := make([][2]float64, n)
	values := make([]int32, n)
	for i := 0; i < n; i++ {
		points[i] = [2]float64{rnd.Float64() * 100, rnd.Float64() * 100}
		values[i] = int32(i)
	}
	return points, values
}

func _BruteForceDist(points [][2]float64, q [2]float64) float64 {
	best := math.Inf(1)
	for _, p := range points {
		dx := p[0] - q[0]
		dy := p[1] - q[1]
		if d := dx*dx + dy*dy; d < best {
			best = d
		}
	}
	return best
}

func TestKDTreeNearest(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	points, values := _RandomPoints(rnd, 2000)
	tree := NewKDTree[int32]()
	tree.Build(points, values)

	for i := 0; i < 500; i++ {
		q := [2]float64{rnd.Float64()*120 - 10, rnd.Float64()*120 - 10}
		id, ok := tree.GetClosest(q)
		if !ok {
			t.Fatalf("GetClosest(%v) failed", q)
		}
		p := points[id]
		dx := p[0] - q[0]
		dy := p[1] - q[1]
		if got, want := dx*dx+dy*dy, _BruteForceDist(points, q); got != want {
			t.Errorf("GetClosest(%v) has distance %v; want %v", q, got, want)
		}
	}
}

func TestKDTreeSelfLookup(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	points, values := _RandomPoints(rnd, 1000)
	tree := NewKDTree[int32]()
	tree.Build(points, values)

	for i, p := range points {
		id, _ := tree.GetClosest(p)
		if id != int32(i) {
			t.Errorf("GetClosest(%v) = %v; want %v", p, id, i)
		}
	}
}

func TestKDTreeBalanced(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	points, values := _RandomPoints(rnd, 1023)
	tree := NewKDTree[int32]()
	tree.Build(points, values)

	if tree.Length() != 1023 {
		t.Errorf("tree.Length() = %v; want 1023", tree.Length())
	}
	if tree.Depth() != 10 {
		t.Errorf("tree.Depth() = %v; want 10", tree.Depth())
	}
}

func TestKDTreeEmpty(t *testing.T) {
	tree := NewKDTree[int32]()
	tree.Build(nil, nil)
	if _, ok := tree.GetClosest([2]float64{1, 1}); ok {
		t.Errorf("GetClosest() on empty tree = true; want false")
	}
	if tree.Depth() != 0 {
		t.Errorf("tree.Depth() = %v; want 0", tree.Depth())
	}
}

func TestKDTreeWithin(t *testing.T) {
	tree := NewKDTree[string]()
	tree.Build([][2]float64{{0, 0}, {10, 10}}, []string{"a", "b"})

	if v, ok := tree.GetClosestWithin([2]float64{1, 0}, 2); !ok || v != "a" {
		t.Errorf("GetClosestWithin() = %v, %v; want a, true", v, ok)
	}
	if _, ok := tree.GetClosestWithin([2]float64{5, 5}, 2); ok {
		t.Errorf("GetClosestWithin() = true; want false")
	}
}

func TestKDTreeLargeDistancePruning(t *testing.T) {
	// coordinates far apart, squared and plain distances differ a lot
	points := [][2]float64{{0, 0}, {100, 3}, {103, -50}, {98, 40}, {-60, 2}}
	values := []int32{0, 1, 2, 3, 4}
	tree := NewKDTree[int32]()
	tree.Build(points, values)

	q := [2]float64{101, 1}
	if id, _ := tree.GetClosest(q); id != 1 {
		t.Errorf("GetClosest(%v) = %v; want 1", q, id)
	}
}
