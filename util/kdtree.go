package util

import (
	"math"

	"golang.org/x/exp/slices"
)

//*******************************************
// 2-d tree
//*******************************************

type _KDNode[T any] struct {
	point [2]float64
	value T
	left  int32
	right int32
}

type _KDEntry[T any] struct {
	point [2]float64
	value T
}

// Static 2-d tree built by median splits.
//
// Nodes are stored in an arena and reference their children by index,
// -1 marks an absent child. The tree can not be modified after it was built,
// calling Build again replaces the whole tree.
type KDTree[T any] struct {
	nodes List[_KDNode[T]]
	root  int32
}

func NewKDTree[T any]() KDTree[T] {
	return KDTree[T]{
		nodes: NewList[_KDNode[T]](0),
		root:  -1,
	}
}

// Builds the tree from points and their values (points[i] belongs to values[i]).
//
// If the slices differ in length only the common prefix is used.
func (self *KDTree[T]) Build(points [][2]float64, values []T) {
	size := min(len(points), len(values))
	entries := make([]_KDEntry[T], size)
	for i := 0; i < size; i++ {
		entries[i] = _KDEntry[T]{points[i], values[i]}
	}
	self.nodes = NewList[_KDNode[T]](size)
	self.root = self._BuildNode(entries, 0)
}

func (self *KDTree[T]) _BuildNode(entries []_KDEntry[T], depth int) int32 {
	if len(entries) == 0 {
		return -1
	}
	axis := depth % 2
	slices.SortStableFunc(entries, func(a, b _KDEntry[T]) int {
		switch {
		case a.point[axis] < b.point[axis]:
			return -1
		case a.point[axis] > b.point[axis]:
			return 1
		default:
			return 0
		}
	})
	median := len(entries) / 2
	id := int32(self.nodes.Length())
	self.nodes.Add(_KDNode[T]{
		point: entries[median].point,
		value: entries[median].value,
		left:  -1,
		right: -1,
	})
	left := self._BuildNode(entries[:median], depth+1)
	right := self._BuildNode(entries[median+1:], depth+1)
	self.nodes[id].left = left
	self.nodes[id].right = right
	return id
}

// Returns the value of the point closest to the given point.
//
// If the tree is empty false will be returned.
func (self *KDTree[T]) GetClosest(point [2]float64) (T, bool) {
	return self.GetClosestWithin(point, math.Inf(1))
}

// Same as GetClosest but only points with a distance smaller than max_dist are considered.
func (self *KDTree[T]) GetClosestWithin(point [2]float64, max_dist float64) (T, bool) {
	if self.root == -1 {
		var t T
		return t, false
	}
	best_dist := math.Inf(1)
	if !math.IsInf(max_dist, 1) {
		best_dist = max_dist * max_dist
	}
	best, _ := self._Nearest(self.root, point, 0, -1, best_dist)
	if best == -1 {
		var t T
		return t, false
	}
	return self.nodes[best].value, true
}

// Depth-first branch-and-bound search.
//
// Takes the best node found so far and its squared distance and returns the updated pair.
func (self *KDTree[T]) _Nearest(node int32, point [2]float64, depth int, best int32, best_dist float64) (int32, float64) {
	if node == -1 {
		return best, best_dist
	}
	curr := &self.nodes[node]
	dx := point[0] - curr.point[0]
	dy := point[1] - curr.point[1]
	dist := dx*dx + dy*dy
	if dist < best_dist {
		best = node
		best_dist = dist
	}

	diff := dx
	if depth%2 == 1 {
		diff = dy
	}
	near, far := curr.right, curr.left
	if diff < 0 {
		near, far = curr.left, curr.right
	}
	best, best_dist = self._Nearest(near, point, depth+1, best, best_dist)
	if diff*diff < best_dist {
		best, best_dist = self._Nearest(far, point, depth+1, best, best_dist)
	}
	return best, best_dist
}

func (self *KDTree[T]) Length() int {
	return self.nodes.Length()
}

// Returns the number of levels of the tree (0 for an empty tree).
func (self *KDTree[T]) Depth() int {
	return self._Depth(self.root)
}

func (self *KDTree[T]) _Depth(node int32) int {
	if node == -1 {
		return 0
	}
	curr := self.nodes[node]
	return 1 + max(self._Depth(curr.left), self._Depth(curr.right))
}
