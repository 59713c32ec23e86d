package comps

import (
	"github.com/ttpr0/go-pathviz/geo"
	. "github.com/ttpr0/go-pathviz/util"
)

// Returned by FindNearest if the index holds no points.
const NO_NODE int32 = -1

//*******************************************
// graph index interface
//*******************************************

type IGraphIndex interface {
	GetClosestNode(point geo.Coord) (int32, bool)
}

var _ IGraphIndex = &SpatialIndex{}

//*******************************************
// spatial index
//*******************************************

// Nearest-node lookup over a static point set.
//
// Build once, query many times. Queries don't modify the index and may run concurrently.
type SpatialIndex struct {
	index KDTree[int32]
}

func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{
		index: NewKDTree[int32](),
	}
}

// Builds the index from points, points[i] belongs to ids[i].
//
// Replaces everything built before.
func (self *SpatialIndex) Build(points []geo.Coord, ids []int32) {
	coords := make([][2]float64, len(points))
	for i, p := range points {
		coords[i] = p
	}
	self.index.Build(coords, ids)
}

// Returns the id of the point closest to (x, y) or NO_NODE if the index is empty.
//
// On equal distances the point found first wins.
func (self *SpatialIndex) FindNearest(x, y float64) int32 {
	id, ok := self.index.GetClosest([2]float64{x, y})
	if !ok {
		return NO_NODE
	}
	return id
}

// Same as FindNearest but ignores points at max_dist or farther away.
func (self *SpatialIndex) FindNearestWithin(x, y, max_dist float64) int32 {
	id, ok := self.index.GetClosestWithin([2]float64{x, y}, max_dist)
	if !ok {
		return NO_NODE
	}
	return id
}

func (self *SpatialIndex) GetClosestNode(point geo.Coord) (int32, bool) {
	return self.index.GetClosest(point)
}

func (self *SpatialIndex) Len() int {
	return self.index.Length()
}
