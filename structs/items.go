package structs

import (
	"github.com/ttpr0/go-pathviz/geo"
)

//*******************************************
// graph structs
//*******************************************

type Node struct {
	ID  int32
	Lat float64
	Lon float64
}

func (self Node) Loc() geo.Coord {
	return geo.Coord{self.Lat, self.Lon}
}

// Directed edge stored in the adjacency of its source node.
type WeightedEdge struct {
	To     int32
	Weight float64
}
