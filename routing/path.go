package routing

import (
	"github.com/ttpr0/go-pathviz/geo"
	"github.com/ttpr0/go-pathviz/graph"
	. "github.com/ttpr0/go-pathviz/util"
)

type Path struct {
	Nodes  List[int32]
	Length float64
}

func NewPath(nodes List[int32], length float64) Path {
	return Path{
		Nodes:  nodes,
		Length: length,
	}
}

func NewEmptyPath() Path {
	return Path{
		Nodes:  NewList[int32](0),
		Length: 0,
	}
}

func (self Path) IsEmpty() bool {
	return self.Nodes.Length() == 0
}

// Returns the coordinates of the path nodes, nodes without geometry are skipped.
func (self Path) GetGeometry(g graph.IGraph) geo.CoordArray {
	line := make(geo.CoordArray, 0, self.Nodes.Length())
	for _, node := range self.Nodes {
		loc, ok := g.GetNodeGeom(node)
		if !ok {
			continue
		}
		line = append(line, loc)
	}
	return line
}
