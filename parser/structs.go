package parser

import (
	. "github.com/ttpr0/go-pathviz/util"
)

//*******************************************
// map data
//*******************************************

// Node and arc records produced by the map loaders.
type MapData struct {
	Nodes List[MapNode] `json:"nodes"`
	Arcs  List[MapArc]  `json:"arcs"`
}

func NewMapData(node_cap, arc_cap int) MapData {
	return MapData{
		Nodes: NewList[MapNode](node_cap),
		Arcs:  NewList[MapArc](arc_cap),
	}
}

type MapNode struct {
	ID  int32   `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type MapArc struct {
	From   int32   `json:"from"`
	To     int32   `json:"to"`
	Length float64 `json:"length"`
}

//*******************************************
// osm parser structs
//*******************************************

type _TempNode struct {
	ID  int32
	Lat float64
	Lon float64
	// set once the node was found in the node pass
	Found bool
}
