package main

import (
	"github.com/ttpr0/go-pathviz/geo"
	. "github.com/ttpr0/go-pathviz/util"
)

// Snaps coordinates to their closest nodes, -1 where none is found.
func MapCoordsToNodes(manager *MapManager, coords []geo.Coord) Array[int32] {
	nodes := NewArray[int32](len(coords))
	for i, coord := range coords {
		id, ok := manager.GetClosestNode(coord)
		if ok {
			nodes[i] = id
		} else {
			nodes[i] = -1
		}
	}
	return nodes
}
