package main

type NearestRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Either coordinates ([lat, lon]) or node ids can be given, ids take precedence.
type RoutingRequest struct {
	Start     []float64 `json:"start"`
	End       []float64 `json:"end"`
	StartNode *int32    `json:"start_node"`
	EndNode   *int32    `json:"end_node"`
}

// Screen point inside a viewport showing the whole map.
type PickRequest struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Zoom   float64 `json:"zoom"`
}

type DrawRoutingRequest struct {
	Key       int `json:"key"`
	Stepcount int `json:"stepcount"`
}

// Start is given as [lat, lon] or node id, range in metric units of the map.
type RangeRequest struct {
	Start     []float64 `json:"start"`
	StartNode *int32    `json:"start_node"`
	Range     float64   `json:"range"`
}
