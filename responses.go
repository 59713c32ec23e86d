package main

import (
	"github.com/ttpr0/go-pathviz/geo"
)

type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

func NewErrorResponse(request string, error any) ErrorResponse {
	return ErrorResponse{
		Request: request,
		Error:   error,
	}
}

type NodeResponse struct {
	Node int32   `json:"node"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type RoutingResponse struct {
	Type     string        `json:"type"`
	Features []geo.Feature `json:"features"`
	Found    bool          `json:"found"`
	Start    int32         `json:"start"`
	End      int32         `json:"end"`
	Nodes    []int32       `json:"nodes"`
	Length   float64       `json:"length"`
}

type InfoResponse struct {
	Nodes  int        `json:"nodes"`
	Edges  int        `json:"edges"`
	Extent geo.Extent `json:"extent"`
}

type DrawContextResponse struct {
	Key int `json:"key"`
}

type DrawResponse struct {
	Type     string        `json:"type"`
	Finished bool          `json:"finished"`
	Features []geo.Feature `json:"features"`
	Key      int           `json:"key"`
}
