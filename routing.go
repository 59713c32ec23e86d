package main

import (
	"fmt"

	"github.com/gorilla/mux"
	"github.com/ttpr0/go-pathviz/geo"
	"github.com/ttpr0/go-pathviz/routing"
	. "github.com/ttpr0/go-pathviz/util"
	"golang.org/x/exp/slog"
)

func RegisterRoutes(app *mux.Router, manager *MapManager) {
	MapGet(app, "/v0/info", func(req struct{}) Result {
		return HandleInfoRequest(manager)
	})
	MapGet(app, "/v0/nearest", func(req NearestRequest) Result {
		return HandleNearestRequest(manager, req)
	})
	MapPost(app, "/v0/pick", func(req PickRequest) Result {
		return HandlePickRequest(manager, req)
	})
	MapPost(app, "/v0/routing", func(req RoutingRequest) Result {
		return HandleRoutingRequest(manager, req)
	})
	MapPost(app, "/v0/range", func(req RangeRequest) Result {
		return HandleRangeRequest(manager, req)
	})
	MapPost(app, "/v0/routing/draw/create", func(req RoutingRequest) Result {
		return HandleCreateContextRequest(manager, req)
	})
	MapPost(app, "/v0/routing/draw/step", func(req DrawRoutingRequest) Result {
		return HandleRoutingStepRequest(manager, req)
	})
}

//**********************************************************
// map handlers
//**********************************************************

func HandleInfoRequest(manager *MapManager) Result {
	g := manager.GetGraph()
	return OK(InfoResponse{
		Nodes:  g.NodeCount(),
		Edges:  g.EdgeCount(),
		Extent: manager.GetExtent(),
	})
}

func HandleNearestRequest(manager *MapManager, req NearestRequest) Result {
	node, ok := manager.GetClosestNode(geo.Coord{req.Lat, req.Lon})
	if !ok {
		return BadRequest("no node found")
	}
	return OK(NewNodeResponse(manager, node))
}

func HandlePickRequest(manager *MapManager, req PickRequest) Result {
	viewport := manager.NewViewport(req.Width, req.Height, req.Zoom)
	node, ok := manager.PickNode(req.X, req.Y, viewport)
	if !ok {
		return BadRequest("no node found")
	}
	return OK(NewNodeResponse(manager, node))
}

func NewNodeResponse(manager *MapManager, node int32) NodeResponse {
	resp := NodeResponse{Node: node}
	if loc, ok := manager.GetGraph().GetNodeGeom(node); ok {
		resp.Lat = loc[0]
		resp.Lon = loc[1]
	}
	return resp
}

//**********************************************************
// routing handlers
//**********************************************************

func HandleRoutingRequest(manager *MapManager, req RoutingRequest) Result {
	start, end, err := GetRequestNodes(manager, req)
	if err != nil {
		return BadRequest(err.Error())
	}
	slog.Debug(fmt.Sprintf("Start calculating shortest path between %v and %v", start, end))
	path := manager.Route(start, end)
	if path.IsEmpty() {
		slog.Debug("no path found")
	}
	return OK(NewRoutingResponse(manager, path, start, end))
}

// Returns every node reachable within the range as geojson points.
func HandleRangeRequest(manager *MapManager, req RangeRequest) Result {
	if req.Range < 0 {
		return BadRequest("range must not be negative")
	}
	start, err := _GetRequestNode(manager, req.StartNode, req.Start, "start")
	if err != nil {
		return BadRequest(err.Error())
	}
	dists := manager.Range(start, req.Range)

	g := manager.GetGraph()
	features := make([]geo.Feature, 0, dists.Length())
	for _, node := range SortedKeys(dists) {
		loc, ok := g.GetNodeGeom(node)
		if !ok {
			continue
		}
		geom := geo.NewPoint(loc)
		props := NewDict[string, any](2)
		props["node"] = node
		props["dist"] = dists[node]
		features = append(features, geo.NewFeature(&geom, props))
	}
	return OK(geo.NewFeatureCollection(features))
}

func HandleCreateContextRequest(manager *MapManager, req RoutingRequest) Result {
	start, end, err := GetRequestNodes(manager, req)
	if err != nil {
		return BadRequest(err.Error())
	}
	key := manager.CreateSession(start, end)
	return OK(DrawContextResponse{Key: key})
}

func HandleRoutingStepRequest(manager *MapManager, req DrawRoutingRequest) Result {
	session, ok := manager.GetSession(req.Key)
	if !ok {
		return NotFound("key not found")
	}
	if req.Stepcount <= 0 {
		return BadRequest("stepcount must be positive")
	}
	g := manager.GetGraph()

	edges := NewList[geo.CoordArray](req.Stepcount)
	finished, path := session.Steps(req.Stepcount, func(node, prev int32) {
		if prev == -1 {
			return
		}
		from, ok_from := g.GetNodeGeom(prev)
		to, ok_to := g.GetNodeGeom(node)
		if ok_from && ok_to {
			edges.Add(geo.CoordArray{from, to})
		}
	})
	if finished {
		manager.DropSession(req.Key)
		return OK(NewDrawResponse(Array[geo.CoordArray]{path.GetGeometry(g)}, true, req.Key))
	}
	return OK(NewDrawResponse(Array[geo.CoordArray](edges), false, req.Key))
}

//**********************************************************
// routing utilities
//**********************************************************

// Resolves start and end nodes of a request, node ids take precedence over coordinates.
func GetRequestNodes(manager *MapManager, req RoutingRequest) (int32, int32, error) {
	start, err := _GetRequestNode(manager, req.StartNode, req.Start, "start")
	if err != nil {
		return -1, -1, err
	}
	end, err := _GetRequestNode(manager, req.EndNode, req.End, "end")
	if err != nil {
		return -1, -1, err
	}
	return start, end, nil
}

func _GetRequestNode(manager *MapManager, node *int32, coord []float64, name string) (int32, error) {
	if node != nil {
		return *node, nil
	}
	if len(coord) != 2 {
		return -1, fmt.Errorf("%s requires [lat, lon] or a node id", name)
	}
	nodes := MapCoordsToNodes(manager, []geo.Coord{{coord[0], coord[1]}})
	if nodes[0] == -1 {
		return -1, fmt.Errorf("no node found near %s", name)
	}
	return nodes[0], nil
}

func NewRoutingResponse(manager *MapManager, path routing.Path, start, end int32) RoutingResponse {
	resp := RoutingResponse{
		Type:     "FeatureCollection",
		Features: make([]geo.Feature, 0, 1),
		Found:    !path.IsEmpty(),
		Start:    start,
		End:      end,
		Nodes:    make([]int32, 0, path.Nodes.Length()),
		Length:   path.Length,
	}
	if path.IsEmpty() {
		resp.Length = 0
		return resp
	}
	resp.Nodes = append(resp.Nodes, path.Nodes...)
	geom := geo.NewLineString(path.GetGeometry(manager.GetGraph()))
	props := NewDict[string, any](1)
	props["length"] = path.Length
	resp.Features = append(resp.Features, geo.NewFeature(&geom, props))
	return resp
}

func NewDrawResponse(lines Array[geo.CoordArray], finished bool, key int) DrawResponse {
	resp := DrawResponse{
		Type:     "FeatureCollection",
		Finished: finished,
		Key:      key,
		Features: make([]geo.Feature, 0, lines.Length()),
	}
	for _, line := range lines {
		geom := geo.NewLineString(line)
		props := NewDict[string, any](1)
		props["value"] = 0
		resp.Features = append(resp.Features, geo.NewFeature(&geom, props))
	}
	return resp
}
