package main

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/ttpr0/go-pathviz/algorithm"
	"github.com/ttpr0/go-pathviz/comps"
	"github.com/ttpr0/go-pathviz/geo"
	"github.com/ttpr0/go-pathviz/graph"
	"github.com/ttpr0/go-pathviz/parser"
	"github.com/ttpr0/go-pathviz/routing"
	. "github.com/ttpr0/go-pathviz/util"
	"golang.org/x/exp/slog"
)

// Loads the map configured in config, builds graph and index from it.
//
// If a map cache is configured and exists it is loaded instead of the source,
// otherwise the parsed source is written to the cache.
func NewMapManager(config Config) (*MapManager, error) {
	options := parser.LoadOptions{
		Vehicle: config.Map.Vehicle,
		Metric:  config.Map.Metric,
	}
	cache_file := config.Map.Cache

	var data parser.MapData
	var err error
	if cache_file != "" && FileExists(cache_file) {
		slog.Info("loading map from cache " + cache_file)
		data, err = parser.LoadMap(cache_file, options)
	} else {
		slog.Info("loading map " + config.Map.File)
		data, err = parser.LoadMap(config.Map.File, options)
		if err == nil && cache_file != "" {
			if err := parser.StoreMapData(data, cache_file); err != nil {
				slog.Warn("failed to write map cache: " + err.Error())
			}
		}
	}
	if err != nil {
		return nil, err
	}
	return NewMapManagerFromData(data, config), nil
}

// Builds graph and spatial index from the same node set.
func NewMapManagerFromData(data parser.MapData, config Config) *MapManager {
	t1 := time.Now()

	g := graph.NewRouteGraph()
	points := make([]geo.Coord, 0, data.Nodes.Length())
	ids := make([]int32, 0, data.Nodes.Length())
	for _, node := range data.Nodes {
		g.AddNode(node.ID, node.Lat, node.Lon)
		points = append(points, geo.Coord{node.Lat, node.Lon})
		ids = append(ids, node.ID)
	}
	for _, arc := range data.Arcs {
		g.AddEdge(arc.From, arc.To, arc.Length)
	}

	index := comps.NewSpatialIndex()
	index.Build(points, ids)

	slog.Info(fmt.Sprintf("graph and index built in %v ms: %v nodes, %v edges", time.Since(t1).Milliseconds(), g.NodeCount(), g.EdgeCount()))

	return &MapManager{
		config:   config,
		graph:    g,
		index:    index,
		extent:   g.GetExtent(),
		routes:   cache.New(config.Cache.Expiration, config.Cache.Cleanup),
		sessions: cache.New(config.Cache.Expiration, config.Cache.Cleanup),
	}
}

// Holds the map structures, read-only after construction.
type MapManager struct {
	config   Config
	graph    *graph.RouteGraph
	index    *comps.SpatialIndex
	extent   geo.Extent
	routes   *cache.Cache
	sessions *cache.Cache
}

func (self *MapManager) GetGraph() *graph.RouteGraph {
	return self.graph
}

func (self *MapManager) GetIndex() *comps.SpatialIndex {
	return self.index
}

func (self *MapManager) GetExtent() geo.Extent {
	return self.extent
}

// Returns the node closest to the (lat, lon) coordinate.
//
// Fails on an empty map or if the closest node is outside the snap radius.
func (self *MapManager) GetClosestNode(coord geo.Coord) (int32, bool) {
	var node int32
	if radius := self.config.Map.SnapRadius; radius > 0 {
		node = self.index.FindNearestWithin(coord[0], coord[1], radius)
	} else {
		node = self.index.FindNearest(coord[0], coord[1])
	}
	return node, node != comps.NO_NODE
}

// Returns the node closest to a screen point of a viewport showing the whole map.
func (self *MapManager) PickNode(x, y float64, viewport *geo.Viewport) (int32, bool) {
	lat, lon := viewport.ScreenToMap(x, y)
	return self.GetClosestNode(geo.Coord{lat, lon})
}

// Creates a viewport fitting the map extent.
//
// Non-positive sizes fall back to the configured viewport size.
func (self *MapManager) NewViewport(width, height, zoom float64) *geo.Viewport {
	if width <= 0 || height <= 0 {
		width = self.config.Viewport.Width
		height = self.config.Viewport.Height
	}
	viewport := geo.NewViewport(self.extent, width, height)
	if zoom > 0 {
		viewport.SetZoom(zoom)
	}
	return viewport
}

func _RouteKey(start, end int32) string {
	return fmt.Sprintf("route:%v:%v", start, end)
}

// Computes the shortest path between two nodes, results are cached.
func (self *MapManager) Route(start, end int32) routing.Path {
	key := _RouteKey(start, end)
	if value, ok := self.routes.Get(key); ok {
		slog.Debug("route cache hit " + key)
		return value.(routing.Path)
	}
	alg := routing.NewDijkstra(self.graph, start, end)
	if !alg.CalcShortestPath() {
		slog.Debug(fmt.Sprintf("no path between %v and %v", start, end))
	}
	path := alg.GetShortestPath()
	self.routes.SetDefault(key, path)
	return path
}

// Returns the distance to every node reachable from start within max_range.
func (self *MapManager) Range(start int32, max_range float64) Dict[int32, float64] {
	starts := Array[Tuple[int32, float64]]{MakeTuple(start, 0.0)}
	return algorithm.CalcRangeDijkstra(self.graph, starts, max_range)
}

// Drops all cached routes.
func (self *MapManager) ClearCache() {
	self.routes.Flush()
}

//**********************************************************
// step-wise search sessions
//**********************************************************

type SearchSession struct {
	mu  sync.Mutex
	alg *routing.Dijkstra
}

// Runs up to count steps of the search.
//
// visit receives every settled node together with its predecessor (-1 for the start).
// Returns true if the search is finished, the path is returned in that case.
func (self *SearchSession) Steps(count int, visit func(node, prev int32)) (bool, routing.Path) {
	self.mu.Lock()
	defer self.mu.Unlock()

	running := self.alg.Steps(count, func(node int32) {
		prev, ok := self.alg.GetPredecessor(node)
		if !ok {
			prev = -1
		}
		visit(node, prev)
	})
	if running {
		return false, routing.NewEmptyPath()
	}
	return true, self.alg.GetShortestPath()
}

const MAX_SESSION_KEY = 100000

// Starts a new step-wise search and returns its key.
func (self *MapManager) CreateSession(start, end int32) int {
	session := &SearchSession{
		alg: routing.NewDijkstra(self.graph, start, end),
	}
	for {
		key := rand.Intn(MAX_SESSION_KEY)
		if err := self.sessions.Add(_SessionKey(key), session, cache.DefaultExpiration); err == nil {
			return key
		}
	}
}

func (self *MapManager) GetSession(key int) (*SearchSession, bool) {
	value, ok := self.sessions.Get(_SessionKey(key))
	if !ok {
		return nil, false
	}
	return value.(*SearchSession), true
}

func (self *MapManager) DropSession(key int) {
	self.sessions.Delete(_SessionKey(key))
}

func _SessionKey(key int) string {
	return fmt.Sprintf("session:%v", key)
}
