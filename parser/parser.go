package parser

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/ttpr0/go-pathviz/geo"
	. "github.com/ttpr0/go-pathviz/util"
	"golang.org/x/exp/slog"
)

// Opens an osm scanner for a single pass, ways tells which objects the pass needs.
type _OpenScanner func(reader io.Reader, ways bool) osm.Scanner

func _OpenPBFScanner(reader io.Reader, ways bool) osm.Scanner {
	scanner := osmpbf.New(context.Background(), reader, runtime.GOMAXPROCS(-1))
	scanner.SkipRelations = true
	if ways {
		scanner.SkipNodes = true
	} else {
		scanner.SkipWays = true
	}
	return scanner
}

func _OpenXMLScanner(reader io.Reader, ways bool) osm.Scanner {
	return osmxml.New(context.Background(), reader)
}

// Parses an osm pbf file into map data.
//
// Every node of a routable way becomes a map node (with a dense id), every pair of
// consecutive way nodes an arc. Arc lengths are meters or seconds depending on metric.
func ParseOSMPBF(file string, decoder IOSMDecoder, metric MetricType) (MapData, error) {
	return _ParseOSM(file, _OpenPBFScanner, decoder, metric)
}

// Same as ParseOSMPBF for osm xml files.
func ParseOSMXML(file string, decoder IOSMDecoder, metric MetricType) (MapData, error) {
	return _ParseOSM(file, _OpenXMLScanner, decoder, metric)
}

func _ParseOSM(filename string, open _OpenScanner, decoder IOSMDecoder, metric MetricType) (MapData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return MapData{}, fmt.Errorf("failed to open osm file %s: %w", filename, err)
	}
	defer file.Close()

	osm_nodes := NewDict[int64, _TempNode](10000)
	data := NewMapData(10000, 10000)

	if err := _RunPass(file, open, true, func(obj osm.Object) {
		_InitWayHandler(obj, decoder, osm_nodes)
	}); err != nil {
		return MapData{}, fmt.Errorf("failed to read ways of %s: %w", filename, err)
	}
	if err := _RunPass(file, open, false, func(obj osm.Object) {
		_NodeHandler(obj, osm_nodes, &data)
	}); err != nil {
		return MapData{}, fmt.Errorf("failed to read nodes of %s: %w", filename, err)
	}
	if err := _RunPass(file, open, true, func(obj osm.Object) {
		_WayHandler(obj, decoder, metric, osm_nodes, &data)
	}); err != nil {
		return MapData{}, fmt.Errorf("failed to read ways of %s: %w", filename, err)
	}

	slog.Info(fmt.Sprintf("parsed osm file: %v nodes, %v arcs", data.Nodes.Length(), data.Arcs.Length()))
	return data, nil
}

func _RunPass(file *os.File, open _OpenScanner, ways bool, handler func(osm.Object)) error {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	scanner := open(file, ways)
	defer scanner.Close()
	for scanner.Scan() {
		handler(scanner.Object())
	}
	return scanner.Err()
}

//*******************************************
// osm handler methods
//*******************************************

// Marks all nodes referenced by routable ways.
func _InitWayHandler(obj osm.Object, decoder IOSMDecoder, osm_nodes Dict[int64, _TempNode]) {
	way, ok := obj.(*osm.Way)
	if !ok {
		return
	}
	tags := Dict[string, string](way.TagMap())
	if !decoder.IsValidHighway(tags) {
		return
	}
	for _, ref := range way.Nodes.NodeIDs() {
		osm_nodes.Set(int64(ref), _TempNode{ID: -1})
	}
}

func _NodeHandler(obj osm.Object, osm_nodes Dict[int64, _TempNode], data *MapData) {
	node, ok := obj.(*osm.Node)
	if !ok {
		return
	}
	id := int64(node.ID)
	if !osm_nodes.ContainsKey(id) {
		return
	}
	temp := osm_nodes.Get(id)
	if temp.Found {
		return
	}
	temp = _TempNode{
		ID:    int32(data.Nodes.Length()),
		Lat:   node.Lat,
		Lon:   node.Lon,
		Found: true,
	}
	osm_nodes.Set(id, temp)
	data.Nodes.Add(MapNode{ID: temp.ID, Lat: temp.Lat, Lon: temp.Lon})
	if data.Nodes.Length()%100000 == 0 {
		slog.Debug(fmt.Sprintf("%v nodes", data.Nodes.Length()))
	}
}

func _WayHandler(obj osm.Object, decoder IOSMDecoder, metric MetricType, osm_nodes Dict[int64, _TempNode], data *MapData) {
	way, ok := obj.(*osm.Way)
	if !ok {
		return
	}
	tags := Dict[string, string](way.TagMap())
	if !decoder.IsValidHighway(tags) {
		return
	}
	oneway := decoder.IsOneway(tags)
	reverse := tags.Get("oneway") == "-1"
	speed := decoder.GetSpeed(tags)

	refs := way.Nodes.NodeIDs()
	for i := 0; i < len(refs)-1; i++ {
		node_a := osm_nodes.Get(int64(refs[i]))
		node_b := osm_nodes.Get(int64(refs[i+1]))
		// nodes missing in the extract
		if !node_a.Found || !node_b.Found {
			continue
		}
		length := geo.GeodesicDist(geo.Coord{node_a.Lat, node_a.Lon}, geo.Coord{node_b.Lat, node_b.Lon})
		if metric == FASTEST {
			length = length * 3.6 / speed
		}
		if reverse {
			node_a, node_b = node_b, node_a
		}
		data.Arcs.Add(MapArc{From: node_a.ID, To: node_b.ID, Length: length})
		if !oneway && !reverse {
			data.Arcs.Add(MapArc{From: node_b.ID, To: node_a.ID, Length: length})
		}
	}
}
