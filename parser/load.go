package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	. "github.com/ttpr0/go-pathviz/util"
)

type LoadOptions struct {
	Vehicle VehicleType
	Metric  MetricType
}

// Loads map data choosing the format by file extension.
//
//	.xml  map of <node>/<arc> elements
//	.pbf  osm pbf extract
//	.osm  osm xml extract
//	.json map data written by StoreMapData
func LoadMap(file string, options LoadOptions) (MapData, error) {
	ext := strings.ToLower(filepath.Ext(file))
	switch ext {
	case ".xml":
		return ParseXMLMap(file)
	case ".pbf":
		return ParseOSMPBF(file, GetDecoder(options.Vehicle), options.Metric)
	case ".osm":
		return ParseOSMXML(file, GetDecoder(options.Vehicle), options.Metric)
	case ".json":
		return ReadJSONFromFile[MapData](file)
	default:
		return MapData{}, fmt.Errorf("unsupported map format %q", ext)
	}
}

func StoreMapData(data MapData, file string) error {
	return WriteJSONToFile(data, file)
}
