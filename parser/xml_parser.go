package parser

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"

	. "github.com/ttpr0/go-pathviz/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// xml map parser
//*******************************************

// Parses a map of the form
//
//	<map>
//	  <nodes><node id="0" latitude="49.61" longitude="6.13"/></nodes>
//	  <arcs><arc from="0" to="1" length="120"/></arcs>
//	</map>
//
// node and arc elements are recognized at any depth. A node id given twice keeps the last node.
func ParseXMLMap(file string) (MapData, error) {
	f, err := os.Open(file)
	if err != nil {
		return MapData{}, fmt.Errorf("failed to open map %s: %w", file, err)
	}
	defer f.Close()

	data, err := DecodeXMLMap(f)
	if err != nil {
		return MapData{}, fmt.Errorf("failed to parse map %s: %w", file, err)
	}
	slog.Info(fmt.Sprintf("parsed xml map: %v nodes, %v arcs", data.Nodes.Length(), data.Arcs.Length()))
	return data, nil
}

func DecodeXMLMap(reader io.Reader) (MapData, error) {
	data := NewMapData(1000, 1000)
	node_index := NewDict[int32, int](1000)

	decoder := xml.NewDecoder(reader)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return data, err
		}
		elem, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch elem.Name.Local {
		case "node":
			node, err := _DecodeNode(elem)
			if err != nil {
				return data, err
			}
			if node_index.ContainsKey(node.ID) {
				data.Nodes.Set(node_index.Get(node.ID), node)
			} else {
				node_index.Set(node.ID, data.Nodes.Length())
				data.Nodes.Add(node)
			}
		case "arc":
			arc, err := _DecodeArc(elem)
			if err != nil {
				return data, err
			}
			data.Arcs.Add(arc)
		}
	}
	return data, nil
}

func _GetAttr(elem xml.StartElement, name string) (string, bool) {
	for _, attr := range elem.Attr {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

func _ParseIntAttr(elem xml.StartElement, name string) (int32, error) {
	value, ok := _GetAttr(elem, name)
	if !ok {
		return 0, fmt.Errorf("<%s> is missing attribute %q", elem.Name.Local, name)
	}
	num, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("<%s> has invalid %s %q: %w", elem.Name.Local, name, value, err)
	}
	return int32(num), nil
}

func _ParseFloatAttr(elem xml.StartElement, name string) (float64, error) {
	value, ok := _GetAttr(elem, name)
	if !ok {
		return 0, fmt.Errorf("<%s> is missing attribute %q", elem.Name.Local, name)
	}
	num, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("<%s> has invalid %s %q: %w", elem.Name.Local, name, value, err)
	}
	return num, nil
}

func _DecodeNode(elem xml.StartElement) (MapNode, error) {
	id, err := _ParseIntAttr(elem, "id")
	if err != nil {
		return MapNode{}, err
	}
	lat, err := _ParseFloatAttr(elem, "latitude")
	if err != nil {
		return MapNode{}, err
	}
	lon, err := _ParseFloatAttr(elem, "longitude")
	if err != nil {
		return MapNode{}, err
	}
	return MapNode{ID: id, Lat: lat, Lon: lon}, nil
}

func _DecodeArc(elem xml.StartElement) (MapArc, error) {
	from, err := _ParseIntAttr(elem, "from")
	if err != nil {
		return MapArc{}, err
	}
	to, err := _ParseIntAttr(elem, "to")
	if err != nil {
		return MapArc{}, err
	}
	length, err := _ParseFloatAttr(elem, "length")
	if err != nil {
		return MapArc{}, err
	}
	return MapArc{From: from, To: to, Length: length}, nil
}
