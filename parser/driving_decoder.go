package parser

import (
	. "github.com/ttpr0/go-pathviz/util"
)

//*******************************************
// osm decoder
//*******************************************

type IOSMDecoder interface {
	IsValidHighway(tags Dict[string, string]) bool
	IsOneway(tags Dict[string, string]) bool
	// travel speed in km/h
	GetSpeed(tags Dict[string, string]) float64
}

func GetDecoder(vehicle VehicleType) IOSMDecoder {
	switch vehicle {
	case FOOT:
		return &WalkingDecoder{}
	default:
		return &DrivingDecoder{}
	}
}

//*******************************************
// driving
//*******************************************

type DrivingDecoder struct {
}

var driving_types = Dict[string, bool]{"motorway": true, "motorway_link": true, "trunk": true, "trunk_link": true,
	"primary": true, "primary_link": true, "secondary": true, "secondary_link": true, "tertiary": true, "tertiary_link": true,
	"residential": true, "living_street": true, "service": true, "track": true, "unclassified": true, "road": true}

func (self *DrivingDecoder) IsValidHighway(tags Dict[string, string]) bool {
	if !tags.ContainsKey("highway") {
		return false
	}
	return driving_types.ContainsKey(tags.Get("highway"))
}
func (self *DrivingDecoder) IsOneway(tags Dict[string, string]) bool {
	return _IsOneway(tags.Get("oneway"), RoadTypeFromString(tags.Get("highway")))
}
func (self *DrivingDecoder) GetSpeed(tags Dict[string, string]) float64 {
	typ := RoadTypeFromString(tags.Get("highway"))
	return float64(_GetORSTravelSpeed(typ, tags.Get("maxspeed"), tags.Get("tracktype"), tags.Get("surface")))
}

//*******************************************
// walking
//*******************************************

type WalkingDecoder struct {
}

var walking_types = Dict[string, bool]{"primary": true, "primary_link": true, "secondary": true, "secondary_link": true,
	"tertiary": true, "tertiary_link": true, "residential": true, "living_street": true, "service": true, "track": true,
	"unclassified": true, "road": true, "footway": true, "path": true, "pedestrian": true, "steps": true}

func (self *WalkingDecoder) IsValidHighway(tags Dict[string, string]) bool {
	if !tags.ContainsKey("highway") {
		return false
	}
	if tags.Get("foot") == "no" {
		return false
	}
	return walking_types.ContainsKey(tags.Get("highway"))
}
func (self *WalkingDecoder) IsOneway(tags Dict[string, string]) bool {
	return false
}
func (self *WalkingDecoder) GetSpeed(tags Dict[string, string]) float64 {
	if RoadTypeFromString(tags.Get("highway")) == STEPS {
		return 2
	}
	return 5
}
