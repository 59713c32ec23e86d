package parser

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

//*******************************************
// road types
//*******************************************

type RoadType int8

const (
	MOTORWAY       RoadType = 1
	MOTORWAY_LINK  RoadType = 2
	TRUNK          RoadType = 3
	TRUNK_LINK     RoadType = 4
	PRIMARY        RoadType = 5
	PRIMARY_LINK   RoadType = 6
	SECONDARY      RoadType = 7
	SECONDARY_LINK RoadType = 8
	TERTIARY       RoadType = 9
	TERTIARY_LINK  RoadType = 10
	RESIDENTIAL    RoadType = 11
	LIVING_STREET  RoadType = 12
	UNCLASSIFIED   RoadType = 13
	ROAD           RoadType = 14
	TRACK          RoadType = 15
	SERVICE        RoadType = 16
	FOOTWAY        RoadType = 17
	PATH           RoadType = 18
	PEDESTRIAN     RoadType = 19
	STEPS          RoadType = 20
)

var road_types = map[string]RoadType{
	"motorway": MOTORWAY, "motorway_link": MOTORWAY_LINK, "trunk": TRUNK, "trunk_link": TRUNK_LINK,
	"primary": PRIMARY, "primary_link": PRIMARY_LINK, "secondary": SECONDARY, "secondary_link": SECONDARY_LINK,
	"tertiary": TERTIARY, "tertiary_link": TERTIARY_LINK, "residential": RESIDENTIAL, "living_street": LIVING_STREET,
	"unclassified": UNCLASSIFIED, "road": ROAD, "track": TRACK, "service": SERVICE, "footway": FOOTWAY,
	"path": PATH, "pedestrian": PEDESTRIAN, "steps": STEPS,
}

// Returns 0 for unknown highway values.
func RoadTypeFromString(s string) RoadType {
	return road_types[s]
}

//*******************************************
// metric
//*******************************************

// Selects what arc lengths of osm maps mean.
type MetricType byte

const (
	// travel time in seconds
	FASTEST MetricType = 0
	// distance in meters
	SHORTEST MetricType = 1
)

func (self MetricType) String() string {
	switch self {
	case FASTEST:
		return "fastest"
	case SHORTEST:
		return "shortest"
	default:
		panic("unknown metric type")
	}
}
func (self MetricType) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self MetricType) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *MetricType) UnmarshalYAML(value *yaml.Node) error {
	typ, err := MetricTypeFromString(value.Value)
	if err != nil {
		return err
	}
	*self = typ
	return nil
}

func MetricTypeFromString(s string) (MetricType, error) {
	switch s {
	case "fastest":
		return FASTEST, nil
	case "shortest":
		return SHORTEST, nil
	default:
		return FASTEST, errors.New("unknown metric type")
	}
}

//*******************************************
// vehicle
//*******************************************

type VehicleType byte

const (
	CAR  VehicleType = 0
	FOOT VehicleType = 1
)

func (self VehicleType) String() string {
	switch self {
	case CAR:
		return "car"
	case FOOT:
		return "foot"
	default:
		panic("unknown vehicle type")
	}
}
func (self VehicleType) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self VehicleType) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *VehicleType) UnmarshalYAML(value *yaml.Node) error {
	typ, err := VehicleTypeFromString(value.Value)
	if err != nil {
		return err
	}
	*self = typ
	return nil
}

func VehicleTypeFromString(s string) (VehicleType, error) {
	switch s {
	case "car":
		return CAR, nil
	case "foot":
		return FOOT, nil
	default:
		return CAR, errors.New("unknown vehicle type")
	}
}
