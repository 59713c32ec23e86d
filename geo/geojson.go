package geo

//*******************************************
// geojson
//*******************************************

type Geometry interface {
	Type() string
}

type Point struct {
	Typ         string `json:"type"`
	Coordinates Coord  `json:"coordinates"`
}

// Creates a geojson point, geojson stores (lon, lat).
func NewPoint(c Coord) Point {
	return Point{
		Typ:         "Point",
		Coordinates: Coord{c[1], c[0]},
	}
}

func (self *Point) Type() string {
	return self.Typ
}

type LineString struct {
	Typ         string     `json:"type"`
	Coordinates CoordArray `json:"coordinates"`
}

func NewLineString(line CoordArray) LineString {
	coords := make(CoordArray, len(line))
	for i, c := range line {
		coords[i] = Coord{c[1], c[0]}
	}
	return LineString{
		Typ:         "LineString",
		Coordinates: coords,
	}
}

func (self *LineString) Type() string {
	return self.Typ
}

type Feature struct {
	Typ   string         `json:"type"`
	Geom  Geometry       `json:"geometry"`
	Props map[string]any `json:"properties"`
}

func NewFeature(geom Geometry, props map[string]any) Feature {
	return Feature{
		Typ:   "Feature",
		Geom:  geom,
		Props: props,
	}
}

type FeatureCollection struct {
	Typ      string    `json:"type"`
	Features []Feature `json:"features"`
}

func NewFeatureCollection(features []Feature) FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return FeatureCollection{
		Typ:      "FeatureCollection",
		Features: features,
	}
}
