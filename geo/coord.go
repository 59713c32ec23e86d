package geo

import (
	"math"

	"github.com/paulmach/orb"
	orb_geo "github.com/paulmach/orb/geo"
)

//*******************************************
// coordinates
//*******************************************

// Coordinate pair, points of the map are stored as (lat, lon).
type Coord [2]float64

type CoordArray []Coord

func SquaredDist(a, b Coord) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	return dx*dx + dy*dy
}

// Planar distance between two coordinates.
func EuclideanDist(a, b Coord) float64 {
	return math.Sqrt(SquaredDist(a, b))
}

// Great-circle distance in meters, a and b are (lat, lon).
func GeodesicDist(a, b Coord) float64 {
	return orb_geo.Distance(orb.Point{a[1], a[0]}, orb.Point{b[1], b[0]})
}

// Length of the line in meters.
func GeodesicLength(line CoordArray) float64 {
	length := 0.0
	for i := 0; i < len(line)-1; i++ {
		length += GeodesicDist(line[i], line[i+1])
	}
	return length
}

//*******************************************
// extent
//*******************************************

type Extent struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

func NewExtent() Extent {
	return Extent{
		MinLat: math.MaxFloat64,
		MinLon: math.MaxFloat64,
		MaxLat: -math.MaxFloat64,
		MaxLon: -math.MaxFloat64,
	}
}

func (self *Extent) ExtendBy(lat, lon float64) {
	self.MinLat = min(self.MinLat, lat)
	self.MaxLat = max(self.MaxLat, lat)
	self.MinLon = min(self.MinLon, lon)
	self.MaxLon = max(self.MaxLon, lon)
}

func (self Extent) IsEmpty() bool {
	return self.MinLat > self.MaxLat || self.MinLon > self.MaxLon
}

func (self Extent) Contains(lat, lon float64) bool {
	return lat >= self.MinLat && lat <= self.MaxLat && lon >= self.MinLon && lon <= self.MaxLon
}
