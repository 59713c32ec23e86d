package geo

import (
	"math"
)

const (
	VIEWPORT_MARGIN = 20
	MIN_ZOOM        = 0.1
	MAX_ZOOM        = 10.0
)

// Projection between screen pixels and map coordinates.
//
// Longitude grows to the right, latitude grows upwards (screen y downwards).
type Viewport struct {
	width  float64
	height float64
	zoom   float64
	scale  float64
	extent Extent
}

func NewViewport(extent Extent, width, height float64) *Viewport {
	v := &Viewport{
		width:  width,
		height: height,
		zoom:   1,
		extent: extent,
	}
	v._UpdateScale()
	return v
}

func (self *Viewport) _UpdateScale() {
	lat_range := self.extent.MaxLat - self.extent.MinLat
	lon_range := self.extent.MaxLon - self.extent.MinLon
	if self.extent.IsEmpty() || (lat_range <= 0 && lon_range <= 0) {
		// single point, nothing to fit
		self.scale = self.zoom
		return
	}
	// a flat axis puts no limit on the scale
	scale_x := math.Inf(1)
	if lon_range > 0 {
		scale_x = (self.width - 2*VIEWPORT_MARGIN) / lon_range
	}
	scale_y := math.Inf(1)
	if lat_range > 0 {
		scale_y = (self.height - 2*VIEWPORT_MARGIN) / lat_range
	}
	self.scale = min(scale_x, scale_y) * self.zoom
}

func (self *Viewport) MapToScreen(lat, lon float64) (float64, float64) {
	x := (lon-self.extent.MinLon)*self.scale + VIEWPORT_MARGIN
	y := (self.extent.MaxLat-lat)*self.scale + VIEWPORT_MARGIN
	return x, y
}

func (self *Viewport) ScreenToMap(x, y float64) (float64, float64) {
	lon := (x-VIEWPORT_MARGIN)/self.scale + self.extent.MinLon
	lat := self.extent.MaxLat - (y-VIEWPORT_MARGIN)/self.scale
	return lat, lon
}

// Changes the zoom by delta wheel steps (positive zooms in).
func (self *Viewport) Zoom(delta float64) {
	self.SetZoom(self.zoom * (1 + delta*0.1))
}

func (self *Viewport) SetZoom(zoom float64) {
	self.zoom = min(max(zoom, MIN_ZOOM), MAX_ZOOM)
	self._UpdateScale()
}

func (self *Viewport) Resize(width, height float64) {
	self.width = width
	self.height = height
	self._UpdateScale()
}

func (self *Viewport) GetZoom() float64 {
	return self.zoom
}

func (self *Viewport) GetScale() float64 {
	return self.scale
}
