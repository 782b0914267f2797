package chart

import "math"

const (
	earthRadius  = 6370997.0  // metres, sphere of the reference map projection
	mapHalfWidth = 10000000.0 // metres from the centre to the edge of the map
)

// DefaultRadius is the zenith distance, in degrees, from the centre of the
// chart to the middle of an edge (about 89.93).
var DefaultRadius = mapHalfWidth / earthRadius * 180 / math.Pi

// Projection is a square azimuthal-equidistant projection centred on the
// zenith. Azimuth grows clockwise with north up and east to the right.
type Projection struct {
	CenterX  float64
	CenterY  float64
	HalfSide float64 // pixels
	Radius   float64 // degrees of zenith distance covered by HalfSide
}

// Scale returns pixels per degree of zenith distance
func (p Projection) Scale() float64 {
	return p.HalfSide / p.Radius
}

// Project converts sky coordinates to pixel coordinates. ok is false when
// the point falls outside the square map area.
func (p Projection) Project(azimuth, altitude float64) (x, y float64, ok bool) {
	r := (90 - altitude) * p.Scale()
	theta := azimuth * math.Pi / 180

	x = p.CenterX + r*math.Sin(theta)
	y = p.CenterY - r*math.Cos(theta)

	const eps = 1e-9
	ok = math.Abs(x-p.CenterX) <= p.HalfSide+eps && math.Abs(y-p.CenterY) <= p.HalfSide+eps
	return x, y, ok
}

// Edge returns the point where the meridian at azimuth leaves the map, and
// the side it leaves through.
func (p Projection) Edge(azimuth float64) (x, y float64, side Side) {
	theta := azimuth * math.Pi / 180
	sin, cos := math.Sin(theta), math.Cos(theta)

	t := p.HalfSide / math.Max(math.Abs(sin), math.Abs(cos))
	x = p.CenterX + t*sin
	y = p.CenterY - t*cos

	switch {
	case math.Abs(cos) >= math.Abs(sin) && cos > 0:
		side = SideTop
	case math.Abs(cos) >= math.Abs(sin):
		side = SideBottom
	case sin > 0:
		side = SideRight
	default:
		side = SideLeft
	}
	return x, y, side
}

// Side is one edge of the square map.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)
