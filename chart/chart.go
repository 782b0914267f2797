// Package chart renders points given in horizontal sky coordinates onto a
// polar azimuthal-equidistant chart centred on the zenith.
//
// The package knows nothing about the sun or dates: callers build a Chart out
// of Layers of (azimuth, altitude) Points and hand it to a Renderer.
//
// Basic usage:
//
//	c := chart.NewChart(8, 500)
//	c.AddLayer(chart.Layer{
//		Name:   "samples",
//		Points: points,
//		Style:  chart.DefaultMarkerStyle(),
//		ZOrder: 1,
//	})
//
//	renderer, err := chart.NewGGRenderer()
//	if err != nil {
//		log.Fatal(err)
//	}
//	img, err := renderer.Render(c)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = chart.Save(img, "analemma.png")
package chart

import (
	"fmt"
	"image"
	"sort"
)

const (
	// DefaultSkyColor fills the chart area.
	DefaultSkyColor = "#b9e3f3"
	// DefaultSunColor fills the sample markers.
	DefaultSunColor = "#FDB813"
	// DefaultGridStep is the spacing of parallels and meridians in degrees.
	DefaultGridStep = 10.0
)

// Renderer produces a raster image from a chart description
type Renderer interface {
	Render(c *Chart) (image.Image, error)
}

// Point is a position on the sky in degrees, azimuth clockwise from north.
type Point struct {
	Azimuth  float64
	Altitude float64
	Label    Label
}

// Label is a text annotation attached to a point. Offsets are in points,
// OffsetY grows upwards.
type Label struct {
	Text    string
	OffsetX float64
	OffsetY float64
}

// MarkerStyle describes how the points of a layer are drawn.
type MarkerStyle struct {
	Fill      string  // hex color
	Edge      string  // hex color
	Size      float64 // marker diameter in points
	EdgeWidth float64 // points
}

// DefaultMarkerStyle returns the sun colored marker used for samples
func DefaultMarkerStyle() MarkerStyle {
	return MarkerStyle{
		Fill:      DefaultSunColor,
		Edge:      "#000000",
		Size:      12,
		EdgeWidth: 1,
	}
}

// Layer is a group of uniformly styled points. Lower ZOrder is drawn first.
type Layer struct {
	Name   string
	Points []Point
	Style  MarkerStyle
	ZOrder int
}

// Chart describes a complete sky chart.
type Chart struct {
	FigSize        float64 // inches, the image is square
	DPI            float64
	SkyColor       string
	Radius         float64 // zenith distance at the chart edge, degrees
	GridStep       float64 // degrees
	LabelCoords    bool
	LabelCardinals bool
	Layers         []Layer
}

// NewChart creates a chart with the default sky, grid and labels
func NewChart(figSize, dpi float64) *Chart {
	return &Chart{
		FigSize:        figSize,
		DPI:            dpi,
		SkyColor:       DefaultSkyColor,
		Radius:         DefaultRadius,
		GridStep:       DefaultGridStep,
		LabelCoords:    true,
		LabelCardinals: true,
	}
}

// AddLayer appends a layer to the chart
func (c *Chart) AddLayer(l Layer) {
	c.Layers = append(c.Layers, l)
}

// Layer returns the layer with the given name, or nil.
func (c *Chart) Layer(name string) *Layer {
	for i := range c.Layers {
		if c.Layers[i].Name == name {
			return &c.Layers[i]
		}
	}
	return nil
}

// SortedLayers returns the layers in drawing order. Layers with equal
// ZOrder keep their insertion order.
func (c *Chart) SortedLayers() []Layer {
	layers := make([]Layer, len(c.Layers))
	copy(layers, c.Layers)
	sort.SliceStable(layers, func(i, j int) bool {
		return layers[i].ZOrder < layers[j].ZOrder
	})
	return layers
}

// PixelSize returns the side of the rendered image in pixels
func (c *Chart) PixelSize() int {
	return int(c.FigSize*c.DPI + 0.5)
}

// Validate checks that the chart can be rendered
func (c *Chart) Validate() error {
	if c.FigSize <= 0 {
		return fmt.Errorf("figure size must be greater than 0, got: %f", c.FigSize)
	}
	if c.DPI <= 0 {
		return fmt.Errorf("dpi must be greater than 0, got: %f", c.DPI)
	}
	if c.PixelSize() < 16 {
		return fmt.Errorf("image too small: %d pixels", c.PixelSize())
	}
	if c.Radius <= 0 || c.Radius > 180 {
		return fmt.Errorf("radius must be in (0, 180], got: %f", c.Radius)
	}
	if c.GridStep <= 0 {
		return fmt.Errorf("grid step must be greater than 0, got: %f", c.GridStep)
	}
	if _, err := ParseHexColor(c.SkyColor); err != nil {
		return fmt.Errorf("sky color: %w", err)
	}
	for _, l := range c.Layers {
		if l.Style.Size < 0 || l.Style.EdgeWidth < 0 {
			return fmt.Errorf("layer %q: marker size and edge width must be non-negative", l.Name)
		}
		if _, err := ParseHexColor(l.Style.Fill); err != nil {
			return fmt.Errorf("layer %q fill: %w", l.Name, err)
		}
		if _, err := ParseHexColor(l.Style.Edge); err != nil {
			return fmt.Errorf("layer %q edge: %w", l.Name, err)
		}
	}
	return nil
}
