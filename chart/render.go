package chart

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Text sizes in points.
const (
	coordFontSize    = 10.0
	labelFontSize    = 10.0
	cardinalFontSize = 18.0
)

// cardinal annotations, positioned in axes fractions from the bottom left
var cardinals = []struct {
	text   string
	fx, fy float64
}{
	{"N", 0.485, 0.95},
	{"E", 0.95, 0.485},
	{"W", 0.01, 0.485},
	{"S", 0.485, 0.01},
}

// GGRenderer draws charts with the gg 2D graphics library
type GGRenderer struct {
	regular *truetype.Font
	bold    *truetype.Font
}

// NewGGRenderer creates a renderer using the Go fonts for all text
func NewGGRenderer() (*GGRenderer, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	return &GGRenderer{regular: regular, bold: bold}, nil
}

// layout holds pixel geometry derived from a chart
type layout struct {
	size int
	dpi  float64
	pt   float64 // pixels per point
	left float64
	top  float64
	side float64
	proj Projection
}

func newLayout(c *Chart) layout {
	size := c.PixelSize()
	pt := c.DPI / 72

	// room for meridian labels, or a thin border when they are off
	margin := 4 * pt
	if c.LabelCoords {
		margin = 3.4 * coordFontSize * pt
	}
	margin = math.Min(margin, float64(size)/4)

	side := float64(size) - 2*margin
	return layout{
		size: size,
		dpi:  c.DPI,
		pt:   pt,
		left: margin,
		top:  margin,
		side: side,
		proj: Projection{
			CenterX:  margin + side/2,
			CenterY:  margin + side/2,
			HalfSide: side / 2,
			Radius:   c.Radius,
		},
	}
}

// Render draws the chart and returns the resulting image
func (r *GGRenderer) Render(c *Chart) (image.Image, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chart: %w", err)
	}

	l := newLayout(c)
	dc := gg.NewContext(l.size, l.size)
	dc.SetColor(color.White)
	dc.Clear()

	sky, err := ParseHexColor(c.SkyColor)
	if err != nil {
		return nil, fmt.Errorf("sky color: %w", err)
	}
	dc.SetColor(sky)
	dc.DrawRectangle(l.left, l.top, l.side, l.side)
	dc.Fill()

	// grid and markers are clipped to the map, labels are not
	dc.DrawRectangle(l.left, l.top, l.side, l.side)
	dc.Clip()

	r.drawGrid(dc, c, l)

	for _, layer := range c.SortedLayers() {
		if err := r.drawMarkers(dc, layer, l); err != nil {
			return nil, err
		}
	}

	dc.ResetClip()

	dc.SetColor(color.Black)
	dc.SetLineWidth(l.pt)
	dc.DrawRectangle(l.left, l.top, l.side, l.side)
	dc.Stroke()

	if c.LabelCoords {
		r.drawMeridianLabels(dc, c, l)
	}

	for _, layer := range c.SortedLayers() {
		r.drawLabels(dc, layer, l)
	}

	if c.LabelCardinals {
		dc.SetFontFace(r.face(r.bold, cardinalFontSize, l.dpi))
		dc.SetColor(color.Black)
		for _, cd := range cardinals {
			x := l.left + cd.fx*l.side
			y := l.top + (1-cd.fy)*l.side
			dc.DrawStringAnchored(cd.text, x, y, 0, 0)
		}
	}

	return dc.Image(), nil
}

func (r *GGRenderer) face(f *truetype.Font, size, dpi float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}

func (r *GGRenderer) drawGrid(dc *gg.Context, c *Chart, l layout) {
	dc.SetRGB(0.5, 0.5, 0.5)
	dc.SetLineWidth(l.pt)
	dc.SetDash(1*l.pt, 3*l.pt)

	cx, cy := l.proj.CenterX, l.proj.CenterY

	// parallels, altitude 0..90
	for alt := 0.0; alt <= 90; alt += c.GridStep {
		radius := (90 - alt) * l.proj.Scale()
		if radius <= 0 {
			continue
		}
		dc.DrawCircle(cx, cy, radius)
		dc.Stroke()
	}

	// meridians
	for az := 0.0; az < 360; az += c.GridStep {
		x, y, _ := l.proj.Edge(az)
		dc.DrawLine(cx, cy, x, y)
		dc.Stroke()
	}

	dc.SetDash()
}

func (r *GGRenderer) drawMeridianLabels(dc *gg.Context, c *Chart, l layout) {
	dc.SetFontFace(r.face(r.regular, coordFontSize, l.dpi))
	dc.SetColor(color.Black)

	pad := 4 * l.pt
	for az := 0.0; az < 360; az += c.GridStep {
		x, y, side := l.proj.Edge(az)
		text := fmt.Sprintf("%.0f°", az)

		switch side {
		case SideTop:
			dc.DrawStringAnchored(text, x, y-pad, 0.5, 0)
		case SideBottom:
			dc.DrawStringAnchored(text, x, y+pad, 0.5, 1)
		case SideRight:
			dc.DrawStringAnchored(text, x+pad, y, 0, 0.5)
		case SideLeft:
			dc.DrawStringAnchored(text, x-pad, y, 1, 0.5)
		}
	}
}

func (r *GGRenderer) drawMarkers(dc *gg.Context, layer Layer, l layout) error {
	fill, err := ParseHexColor(layer.Style.Fill)
	if err != nil {
		return fmt.Errorf("layer %q: %w", layer.Name, err)
	}
	edge, err := ParseHexColor(layer.Style.Edge)
	if err != nil {
		return fmt.Errorf("layer %q: %w", layer.Name, err)
	}

	radius := layer.Style.Size / 2 * l.pt
	dc.SetLineWidth(layer.Style.EdgeWidth * l.pt)

	for _, p := range layer.Points {
		x, y, ok := l.proj.Project(p.Azimuth, p.Altitude)
		if !ok {
			continue
		}
		dc.DrawCircle(x, y, radius)
		dc.SetColor(fill)
		dc.FillPreserve()
		dc.SetColor(edge)
		dc.Stroke()
	}
	return nil
}

func (r *GGRenderer) drawLabels(dc *gg.Context, layer Layer, l layout) {
	dc.SetColor(color.Black)
	faceSet := false

	for _, p := range layer.Points {
		if p.Label.Text == "" {
			continue
		}
		x, y, ok := l.proj.Project(p.Azimuth, p.Altitude)
		if !ok {
			continue
		}
		if !faceSet {
			dc.SetFontFace(r.face(r.bold, labelFontSize, l.dpi))
			faceSet = true
		}
		dc.DrawStringAnchored(p.Label.Text, x+p.Label.OffsetX*l.pt, y-p.Label.OffsetY*l.pt, 0, 0)
	}
}
