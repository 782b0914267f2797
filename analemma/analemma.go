// Package analemma samples the position of the sun at a fixed clock time
// through a year and turns the samples into a polar sky chart.
package analemma

import (
	"errors"
	"fmt"
	"image"
	"log"
	"time"

	"cloudeng.io/datetime"

	"github.com/devskill-org/analemma/chart"
	"github.com/devskill-org/analemma/sun"
)

// Layer names used in the chart.
const (
	SamplesLayer = "samples"
	SeasonsLayer = "seasons"
)

// Sample is the solar position at one instant
type Sample struct {
	Time     time.Time    `json:"time"`
	Position sun.Position `json:"position"`
}

// SeasonSample is a sample taken on an equinox or solstice date
type SeasonSample struct {
	Sample
	Marker SeasonMarker `json:"-"`
}

// Result holds everything computed for one run
type Result struct {
	Year     int
	Observer datetime.Place
	Samples  []Sample
	Seasons  []SeasonSample
}

// Analemma computes and renders the analemma for one configuration
type Analemma struct {
	config   *Config
	resolver sun.Resolver
	renderer chart.Renderer
	logger   *log.Logger
}

// New creates a new analemma run. A nil resolver defaults to suncalc,
// a nil logger to the standard logger.
func New(config *Config, resolver sun.Resolver, renderer chart.Renderer, logger *log.Logger) *Analemma {
	if resolver == nil {
		resolver = sun.NewSuncalcResolver()
	}
	if logger == nil {
		logger = log.Default()
	}

	return &Analemma{
		config:   config,
		resolver: resolver,
		renderer: renderer,
		logger:   logger,
	}
}

// Observer returns the observer location of the run
func (a *Analemma) Observer() datetime.Place {
	return datetime.Place{
		TimeLocation: time.UTC,
		Latitude:     a.config.Latitude,
		Longitude:    a.config.Longitude,
	}
}

// Compute validates the configuration and resolves the main samples and,
// when enabled, the season samples.
func (a *Analemma) Compute() (*Result, error) {
	if a.config == nil {
		return nil, errors.New("configuration is nil")
	}
	if err := a.config.Validate(); err != nil {
		return nil, err
	}

	cfg := a.config
	result := &Result{Year: cfg.Year, Observer: a.Observer()}

	result.Samples = a.resolve(SampleDates(cfg.Year, cfg.Hour, cfg.Minute))
	a.logger.Printf("Resolved %d samples for %d at %02d:%02d UTC (lat %.5f, lon %.5f)",
		len(result.Samples), cfg.Year, cfg.Hour, cfg.Minute, cfg.Latitude, cfg.Longitude)

	if cfg.Seasons {
		dates := SeasonDates(cfg.Year, cfg.Hour, cfg.Minute)
		if cfg.TrueSeasons {
			dates = TrueSeasonDates(cfg.Year, cfg.Hour, cfg.Minute)
		} else if cfg.Year != 2018 {
			a.logger.Printf("Season markers use the 2018 equinox and solstice dates, %d may differ by a day", cfg.Year)
		}

		for i, s := range a.resolve(dates) {
			result.Seasons = append(result.Seasons, SeasonSample{Sample: s, Marker: SeasonMarkers[i]})
		}
		a.logger.Printf("Resolved %d season markers", len(result.Seasons))
	}

	return result, nil
}

// resolve looks up altitude and azimuth for every date, keeping the order
func (a *Analemma) resolve(dates []time.Time) []Sample {
	lat, lon := a.config.Latitude, a.config.Longitude

	samples := make([]Sample, 0, len(dates))
	for _, d := range dates {
		samples = append(samples, Sample{
			Time: d,
			Position: sun.Position{
				Altitude: a.resolver.Altitude(lat, lon, d),
				Azimuth:  a.resolver.Azimuth(lat, lon, d),
			},
		})
	}
	return samples
}

// BuildChart turns a result into a chart description
func (a *Analemma) BuildChart(result *Result) *chart.Chart {
	cfg := a.config

	c := chart.NewChart(float64(cfg.FigSize), cfg.DPI)
	c.SkyColor = cfg.SkyColor
	c.LabelCoords = cfg.LabelCoords
	c.LabelCardinals = cfg.LabelCardinals

	style := chart.DefaultMarkerStyle()
	style.Fill = cfg.SunColor

	points := make([]chart.Point, 0, len(result.Samples))
	for _, s := range result.Samples {
		points = append(points, chart.Point{Azimuth: s.Position.Azimuth, Altitude: s.Position.Altitude})
	}
	c.AddLayer(chart.Layer{Name: SamplesLayer, Points: points, Style: style, ZOrder: 1})

	if len(result.Seasons) > 0 {
		points := make([]chart.Point, 0, len(result.Seasons))
		for _, s := range result.Seasons {
			p := chart.Point{Azimuth: s.Position.Azimuth, Altitude: s.Position.Altitude}
			if cfg.LabelSeasons {
				p.Label = chart.Label{Text: s.Marker.Label, OffsetX: s.Marker.OffsetX, OffsetY: s.Marker.OffsetY}
			}
			points = append(points, p)
		}
		c.AddLayer(chart.Layer{Name: SeasonsLayer, Points: points, Style: style, ZOrder: 0})
	}

	return c
}

// Run computes the samples, renders the chart and writes it to the
// configured output. With an empty output the image is only returned.
func (a *Analemma) Run() (*Result, image.Image, error) {
	if a.renderer == nil {
		return nil, nil, errors.New("no renderer configured")
	}

	result, err := a.Compute()
	if err != nil {
		return nil, nil, err
	}

	img, err := a.renderer.Render(a.BuildChart(result))
	if err != nil {
		return result, nil, fmt.Errorf("failed to render chart: %w", err)
	}

	if a.config.Output == "" {
		a.logger.Printf("No output path, image kept in memory")
		return result, img, nil
	}

	if err := chart.Save(img, a.config.Output); err != nil {
		return result, img, err
	}
	a.logger.Printf("Wrote %dx%d image to %s", img.Bounds().Dx(), img.Bounds().Dy(), a.config.Output)

	return result, img, nil
}
