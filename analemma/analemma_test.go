package analemma

import (
	"bytes"
	"errors"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/devskill-org/analemma/chart"
	"github.com/devskill-org/analemma/sun"
)

// recordingResolver returns positions derived from the day of year and
// records every call
type recordingResolver struct {
	calls []string
}

func (r *recordingResolver) Altitude(lat, lon float64, t time.Time) float64 {
	r.calls = append(r.calls, "alt "+t.Format("01-02"))
	return float64(t.YearDay() % 90)
}

func (r *recordingResolver) Azimuth(lat, lon float64, t time.Time) float64 {
	r.calls = append(r.calls, "az "+t.Format("01-02"))
	return float64(t.YearDay())
}

func (r *recordingResolver) Position(lat, lon float64, t time.Time) sun.Position {
	return sun.Position{Altitude: r.Altitude(lat, lon, t), Azimuth: r.Azimuth(lat, lon, t)}
}

type stubRenderer struct {
	chart *chart.Chart
	err   error
}

func (s *stubRenderer) Render(c *chart.Chart) (image.Image, error) {
	s.chart = c
	if s.err != nil {
		return nil, s.err
	}
	return image.NewRGBA(image.Rect(0, 0, 32, 32)), nil
}

func testLogger() *log.Logger {
	return log.New(&bytes.Buffer{}, "", 0)
}

func TestNew_Defaults(t *testing.T) {
	a := New(DefaultConfig(), nil, nil, nil)
	if a.resolver == nil {
		t.Error("expected default resolver")
	}
	if a.logger == nil {
		t.Error("expected default logger")
	}
}

func TestAnalemma_Compute(t *testing.T) {
	resolver := &recordingResolver{}
	cfg := DefaultConfig()

	result, err := New(cfg, resolver, nil, testLogger()).Compute()
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if len(result.Samples) != 24 {
		t.Fatalf("expected 24 samples, got %d", len(result.Samples))
	}
	if len(result.Seasons) != 4 {
		t.Fatalf("expected 4 season samples, got %d", len(result.Seasons))
	}

	// one altitude and one azimuth call per sample, in sample order
	if len(resolver.calls) != 2*(24+4) {
		t.Fatalf("expected %d resolver calls, got %d", 2*(24+4), len(resolver.calls))
	}
	dates := SampleDates(cfg.Year, cfg.Hour, cfg.Minute)
	for i, d := range dates {
		if resolver.calls[2*i] != "alt "+d.Format("01-02") || resolver.calls[2*i+1] != "az "+d.Format("01-02") {
			t.Errorf("call %d out of order: %s, %s", i, resolver.calls[2*i], resolver.calls[2*i+1])
		}
		if !result.Samples[i].Time.Equal(d) {
			t.Errorf("sample %d at %s, want %s", i, result.Samples[i].Time, d)
		}
		if result.Samples[i].Position.Azimuth != float64(d.YearDay()) {
			t.Errorf("sample %d has azimuth %f", i, result.Samples[i].Position.Azimuth)
		}
	}

	for i, s := range result.Seasons {
		if s.Marker != SeasonMarkers[i] {
			t.Errorf("season sample %d has marker %+v", i, s.Marker)
		}
	}

	if result.Observer.Latitude != cfg.Latitude || result.Observer.Longitude != cfg.Longitude {
		t.Errorf("unexpected observer %+v", result.Observer)
	}
}

func TestAnalemma_ComputeWithoutSeasons(t *testing.T) {
	resolver := &recordingResolver{}
	cfg := DefaultConfig()
	cfg.Seasons = false

	result, err := New(cfg, resolver, nil, testLogger()).Compute()
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if len(result.Seasons) != 0 {
		t.Errorf("expected no season samples, got %d", len(result.Seasons))
	}
	if len(resolver.calls) != 48 {
		t.Errorf("expected 48 resolver calls, got %d", len(resolver.calls))
	}
}

func TestAnalemma_ComputeTrueSeasons(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Year = 2024
	cfg.TrueSeasons = true

	result, err := New(cfg, &recordingResolver{}, nil, testLogger()).Compute()
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	june := result.Seasons[1].Time
	if june.Month() != time.June || june.Day() != 20 {
		t.Errorf("expected the 2024 june solstice on the 20th, got %s", june)
	}
}

func TestAnalemma_ComputeValidates(t *testing.T) {
	resolver := &recordingResolver{}
	cfg := DefaultConfig()
	cfg.Hour = 24

	_, err := New(cfg, resolver, nil, testLogger()).Compute()

	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "hour" {
		t.Fatalf("expected hour validation error, got %v", err)
	}
	if len(resolver.calls) != 0 {
		t.Errorf("expected no computation, got %d resolver calls", len(resolver.calls))
	}

	if _, err := New(nil, resolver, nil, testLogger()).Compute(); err == nil {
		t.Error("expected an error for nil config")
	}
}

func TestAnalemma_BuildChart(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SunColor = "#ff8800"
	cfg.LabelCoords = false

	a := New(cfg, &recordingResolver{}, nil, testLogger())
	result, err := a.Compute()
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	c := a.BuildChart(result)

	if c.FigSize != 8 || c.DPI != 500 {
		t.Errorf("unexpected figure %f at %f", c.FigSize, c.DPI)
	}
	if c.LabelCoords {
		t.Error("expected coordinate labels off")
	}

	samples := c.Layer(SamplesLayer)
	if samples == nil || len(samples.Points) != 24 {
		t.Fatalf("expected 24 points in samples layer")
	}
	if samples.Style.Fill != "#ff8800" {
		t.Errorf("unexpected fill %s", samples.Style.Fill)
	}

	seasons := c.Layer(SeasonsLayer)
	if seasons == nil || len(seasons.Points) != 4 {
		t.Fatalf("expected 4 points in seasons layer")
	}
	if seasons.ZOrder >= samples.ZOrder {
		t.Error("expected season markers beneath the samples")
	}
	if seasons.Points[2].Label.Text != "Sep. Equinox" || seasons.Points[2].Label.OffsetX != -84 {
		t.Errorf("unexpected label %+v", seasons.Points[2].Label)
	}
}

func TestAnalemma_BuildChartWithoutSeasonLabels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LabelSeasons = false

	a := New(cfg, &recordingResolver{}, nil, testLogger())
	result, _ := a.Compute()
	c := a.BuildChart(result)

	for _, p := range c.Layer(SeasonsLayer).Points {
		if p.Label.Text != "" {
			t.Errorf("expected no label, got %q", p.Label.Text)
		}
	}

	cfg.Seasons = false
	result, _ = a.Compute()
	if c := a.BuildChart(result); c.Layer(SeasonsLayer) != nil {
		t.Error("expected no seasons layer when seasons are off")
	}
}

func TestAnalemma_Run(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Output = filepath.Join(dir, "out.png")

	renderer := &stubRenderer{}
	result, img, err := New(cfg, &recordingResolver{}, renderer, testLogger()).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result == nil || img == nil {
		t.Fatal("expected result and image")
	}
	if renderer.chart == nil {
		t.Fatal("renderer was not called")
	}

	info, err := os.Stat(cfg.Output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output is empty")
	}
}

func TestAnalemma_RunInMemory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = ""

	_, img, err := New(cfg, &recordingResolver{}, &stubRenderer{}, testLogger()).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if img == nil {
		t.Error("expected an in-memory image")
	}
}

func TestAnalemma_RunErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = filepath.Join(t.TempDir(), "out.png")

	if _, _, err := New(cfg, &recordingResolver{}, nil, testLogger()).Run(); err == nil {
		t.Error("expected an error without a renderer")
	}

	renderErr := errors.New("backend exploded")
	_, _, err := New(cfg, &recordingResolver{}, &stubRenderer{err: renderErr}, testLogger()).Run()
	if !errors.Is(err, renderErr) {
		t.Errorf("expected wrapped render error, got %v", err)
	}
	if _, statErr := os.Stat(cfg.Output); !os.IsNotExist(statErr) {
		t.Error("no file should be written when rendering fails")
	}
}

func TestAnalemma_RunWithSuncalc(t *testing.T) {
	renderer, err := chart.NewGGRenderer()
	if err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.FigSize = 2
	cfg.DPI = 100
	cfg.Output = filepath.Join(t.TempDir(), "analemma.jpg")

	var logs bytes.Buffer
	result, img, err := New(cfg, sun.NewSuncalcResolver(), renderer, log.New(&logs, "", 0)).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if img.Bounds().Dx() != 200 {
		t.Errorf("expected a 200 pixel image, got %d", img.Bounds().Dx())
	}
	if !strings.Contains(logs.String(), "Wrote 200x200 image") {
		t.Errorf("expected a write log line, got %q", logs.String())
	}

	// at the tropic of capricorn every noon sample is above the horizon
	for i, s := range result.Samples {
		if s.Position.Altitude <= 0 {
			t.Errorf("sample %d below the horizon: %+v", i, s.Position)
		}
	}
}
