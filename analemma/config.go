package analemma

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/devskill-org/analemma/chart"
)

// maxPixelSize bounds the rendered image side
const maxPixelSize = 20000

// Config represents the configuration of one analemma run
type Config struct {
	// Observer location
	Latitude  float64 `json:"latitude" yaml:"latitude"`   // decimal degrees, -90..90
	Longitude float64 `json:"longitude" yaml:"longitude"` // decimal degrees, -180..180

	// Sampling, all samples share hour and minute (UTC)
	Year   int `json:"year" yaml:"year"`
	Hour   int `json:"hour" yaml:"hour"`
	Minute int `json:"minute" yaml:"minute"`

	// Season markers
	Seasons     bool `json:"seasons" yaml:"seasons"`           // overlay equinox/solstice markers
	TrueSeasons bool `json:"true_seasons" yaml:"true_seasons"` // use the real dates of the year instead of the 2018 dates

	// Chart settings
	FigSize        int     `json:"figsize" yaml:"figsize"` // inches, square
	DPI            float64 `json:"dpi" yaml:"dpi"`
	Output         string  `json:"output" yaml:"output"` // empty keeps the image in memory
	LabelCoords    bool    `json:"label_coords" yaml:"label_coords"`
	LabelCardinals bool    `json:"label_cardinals" yaml:"label_cardinals"`
	LabelSeasons   bool    `json:"label_seasons" yaml:"label_seasons"`
	SkyColor       string  `json:"sky_color" yaml:"sky_color"`
	SunColor       string  `json:"sun_color" yaml:"sun_color"`

	// Logging settings
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Latitude:       -23.43678, // Tropic of Capricorn
		Longitude:      0,
		Year:           2018,
		Hour:           12,
		Minute:         0,
		Seasons:        true,
		TrueSeasons:    false,
		FigSize:        8,
		DPI:            500,
		Output:         "analemma.png",
		LabelCoords:    true,
		LabelCardinals: true,
		LabelSeasons:   true,
		SkyColor:       chart.DefaultSkyColor,
		SunColor:       chart.DefaultSunColor,
		Verbose:        false,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension
func LoadConfig(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return LoadYAMLConfigFromReader(file)
	default:
		return LoadConfigFromReader(file)
	}
}

// LoadConfigFromReader loads JSON configuration from an io.Reader
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	config := DefaultConfig()

	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config JSON: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadYAMLConfigFromReader loads YAML configuration from an io.Reader
func LoadYAMLConfigFromReader(reader io.Reader) (*Config, error) {
	config := DefaultConfig()

	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode config YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return invalid("latitude", "must be between -90 and 90, got: %f", c.Latitude)
	}

	if c.Longitude < -180 || c.Longitude > 180 {
		return invalid("longitude", "must be between -180 and 180, got: %f", c.Longitude)
	}

	if c.Year < 1 || c.Year > 9999 {
		return invalid("year", "must be between 1 and 9999, got: %d", c.Year)
	}

	if c.Hour < 0 || c.Hour > 23 {
		return invalid("hour", "must be between 0 and 23, got: %d", c.Hour)
	}

	if c.Minute < 0 || c.Minute > 59 {
		return invalid("minute", "must be between 0 and 59, got: %d", c.Minute)
	}

	if c.FigSize <= 0 {
		return invalid("figsize", "must be greater than 0, got: %d", c.FigSize)
	}

	if c.DPI <= 0 {
		return invalid("dpi", "must be greater than 0, got: %f", c.DPI)
	}

	if px := float64(c.FigSize) * c.DPI; px > maxPixelSize {
		return invalid("figsize", "figsize x dpi must not exceed %d pixels, got: %.0f", maxPixelSize, px)
	}

	if c.Output != "" {
		if _, err := chart.FormatFor(c.Output); err != nil {
			return invalid("output", "%v", err)
		}
	}

	if _, err := chart.ParseHexColor(c.SkyColor); err != nil {
		return invalid("sky_color", "%v", err)
	}

	if _, err := chart.ParseHexColor(c.SunColor); err != nil {
		return invalid("sun_color", "%v", err)
	}

	return nil
}

// String returns a string representation of the config
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}
