// Package config holds the injected configuration for the engine: the
// region allow-list, the target years, the dataset endpoint, and the
// standard series selectors. Everything here was once a scattering of
// process-wide mutable globals; it is now loaded once at startup and
// treated as immutable afterwards.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/veksi/kuntadash/internal/match"
)

// Duration wraps time.Duration so YAML values like "30s" parse.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string like \"30s\"")
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Region is one allow-listed region: its statistical code, display name,
// and the chart color the dashboard assigns to it.
type Region struct {
	Code  string `yaml:"code" json:"code"`
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color" json:"color"`
}

// Series is one dashboard series: a stable identifier and the selector
// that resolves its concept in the dataset's metric dimension.
type Series struct {
	ID       string         `yaml:"id" json:"id"`
	Title    string         `yaml:"title" json:"title"`
	Selector match.Selector `yaml:"selector" json:"selector"`
}

// Config is the full startup configuration.
type Config struct {
	// DatasetURL is the PxWeb table endpoint: GET for metadata, POST for
	// the selection query.
	DatasetURL string `yaml:"dataset_url"`

	// FetchTimeout bounds one fetch attempt, metadata and data together.
	FetchTimeout Duration `yaml:"fetch_timeout"`

	// AreaDim and YearDim are the dimension codes of the area and time
	// axes. MetricHint is the substring that identifies the metric axis
	// by its code.
	AreaDim    string `yaml:"area_dimension"`
	YearDim    string `yaml:"year_dimension"`
	MetricHint string `yaml:"metric_dimension_hint"`

	// TargetYears are the candidate year codes, in preference order.
	TargetYears []string `yaml:"target_years"`

	// Regions is the ordered allow-list. Cube data outside it is dropped.
	Regions []Region `yaml:"regions"`

	// Series are the standard dashboard series.
	Series []Series `yaml:"series"`
}

// Default returns the built-in configuration: the Kaustinen sub-region
// municipalities and the four standard series from the municipal key
// figures table.
func Default() Config {
	return Config{
		DatasetURL:   "https://pxdata.stat.fi/PxWeb/api/v1/fi/Kuntien_avainluvut/2025/kuntien_avainluvut_2025_aikasarja.px",
		FetchTimeout: Duration(30 * time.Second),
		AreaDim:      "Alue",
		YearDim:      "Vuosi",
		MetricHint:   "tiedot",
		TargetYears:  []string{"2020", "2021", "2022", "2023", "2024"},
		Regions: []Region{
			{Code: "KU074", Name: "Halsua", Color: "#8884d8"},
			{Code: "KU236", Name: "Kaustinen", Color: "#82ca9d"},
			{Code: "KU421", Name: "Lestijärvi", Color: "#ff8042"},
			{Code: "KU849", Name: "Toholampi", Color: "#ffc658"},
			{Code: "KU924", Name: "Veteli", Color: "#a4de6c"},
		},
		Series: []Series{
			{
				ID:       "population",
				Title:    "Väkiluku",
				Selector: match.Selector{Keyword: "Väkiluku", Preferred: []string{"Väkiluku"}},
			},
			{
				ID:       "employment",
				Title:    "Työllisyysaste",
				Selector: match.Selector{Keyword: "työllisyysaste", Preferred: []string{"Työllisyysaste, %"}},
			},
			{
				ID:       "unemployment",
				Title:    "Työttömyysaste",
				Selector: match.Selector{Keyword: "työttömyysaste", Preferred: []string{"Työttömyysaste, %"}},
			},
			{
				ID:       "dependency-ratio",
				Title:    "Väestöllinen huoltosuhde",
				Selector: match.Selector{Keyword: "Väestöllinen huoltosuhde"},
			},
		},
	}
}

// Load reads a YAML file over the defaults. Fields absent from the file
// keep their default values; list-valued fields replace the defaults
// wholesale.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the structural requirements the engine depends on.
func (c Config) Validate() error {
	if c.DatasetURL == "" {
		return fmt.Errorf("dataset_url is required")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive")
	}
	if c.AreaDim == "" || c.YearDim == "" {
		return fmt.Errorf("area_dimension and year_dimension are required")
	}
	if len(c.Regions) == 0 {
		return fmt.Errorf("at least one region is required")
	}

	codes := make(map[string]bool, len(c.Regions))
	for _, r := range c.Regions {
		if r.Code == "" || r.Name == "" {
			return fmt.Errorf("region entries need both code and name")
		}
		if codes[r.Code] {
			return fmt.Errorf("duplicate region code %q", r.Code)
		}
		codes[r.Code] = true
	}

	ids := make(map[string]bool, len(c.Series))
	for _, s := range c.Series {
		if s.ID == "" {
			return fmt.Errorf("series entries need an id")
		}
		if ids[s.ID] {
			return fmt.Errorf("duplicate series id %q", s.ID)
		}
		if s.Selector.Keyword == "" && len(s.Selector.Preferred) == 0 {
			return fmt.Errorf("series %q needs a keyword or preferred labels", s.ID)
		}
		ids[s.ID] = true
	}
	return nil
}

// RegionCodes returns the allow-listed codes in configuration order.
func (c Config) RegionCodes() []string {
	out := make([]string, len(c.Regions))
	for i, r := range c.Regions {
		out[i] = r.Code
	}
	return out
}

// RegionNames returns the code-to-display-name allow-list table.
func (c Config) RegionNames() map[string]string {
	out := make(map[string]string, len(c.Regions))
	for _, r := range c.Regions {
		out[r.Code] = r.Name
	}
	return out
}

// SeriesByID looks up a configured series.
func (c Config) SeriesByID(id string) (Series, bool) {
	for _, s := range c.Series {
		if s.ID == id {
			return s, true
		}
	}
	return Series{}, false
}
