package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/timeline"
	"gopkg.in/yaml.v3"
)

// File names searched in the project directory, in priority order
const (
	JSONFileName = ".ncs-gantt.json"
	YAMLFileName = ".ncs-gantt.yaml"
	YMLFileName  = ".ncs-gantt.yml"
)

// Config represents the full Gantt view configuration
type Config struct {
	Timeline TimelineConfig    `json:"timeline" yaml:"timeline"`
	Zoom     ZoomConfig        `json:"zoom" yaml:"zoom"`
	Geometry timeline.Geometry `json:"geometry" yaml:"geometry"`
	Store    StoreConfig       `json:"store" yaml:"store"`
	UI       UIConfig          `json:"ui" yaml:"ui"`
}

// TimelineConfig contains the initial view settings
type TimelineConfig struct {
	Granularity string `json:"granularity" yaml:"granularity"`
	WeekStart   string `json:"weekStart" yaml:"weekStart"`
	DayStep     int    `json:"dayStep" yaml:"dayStep"`
}

// ZoomConfig maps each granularity to its day count and cell width
type ZoomConfig struct {
	Day   timeline.Zoom `json:"day" yaml:"day"`
	Week  timeline.Zoom `json:"week" yaml:"week"`
	Month timeline.Zoom `json:"month" yaml:"month"`
}

// StoreConfig contains task store settings
type StoreConfig struct {
	Path string `json:"path" yaml:"path"`
}

// UIConfig contains terminal rendering settings
type UIConfig struct {
	CharsPerCell int    `json:"charsPerCell" yaml:"charsPerCell"`
	LabelWidth   int    `json:"labelWidth" yaml:"labelWidth"`
	LogFile      string `json:"logFile" yaml:"logFile"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	zooms := timeline.DefaultZooms()
	return &Config{
		Timeline: TimelineConfig{
			Granularity: string(timeline.GranularityDay),
			WeekStart:   "sunday",
			DayStep:     1,
		},
		Zoom: ZoomConfig{
			Day:   zooms[timeline.GranularityDay],
			Week:  zooms[timeline.GranularityWeek],
			Month: zooms[timeline.GranularityMonth],
		},
		Geometry: timeline.DefaultGeometry(),
		Store: StoreConfig{
			Path: "tasks.json",
		},
		UI: UIConfig{
			CharsPerCell: 3,
			LabelWidth:   24,
		},
	}
}

// Zooms returns the zoom table keyed by granularity
func (c *Config) Zooms() map[timeline.Granularity]timeline.Zoom {
	return map[timeline.Granularity]timeline.Zoom{
		timeline.GranularityDay:   c.Zoom.Day,
		timeline.GranularityWeek:  c.Zoom.Week,
		timeline.GranularityMonth: c.Zoom.Month,
	}
}

// Granularity returns the configured initial granularity
func (c *Config) Granularity() (timeline.Granularity, error) {
	return timeline.ParseGranularity(c.Timeline.Granularity)
}

// WeekStart returns the configured first day of the week
func (c *Config) WeekStart() (time.Weekday, error) {
	return ParseWeekday(c.Timeline.WeekStart)
}

// Validate checks values that defaults cannot repair
func (c *Config) Validate() error {
	if _, err := c.Granularity(); err != nil {
		return fmt.Errorf("timeline.granularity: %w", err)
	}
	if _, err := c.WeekStart(); err != nil {
		return fmt.Errorf("timeline.weekStart: %w", err)
	}
	for g, z := range c.Zooms() {
		if z.DayCount < 1 {
			return fmt.Errorf("zoom.%s.dayCount must be at least 1, got %d", g, z.DayCount)
		}
		if z.CellWidth <= 0 {
			return fmt.Errorf("zoom.%s.cellWidth must be positive, got %v", g, z.CellWidth)
		}
	}
	if c.Geometry.RowHeight <= 0 {
		return fmt.Errorf("geometry.rowHeight must be positive, got %v", c.Geometry.RowHeight)
	}
	return nil
}

// ParseWeekday parses a weekday name such as "monday" or "Mon"
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}

// LoadConfig loads configuration from project path with priority:
// 1. CLI flags (applied by the caller)
// 2. .ncs-gantt.json in project root (with version migration support)
// 3. .ncs-gantt.yaml / .ncs-gantt.yml in project root
// 4. Defaults
func LoadConfig(projectPath string) (*Config, error) {
	jsonPath := filepath.Join(projectPath, JSONFileName)
	if data, err := os.ReadFile(jsonPath); err == nil {
		cfg, err := ParseVersionedConfig(data)
		if err != nil {
			return nil, &domain.ConfigError{Op: "parse", Path: jsonPath, Err: err}
		}
		return MergeWithDefaults(cfg), nil
	}

	for _, name := range []string{YAMLFileName, YMLFileName} {
		path := filepath.Join(projectPath, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, &domain.ConfigError{Op: "parse", Path: path, Err: err}
		}
		return MergeWithDefaults(&cfg), nil
	}

	return DefaultConfig(), nil
}

// SaveConfig saves configuration to the specified path with version
// information. A .yaml or .yml path is written as YAML without a version.
func SaveConfig(cfg *Config, path string) error {
	var data []byte
	var err error
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	default:
		data, err = MarshalVersionedConfig(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &domain.ConfigError{Op: "save", Path: path, Err: err}
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	// Merge Timeline config
	if cfg.Timeline.Granularity == "" {
		cfg.Timeline.Granularity = defaults.Timeline.Granularity
	}
	if cfg.Timeline.WeekStart == "" {
		cfg.Timeline.WeekStart = defaults.Timeline.WeekStart
	}
	if cfg.Timeline.DayStep == 0 {
		cfg.Timeline.DayStep = defaults.Timeline.DayStep
	}

	// Merge Zoom config
	cfg.Zoom.Day = mergeZoom(cfg.Zoom.Day, defaults.Zoom.Day)
	cfg.Zoom.Week = mergeZoom(cfg.Zoom.Week, defaults.Zoom.Week)
	cfg.Zoom.Month = mergeZoom(cfg.Zoom.Month, defaults.Zoom.Month)

	// Merge Geometry config
	if cfg.Geometry.RowHeight == 0 {
		cfg.Geometry.RowHeight = defaults.Geometry.RowHeight
	}
	if cfg.Geometry.CurveOffset == 0 {
		cfg.Geometry.CurveOffset = defaults.Geometry.CurveOffset
	}
	if cfg.Geometry.BarInset == 0 {
		cfg.Geometry.BarInset = defaults.Geometry.BarInset
	}

	// Merge Store config
	if cfg.Store.Path == "" {
		cfg.Store.Path = defaults.Store.Path
	}

	// Merge UI config
	if cfg.UI.CharsPerCell == 0 {
		cfg.UI.CharsPerCell = defaults.UI.CharsPerCell
	}
	if cfg.UI.LabelWidth == 0 {
		cfg.UI.LabelWidth = defaults.UI.LabelWidth
	}

	return cfg
}

func mergeZoom(z, def timeline.Zoom) timeline.Zoom {
	if z.DayCount == 0 {
		z.DayCount = def.DayCount
	}
	if z.CellWidth == 0 {
		z.CellWidth = def.CellWidth
	}
	return z
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}

// String renders the config as indented JSON for display
func (c *Config) String() string {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", *c)
	}
	return string(data)
}
