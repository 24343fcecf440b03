// Package config handles configuration loading for moodgraph.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/seenimoa/moodgraph/pkg/models"
	"github.com/seenimoa/moodgraph/pkg/utils"
)

// Config represents the complete application configuration.
type Config struct {
	Input    InputConfig    `mapstructure:"input"    yaml:"input"`
	Filter   FilterConfig   `mapstructure:"filter"   yaml:"filter"`
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis"`
	Report   ReportConfig   `mapstructure:"report"   yaml:"report"`
	Logging  LoggingConfig  `mapstructure:"logging"  yaml:"logging"`
}

// InputConfig describes where comments come from.
type InputConfig struct {
	Source   string `mapstructure:"source"   yaml:"source"`   // "csv" or "feed"
	Path     string `mapstructure:"path"     yaml:"path"`     // CSV file path
	FeedURL  string `mapstructure:"feed_url" yaml:"feed_url"` // RSS/Atom URL when source=feed
	Encoding string `mapstructure:"encoding" yaml:"encoding"` // legacy text encoding of the export
}

// FilterConfig controls the row filtering pipeline. The order is
// fixed: date match, then row cap, then placeholder removal.
type FilterConfig struct {
	Date         string   `mapstructure:"date"         yaml:"date"` // YYYY-MM-DD, empty keeps all days
	MaxRows      int      `mapstructure:"max_rows"     yaml:"max_rows"`
	Placeholders []string `mapstructure:"placeholders" yaml:"placeholders"`
}

// AnalysisConfig holds scoring and smoothing parameters.
type AnalysisConfig struct {
	Methods     []string `mapstructure:"methods"      yaml:"methods"`        // scoring methods to run
	LowPassSize int      `mapstructure:"low_pass_size" yaml:"low_pass_size"` // DCT coefficients retained
	CurvePoints int      `mapstructure:"curve_points" yaml:"curve_points"`   // trend curve output length
	Emotion     string   `mapstructure:"emotion"      yaml:"emotion"`        // category for the single-emotion page
	TrendMethod string   `mapstructure:"trend_method" yaml:"trend_method"`   // method for the overall trend page
	Parallel    bool     `mapstructure:"parallel"     yaml:"parallel"`       // score comments concurrently
	Workers     int      `mapstructure:"workers"      yaml:"workers"`        // parallel scoring bound

	// CollapseAllWhitespace switches the normalizer from the literal
	// single double-space replace to a general whitespace collapse.
	// Off by default; turning it on is a deliberate behaviour change.
	CollapseAllWhitespace bool `mapstructure:"collapse_all_whitespace" yaml:"collapse_all_whitespace"`
}

// ReportConfig holds output document settings.
type ReportConfig struct {
	OutputPath  string `mapstructure:"output_path" yaml:"output_path"`
	Title       string `mapstructure:"title"       yaml:"title"`
	PageSize    string `mapstructure:"page_size"   yaml:"page_size"`
	Orientation string `mapstructure:"orientation" yaml:"orientation"`
	TopMixed    int    `mapstructure:"top_mixed"   yaml:"top_mixed"` // sentences on the entropy page
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.moodgraph/config.yaml (home directory)
//  3. /etc/moodgraph/config.yaml (system)
//
// Environment variables override config file values.
// Format: MOODGRAPH_<SECTION>_<KEY>, e.g., MOODGRAPH_FILTER_MAX_ROWS
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".moodgraph"))
	v.AddConfigPath("/etc/moodgraph")

	v.SetEnvPrefix("MOODGRAPH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found — that's fine, use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)

	v.SetEnvPrefix("MOODGRAPH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Input
	v.SetDefault("input.source", "csv")
	v.SetDefault("input.path", "comments.csv")
	v.SetDefault("input.encoding", "latin-1")

	// Filter
	v.SetDefault("filter.date", "")
	v.SetDefault("filter.max_rows", 500)
	v.SetDefault("filter.placeholders", []string{"[deleted]", "[removed]"})

	// Analysis
	v.SetDefault("analysis.methods", []string{"vader", "afinn", "bing"})
	v.SetDefault("analysis.low_pass_size", 5)
	v.SetDefault("analysis.curve_points", 100)
	v.SetDefault("analysis.emotion", "joy")
	v.SetDefault("analysis.trend_method", "vader")
	v.SetDefault("analysis.parallel", false)
	v.SetDefault("analysis.workers", 4)
	v.SetDefault("analysis.collapse_all_whitespace", false)

	// Report
	v.SetDefault("report.output_path", "moodgraph-report.pdf")
	v.SetDefault("report.title", "Comment Sentiment Report")
	v.SetDefault("report.page_size", "A4")
	v.SetDefault("report.orientation", "portrait")
	v.SetDefault("report.top_mixed", 10)

	// Logging
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	switch c.Input.Source {
	case "csv", "feed":
	default:
		return fmt.Errorf("input.source must be \"csv\" or \"feed\", got %q", c.Input.Source)
	}
	if c.Input.Source == "feed" && c.Input.FeedURL == "" {
		return fmt.Errorf("input.feed_url is required when input.source is \"feed\"")
	}
	if c.Filter.Date != "" {
		if _, err := utils.ParseDay(c.Filter.Date); err != nil {
			return fmt.Errorf("filter.date: %w", err)
		}
	}
	if c.Filter.MaxRows < 0 {
		return fmt.Errorf("filter.max_rows must be >= 0, got %d", c.Filter.MaxRows)
	}
	if c.Analysis.LowPassSize < 1 {
		return fmt.Errorf("analysis.low_pass_size must be >= 1, got %d", c.Analysis.LowPassSize)
	}
	if c.Analysis.CurvePoints < c.Analysis.LowPassSize {
		return fmt.Errorf("analysis.curve_points (%d) must be >= analysis.low_pass_size (%d)",
			c.Analysis.CurvePoints, c.Analysis.LowPassSize)
	}
	if !models.IsEmotionLabel(c.Analysis.Emotion) {
		return fmt.Errorf("analysis.emotion %q is not a known category", c.Analysis.Emotion)
	}
	if len(c.Analysis.Methods) == 0 {
		return fmt.Errorf("analysis.methods must name at least one scoring method")
	}
	if c.Analysis.Workers < 1 {
		return fmt.Errorf("analysis.workers must be >= 1, got %d", c.Analysis.Workers)
	}
	if c.Report.OutputPath == "" {
		return fmt.Errorf("report.output_path is required")
	}
	return nil
}

// FilterDay returns the parsed target date, or the zero time when no
// date filter is configured. Validate must have passed.
func (c *Config) FilterDay() (time.Time, bool) {
	if c.Filter.Date == "" {
		return time.Time{}, false
	}
	day, err := utils.ParseDay(c.Filter.Date)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
