package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/menta2k/image-labeler/pkg/types"
)

// Config holds the application configuration
type Config struct {
	Label  LabelConfig  `json:"label"`
	Output OutputConfig `json:"output"`
}

// LabelConfig holds the default label style
type LabelConfig struct {
	Text         string `json:"text"`
	FontFamily   string `json:"font_family"`
	FontSize     int    `json:"font_size"`
	Placement    string `json:"placement"`
	EdgeOffset   int    `json:"edge_offset"`
	ColorScheme  string `json:"color_scheme"`
	Padding      int    `json:"padding"`
	CornerRadius int    `json:"corner_radius"`
}

// OutputConfig holds configuration for output generation
type OutputConfig struct {
	DefaultFormat string `json:"default_format"`
	OutputDir     string `json:"output_dir"`
	Quality       int    `json:"quality"`
	Lossless      bool   `json:"lossless"`
	Prefix        string `json:"prefix"`
	Suffix        string `json:"suffix"`
}

// Default returns a configuration with default values
func Default() *Config {
	opts := types.DefaultOptions()
	return &Config{
		Label: LabelConfig{
			Text:         "YOUR TEXT",
			FontFamily:   string(opts.FontFamily),
			FontSize:     opts.FontSize,
			Placement:    string(opts.Placement),
			EdgeOffset:   opts.EdgeOffset,
			ColorScheme:  string(opts.ColorScheme),
			Padding:      opts.Padding,
			CornerRadius: opts.CornerRadius,
		},
		Output: OutputConfig{
			DefaultFormat: "jpg",
			OutputDir:     "./output",
			Quality:       90,
			Prefix:        "",
			Suffix:        "_labeled",
		},
	}
}

// Options converts the label section to a render options record
func (c *Config) Options() types.Options {
	return types.Options{
		FontFamily:   types.FontFamily(c.Label.FontFamily),
		FontSize:     c.Label.FontSize,
		Placement:    types.Placement(c.Label.Placement),
		EdgeOffset:   c.Label.EdgeOffset,
		ColorScheme:  types.ColorScheme(c.Label.ColorScheme),
		Padding:      c.Label.Padding,
		CornerRadius: c.Label.CornerRadius,
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Options().Validate(); err != nil {
		return fmt.Errorf("label: %w", err)
	}

	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return fmt.Errorf("output.quality must be between 1 and 100")
	}

	switch c.Output.DefaultFormat {
	case "jpg", "jpeg", "png", "webp":
	default:
		return fmt.Errorf("output.default_format must be jpg, png or webp")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "image-labeler", "config.json")
}
