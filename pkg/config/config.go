package config

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config manages pipeline configuration using Viper
type Config struct {
	v *viper.Viper
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	v := viper.New()

	// Input parameters
	v.SetDefault("input.path", "male-flight-attendants.tsv")

	// Graph parameters
	v.SetDefault("graph.similarity_threshold", 10.0)

	// Analysis parameters
	v.SetDefault("analysis.sort_ks_input", true)

	// Output parameters
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.degree_plot", "degree_distribution.png")
	v.SetDefault("output.two_hop_plot", "two_hop_distribution.png")

	// Plot parameters
	v.SetDefault("plot.width_inches", 8.0)
	v.SetDefault("plot.height_inches", 6.0)

	// Logging parameters
	v.SetDefault("logging.level", "info")

	return &Config{v: v}
}

// LoadFromFile loads configuration from file
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Getters for input parameters
func (c *Config) InputPath() string { return c.v.GetString("input.path") }

// Getters for graph parameters
func (c *Config) SimilarityThreshold() float64 { return c.v.GetFloat64("graph.similarity_threshold") }

// Getters for analysis parameters
func (c *Config) SortKSInput() bool { return c.v.GetBool("analysis.sort_ks_input") }

// Getters for output parameters
func (c *Config) OutputDir() string      { return c.v.GetString("output.dir") }
func (c *Config) DegreePlotFile() string { return c.v.GetString("output.degree_plot") }
func (c *Config) TwoHopPlotFile() string { return c.v.GetString("output.two_hop_plot") }

func (c *Config) PlotWidthInches() float64  { return c.v.GetFloat64("plot.width_inches") }
func (c *Config) PlotHeightInches() float64 { return c.v.GetFloat64("plot.height_inches") }

func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }

// Set allows dynamic configuration changes
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// CreateLogger creates a zerolog logger based on config
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "jobgraph").Logger()
}
