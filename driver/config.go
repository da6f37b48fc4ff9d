package driver

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the driver's tunable settings; LoadConfig starts from
// DefaultConfig. The CLI reads Epsilon and Seed; Run takes no Config,
// and nothing reads MaxSeconds, MaxTransformations or CSVPath.
type Config struct {
	Epsilon            float64 `mapstructure:"epsilon" yaml:"epsilon"`
	Seed               int64   `mapstructure:"seed" yaml:"seed"`
	MaxSeconds         int     `mapstructure:"max_seconds" yaml:"max_seconds"`
	MaxTransformations int     `mapstructure:"max_transformations" yaml:"max_transformations"`
	CSVPath            string  `mapstructure:"csv_path" yaml:"csv_path"`
}

// DefaultConfig returns the configuration used when no YAML file, env
// var, or flag overrides a field.
func DefaultConfig() Config {
	return Config{
		Epsilon:            0.1,
		Seed:               1,
		MaxSeconds:         0,
		MaxTransformations: 1,
		CSVPath:            "",
	}
}

// LoadConfig reads path (if non-empty) as YAML, then layers in any
// ARCSYNTH_-prefixed environment variables, on top of DefaultConfig.
// Precedence, lowest to highest: defaults, YAML file, environment.
// Flag overrides (the CLI's explicit positional/optional arguments)
// are applied by the caller afterwards via Config's exported fields.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	vp := viper.New()
	vp.SetEnvPrefix("ARCSYNTH")
	vp.AutomaticEnv()
	vp.SetDefault("epsilon", cfg.Epsilon)
	vp.SetDefault("seed", cfg.Seed)
	vp.SetDefault("max_seconds", cfg.MaxSeconds)
	vp.SetDefault("max_transformations", cfg.MaxTransformations)
	vp.SetDefault("csv_path", cfg.CSVPath)

	if path != "" {
		vp.SetConfigFile(path)
		vp.SetConfigType("yaml")
		if err := vp.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("driver: reading config %s: %w", path, err)
		}

		// The file is also parsed directly with yaml.v3 into cfg, which
		// reports YAML errors against the typed struct. vp.Unmarshal
		// below then decodes viper's merged view (defaults, file,
		// environment) over every field, so the final values are viper's.
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("driver: reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("driver: parsing config %s: %w", path, err)
		}
	}

	if err := vp.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("driver: decoding config: %w", err)
	}

	return cfg, nil
}
