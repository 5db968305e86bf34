// Package config loads engine settings from defaults, OUST_* environment
// variables, and an optional config file.
package config

import (
	"github.com/spf13/viper"

	"github.com/daniig04/Projecte-PROP/eval"
)

type Config struct {
	BoardSize int
	// FixedDepth > 0 pins the search to that depth; 0 selects iterative
	// deepening bounded by MoveTimeMs.
	FixedDepth int
	MoveTimeMs int

	MaterialWeight   float64
	MobilityWeight   float64
	PositionalWeight float64

	LogLevel string
}

// Load reads configuration. path may be empty; the file is optional and
// env vars win over it.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("board_size", 7)
	v.SetDefault("fixed_depth", 0)
	v.SetDefault("move_time_ms", 2000)
	v.SetDefault("material_weight", eval.DefaultMaterialWeight)
	v.SetDefault("mobility_weight", eval.DefaultMobilityWeight)
	v.SetDefault("positional_weight", 0)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("oust")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	return &Config{
		BoardSize:        v.GetInt("board_size"),
		FixedDepth:       v.GetInt("fixed_depth"),
		MoveTimeMs:       v.GetInt("move_time_ms"),
		MaterialWeight:   v.GetFloat64("material_weight"),
		MobilityWeight:   v.GetFloat64("mobility_weight"),
		PositionalWeight: v.GetFloat64("positional_weight"),
		LogLevel:         v.GetString("log_level"),
	}, nil
}

// Evaluator builds the evaluation function these settings describe.
func (c *Config) Evaluator() eval.Evaluator {
	return eval.Evaluator{
		MaterialWeight:   c.MaterialWeight,
		MobilityWeight:   c.MobilityWeight,
		PositionalWeight: c.PositionalWeight,
	}
}
