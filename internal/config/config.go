package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Dataset DatasetConfig
	Output  OutputConfig
	Grid    GridConfig
	Logger  LoggerConfig
}

type DatasetConfig struct {
	Path string
}

type OutputConfig struct {
	ChartPath   string
	SummaryPath string
}

type GridConfig struct {
	Min  float64
	Max  float64
	Step float64
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("DATASET_PATH", "data/misell_burdett.csv")
	v.SetDefault("CHART_PATH", "scattering_fit.png")
	v.SetDefault("SUMMARY_PATH", "")
	v.SetDefault("GRID_MIN", 9.90)
	v.SetDefault("GRID_MAX", 11.6)
	v.SetDefault("GRID_STEP", 0.01)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "text")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Dataset: DatasetConfig{
			Path: v.GetString("DATASET_PATH"),
		},
		Output: OutputConfig{
			ChartPath:   v.GetString("CHART_PATH"),
			SummaryPath: v.GetString("SUMMARY_PATH"),
		},
		Grid: GridConfig{
			Min:  v.GetFloat64("GRID_MIN"),
			Max:  v.GetFloat64("GRID_MAX"),
			Step: v.GetFloat64("GRID_STEP"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}
