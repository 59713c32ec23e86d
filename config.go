package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/ttpr0/go-pathviz/parser"
	. "github.com/ttpr0/go-pathviz/util"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

type Config struct {
	Map      MapOptions      `yaml:"map"`
	Server   ServerOptions   `yaml:"server"`
	Viewport ViewportOptions `yaml:"viewport"`
	Cache    CacheOptions    `yaml:"cache"`
	LogLevel string          `yaml:"log-level"`
}

type MapOptions struct {
	// map source (.xml, .pbf, .osm or .json)
	File string `yaml:"file"`
	// parsed map data is written here and preferred over File on the next start
	Cache   string             `yaml:"cache"`
	Vehicle parser.VehicleType `yaml:"vehicle"`
	Metric  parser.MetricType  `yaml:"metric"`
	// clicks farther away from every node select nothing, 0 disables the limit
	SnapRadius float64 `yaml:"snap-radius"`
}

type ServerOptions struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed-origins"`
}

type ViewportOptions struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type CacheOptions struct {
	Expiration time.Duration `yaml:"expiration"`
	Cleanup    time.Duration `yaml:"cleanup"`
}

func DefaultConfig() Config {
	return Config{
		Map: MapOptions{
			File:    "./data/map.xml",
			Vehicle: parser.CAR,
			Metric:  parser.SHORTEST,
		},
		Server: ServerOptions{
			Port:           5002,
			AllowedOrigins: []string{"*"},
		},
		Viewport: ViewportOptions{
			Width:  1200,
			Height: 800,
		},
		Cache: CacheOptions{
			Expiration: 10 * time.Minute,
			Cleanup:    20 * time.Minute,
		},
		LogLevel: "info",
	}
}

// Loads variables from a .env file in the working directory if there is one.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment")
	}
}

// Reads the config file on top of the defaults.
//
// A missing file is not an error. Environment variables PATHVIZ_MAP_FILE,
// PATHVIZ_PORT and PATHVIZ_LOG_LEVEL override the file.
func ReadConfig(file string) (Config, error) {
	config := DefaultConfig()
	if FileExists(file) {
		slog.Info("Reading config file")
		data, err := os.ReadFile(file)
		if err != nil {
			return config, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else {
		slog.Warn("config file " + file + " not found, using defaults")
	}

	if value := os.Getenv("PATHVIZ_MAP_FILE"); value != "" {
		config.Map.File = value
	}
	if value := os.Getenv("PATHVIZ_PORT"); value != "" {
		port, err := strconv.Atoi(value)
		if err != nil {
			return config, fmt.Errorf("invalid PATHVIZ_PORT %q: %w", value, err)
		}
		config.Server.Port = port
	}
	if value := os.Getenv("PATHVIZ_LOG_LEVEL"); value != "" {
		config.LogLevel = value
	}
	return config, nil
}
