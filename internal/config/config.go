// Package config defines process configuration and loading hooks.
//
// Conventions:
// - New() returns the defaults; Load layers a YAML file and env on top.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"github.com/okian/tickets/internal/domain/model"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log record format: text or json.
	LogFormat string `koanf:"log_format"`

	// TicketsPath is the tickets document, relative to the working directory.
	TicketsPath string `koanf:"tickets_path"`

	// OriginName and DestinationName select the analysed route by display name.
	OriginName      string `koanf:"origin_name"`
	DestinationName string `koanf:"destination_name"`

	// MetricsTextfile, when set, receives a metrics dump after the run.
	MetricsTextfile string `koanf:"metrics_textfile"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		LogFormat:       "text",
		TicketsPath:     "data/tickets.json",
		OriginName:      model.DefaultOriginName,
		DestinationName: model.DefaultDestinationName,
	}
}

// Route returns the configured route.
func (c *Config) Route() model.Route {
	return model.Route{OriginName: c.OriginName, DestinationName: c.DestinationName}
}
