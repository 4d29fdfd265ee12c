package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidConfig  = goerr.New("invalid configuration")
	ErrNoOutputFormat = goerr.New("no output format enabled")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
)
