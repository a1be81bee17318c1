package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables read by FromEnv.
const (
	EnvInterpreter = "NODEDIAG_INTERPRETER"
	EnvFormat      = "NODEDIAG_FORMAT"
	EnvColor       = "NODEDIAG_COLOR"
	EnvDebug       = "NODEDIAG_DEBUG"
	EnvNoColor     = "NO_COLOR"
)

// Load builds a Config from defaults and the process environment.
func Load() (Config, error) {
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from defaults overlaid with the variables lookup
// returns. Flags are applied on top by the caller.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvInterpreter); ok && v != "" {
		cfg.Interpreter = v
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		cfg.Format = strings.ToLower(v)
	}
	// https://no-color.org: any non-empty value disables color
	if v, ok := lookup(EnvNoColor); ok && v != "" {
		cfg.Color = ColorNever
	}
	if v, ok := lookup(EnvColor); ok && v != "" {
		cfg.Color = strings.ToLower(v)
	}
	if v, ok := lookup(EnvDebug); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", EnvDebug, err)
		}
		cfg.Debug = debug
	}

	return cfg, nil
}
