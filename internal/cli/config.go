// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CLASSICS_LOG_LEVEL.
const EnvPrefix = "CLASSICS"

// Configuration keys; each is both a --flag and an env variable.
const (
	keyLogLevel      = "log-level"
	keyLogFile       = "log-file"
	keyLogMaxSize    = "log-max-size"
	keyLogMaxBackups = "log-max-backups"
)

// ErrBadLogLevel is returned for a log level outside debug/info/warn/error.
var ErrBadLogLevel = errors.New("cli: unknown log level")

// Config is the resolved driver configuration.
// Precedence: explicit flag > environment > default.
type Config struct {
	LogLevel      string // debug, info, warn or error
	LogFile       string // empty: log to stderr
	LogMaxSize    int    // megabytes before rotation
	LogMaxBackups int    // rotated files to keep
}

// LoadConfig parses args for the program called name and overlays
// CLASSICS_* environment variables. pflag.ErrHelp is returned as is.
func LoadConfig(name string, args []string) (Config, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String(keyLogLevel, "warn", "log level: debug, info, warn or error")
	fs.String(keyLogFile, "", "write logs to this file (rotated) instead of stderr")
	fs.Int(keyLogMaxSize, 10, "log file size in MB before rotation")
	fs.Int(keyLogMaxBackups, 3, "rotated log files to keep")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("cli: bind flags: %w", err)
	}

	cfg := Config{
		LogLevel:      strings.ToLower(v.GetString(keyLogLevel)),
		LogFile:       v.GetString(keyLogFile),
		LogMaxSize:    v.GetInt(keyLogMaxSize),
		LogMaxBackups: v.GetInt(keyLogMaxBackups),
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
