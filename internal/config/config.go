// Package config loads keypadchain settings from a YAML file with
// environment-variable overrides.
//
// Precedence, lowest first: Default(), the YAML file (if it exists), then
// KEYPAD_* environment variables. The merged result is validated before use.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Load.
const (
	EnvInput     = "KEYPAD_INPUT"
	EnvCodes     = "KEYPAD_CODES"
	EnvMaxDepth  = "KEYPAD_MAX_DEPTH"
	EnvLogLevel  = "KEYPAD_LOG_LEVEL"
	EnvLogFormat = "KEYPAD_LOG_FORMAT"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the full application configuration.
type Config struct {
	// Codes lists door codes inline; appended to any read from Input.
	Codes []string `yaml:"codes" validate:"dive,required"`
	// Input names a file with one door code per line.
	Input string `yaml:"input"`
	// Variants are the chain lengths to evaluate.
	Variants []Variant `yaml:"variants" validate:"required,min=1,dive"`
	// Log controls structured logging.
	Log LogConfig `yaml:"log"`
}

// Variant names one chain length.
type Variant struct {
	Name     string `yaml:"name" validate:"required"`
	MaxDepth int    `yaml:"max_depth" validate:"gte=0,lte=37"` // lte matches cost.MaxChainDepth
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the two puzzle variants (2 and 25 robot keypads), info
// level text logging and no codes.
func Default() Config {
	return Config{
		Variants: []Variant{
			{Name: "part1", MaxDepth: 2},
			{Name: "part2", MaxDepth: 25},
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path (a missing file keeps the defaults; an empty path skips the
// file), applies environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvInput); v != "" {
		cfg.Input = v
	}
	if v := os.Getenv(EnvCodes); v != "" {
		cfg.Codes = splitList(v)
	}
	if v := os.Getenv(EnvMaxDepth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvMaxDepth, v, err)
		}
		cfg.Variants = []Variant{{Name: "depth-" + v, MaxDepth: n}}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (l LogConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger builds a slog.Logger writing to w in the configured format.
func (l LogConfig) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
