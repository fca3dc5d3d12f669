package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iw2rmb/slashpad/catalog"
	"github.com/iw2rmb/slashpad/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App         app.Config
	Logging     Logging
	ShowVersion bool
	Flags       map[string]string
	Args        []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envOptions    = "SLASHPAD_OPTIONS"
	envTrigger    = "SLASHPAD_TRIGGER"
	envText       = "SLASHPAD_TEXT"
	envMetrics    = "SLASHPAD_METRICS"
	envFontFamily = "SLASHPAD_FONT_FAMILY"
	envFontSize   = "SLASHPAD_FONT_SIZE"
	envTrace      = "SLASHPAD_TRACE"
	envLogFile    = "SLASHPAD_LOG_FILE"
)

// ErrInvalid marks configuration that parsed but cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Flags win over
// environment values.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("slashpad", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	options := fs.String("options", envOrDefault(env, envOptions, ""), "option catalog file (.toml, .yaml or .yml); built-in options when empty")
	trigger := fs.String("trigger", envOrDefault(env, envTrigger, "/"), "character that opens the menu")
	text := fs.String("text", envOrDefault(env, envText, ""), "initial buffer text")
	metricsMode := fs.String("metrics", envOrDefault(env, envMetrics, app.MetricsCell), "anchor measurement: cell or face")
	fontFamily := fs.String("font-family", envOrDefault(env, envFontFamily, "go-mono"), "font family for face metrics")
	fontSize := fs.Float64("font-size", envOrFloat(env, envFontSize, 14), "font size in points for face metrics")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	version := fs.Bool("version", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			OptionsPath: *options,
			Trigger:     firstRune(*trigger),
			Text:        *text,
			Metrics:     strings.ToLower(strings.TrimSpace(*metricsMode)),
			FontFamily:  *fontFamily,
			FontSize:    *fontSize,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		ShowVersion: *version,
		Flags: map[string]string{
			"options":    *options,
			"trigger":    *trigger,
			"text":       *text,
			"metrics":    *metricsMode,
			"fontFamily": *fontFamily,
			"fontSize":   strconv.FormatFloat(*fontSize, 'g', -1, 64),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}
	if utf8.RuneCountInString(*trigger) != 1 {
		cfg.App.Trigger = -1
	}

	return cfg, nil
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return -1
	}
	return r
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrFloat(env map[string]string, key string, fallback float64) float64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the configuration can start the program.
func Validate(cfg Config) error {
	if cfg.ShowVersion {
		return nil
	}
	a := cfg.App
	if a.Trigger <= 0 || !unicode.IsPrint(a.Trigger) || unicode.IsSpace(a.Trigger) {
		return fmt.Errorf("%w: trigger must be a single printable non-space character (got %q)", ErrInvalid, cfg.Flags["trigger"])
	}
	switch a.Metrics {
	case app.MetricsCell:
	case app.MetricsFace:
		if a.FontSize <= 0 {
			return fmt.Errorf("%w: font-size must be > 0 (got %g)", ErrInvalid, a.FontSize)
		}
		if strings.TrimSpace(a.FontFamily) == "" {
			return fmt.Errorf("%w: font-family is required for face metrics", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: metrics must be %q or %q (got %q)", ErrInvalid, app.MetricsCell, app.MetricsFace, a.Metrics)
	}
	if a.OptionsPath != "" {
		if _, err := catalog.FormatForPath(a.OptionsPath); err != nil {
			return fmt.Errorf("%w: options: %w", ErrInvalid, err)
		}
	}
	return nil
}
