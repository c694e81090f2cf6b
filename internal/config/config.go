package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"

	"github.com/atomicstack/persona-picker/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDataDir     = "PERSONA_PICKER_DATA_DIR"
	envProfilesDir = "PERSONA_PICKER_PROFILES_DIR"
	envExportsDir  = "PERSONA_PICKER_EXPORTS_DIR"
	envUI          = "PERSONA_PICKER_UI"
	envSeed        = "PERSONA_PICKER_SEED"
	envPageSize    = "PERSONA_PICKER_PAGE_SIZE"
	envWidth       = "PERSONA_PICKER_WIDTH"
	envTrace       = "PERSONA_PICKER_TRACE"
	envLogFile     = "PERSONA_PICKER_LOG_FILE"
)

var validate = validator.New()

// Options holds the flag values registered by Bind.
type Options struct {
	fs          *pflag.FlagSet
	dataDir     *string
	profilesDir *string
	exportsDir  *string
	ui          *string
	seed        *int64
	pageSize    *int
	width       *int
	trace       *bool
	logFile     *string
}

// Bind registers the configuration flags on fs. Environment variables in
// environ become the flag defaults.
func Bind(fs *pflag.FlagSet, environ []string) *Options {
	env := parseEnv(environ)
	return &Options{
		fs:          fs,
		dataDir:     fs.String("data-dir", envOrDefault(env, envDataDir, "data"), "directory holding the name lists and category trees"),
		profilesDir: fs.String("profiles-dir", envOrDefault(env, envProfilesDir, "profiles"), "directory where profiles are saved"),
		exportsDir:  fs.String("exports-dir", envOrDefault(env, envExportsDir, "exports"), "directory where exports are written"),
		ui:          fs.String("ui", envOrDefault(env, envUI, app.UIAuto), "prompt style: auto, tui or line"),
		seed:        fs.Int64("seed", envOrInt64(env, envSeed, 0), "random seed for page sampling and random personas (0 uses the clock)"),
		pageSize:    fs.Int("page-size", envOrInt(env, envPageSize, 10), "items shown per page when browsing categories"),
		width:       fs.Int("width", envOrInt(env, envWidth, 0), "menu width in cells (0 uses terminal width)"),
		trace:       fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile:     fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
	}
}

// Config resolves the bound flags into a Config. args is recorded for the
// startup trace.
func (o *Options) Config(args []string) (Config, error) {
	cfg := Config{
		App: app.Config{
			DataDir:     *o.dataDir,
			ProfilesDir: *o.profilesDir,
			ExportsDir:  *o.exportsDir,
			UI:          strings.ToLower(strings.TrimSpace(*o.ui)),
			Seed:        *o.seed,
			PageSize:    *o.pageSize,
			Width:       *o.width,
		},
		Logging: Logging{
			FilePath: *o.logFile,
			Trace:    *o.trace,
		},
		Flags: map[string]string{
			"dataDir":     *o.dataDir,
			"profilesDir": *o.profilesDir,
			"exportsDir":  *o.exportsDir,
			"ui":          *o.ui,
			"seed":        strconv.FormatInt(*o.seed, 10),
			"pageSize":    strconv.Itoa(*o.pageSize),
			"width":       strconv.Itoa(*o.width),
			"trace":       strconv.FormatBool(*o.trace),
			"logFile":     *o.logFile,
		},
		Args: append([]string(nil), args...),
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadArgs parses args on a fresh flag set. Tests and callers without a
// command tree use it.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("persona-picker", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	opts := Bind(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return opts.Config(args)
}

// Validate checks the application options.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg.App); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("invalid %s %q (%s %s)", flagName(fe.Field()), fmt.Sprint(fe.Value()), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func flagName(field string) string {
	switch field {
	case "DataDir":
		return "data-dir"
	case "ProfilesDir":
		return "profiles-dir"
	case "ExportsDir":
		return "exports-dir"
	case "PageSize":
		return "page-size"
	}
	return strings.ToLower(field)
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

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrInt64(env map[string]string, key string, fallback int64) int64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
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
