package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/localize"
	"github.com/dmitrymomot/localize/pkg/logger"
)

// Config is the configuration of the localize binaries.
type Config struct {
	Localization Localization  `yaml:"localization" toml:"localization"`
	HTTP         HTTP          `yaml:"http" toml:"http"`
	Log          logger.Config `yaml:"log" toml:"log"`
}

// Localization configures the translation service.
type Localization struct {
	Root          string `env:"LOCALIZE_ROOT" yaml:"root" toml:"root"`
	DefaultLocale string `env:"LOCALIZE_DEFAULT_LOCALE" envDefault:"en-US" yaml:"default_locale" toml:"default_locale"`
	ForcedLocale  string `env:"LOCALIZE_FORCED_LOCALE" yaml:"forced_locale" toml:"forced_locale"`
	InitialScope  string `env:"LOCALIZE_INITIAL_SCOPE" yaml:"initial_scope" toml:"initial_scope"`
	LoadOnInit    bool   `env:"LOCALIZE_LOAD_ON_INIT" envDefault:"true" yaml:"load_on_init" toml:"load_on_init"`
	YAML          bool   `env:"LOCALIZE_YAML" yaml:"yaml" toml:"yaml"`
}

// HTTP configures the HTTP server.
type HTTP struct {
	Addr            string   `env:"HTTP_ADDR" envDefault:":8080" yaml:"addr" toml:"addr"`
	ReloadSchedule  string   `env:"RELOAD_SCHEDULE" yaml:"reload_schedule" toml:"reload_schedule"`
	ShutdownTimeout Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s" yaml:"shutdown_timeout" toml:"shutdown_timeout"`
}

// Duration is a time.Duration read from text such as "10s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Load reads the configuration. A .env file in the working directory is
// loaded first when present, then the environment is parsed. When file is
// not empty, the YAML or TOML file it names is decoded on top, so its
// values win over the environment.
func Load(file string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: loading .env: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("config: parsing environment: %w", err)
	}

	if file != "" {
		if err := decodeFile(file, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options converts the localization settings into service options.
func (c Localization) Options() []localize.Option {
	opts := []localize.Option{
		localize.WithDefaultLocale(c.DefaultLocale),
		localize.WithLoadOnInit(c.LoadOnInit),
		localize.WithInitialScope(c.InitialScope),
	}
	if c.ForcedLocale != "" {
		opts = append(opts, localize.WithForcedLocale(c.ForcedLocale))
	}
	if c.YAML {
		opts = append(opts, localize.WithYAML())
	}
	return opts
}

func decodeFile(file string, cfg *Config) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("config: reading %q: %w", file, err)
	}

	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("config: decoding %q: %w", file, err)
	}
	return nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Localization.Root) == "" {
		return ErrMissingRoot
	}
	if c.HTTP.ReloadSchedule != "" {
		if _, err := cron.ParseStandard(c.HTTP.ReloadSchedule); err != nil {
			return fmt.Errorf("%w: %q: %s", ErrInvalidSchedule, c.HTTP.ReloadSchedule, err)
		}
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		c.HTTP.ShutdownTimeout = Duration(10 * time.Second)
	}
	return nil
}
