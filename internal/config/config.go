package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Catalog CatalogConfig
	Media   MediaConfig
	Loading LoadingConfig
	UI      UIConfig
	Log     LogConfig
}

// CatalogConfig holds the sqlite catalog store location.
type CatalogConfig struct {
	Path string
}

// MediaConfig locates bundled media and the external viewer.
type MediaConfig struct {
	Dir         string
	OpenCommand string `mapstructure:"open_command"`
}

// LoadingConfig tunes the start-up progress animation.
type LoadingConfig struct {
	Step     int
	Interval time.Duration
	Settle   time.Duration
}

// UIConfig holds presentation settings.
type UIConfig struct {
	TransitionDelay time.Duration `mapstructure:"transition_delay"`
	Mouse           bool
	AltScreen       bool `mapstructure:"alt_screen"`
}

// LogConfig holds the debug log destination. Empty disables logging.
type LogConfig struct {
	Path string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog.path", ":memory:")
	v.SetDefault("media.dir", "assets")
	v.SetDefault("media.open_command", "xdg-open")
	v.SetDefault("loading.step", 2)
	v.SetDefault("loading.interval", "30ms")
	v.SetDefault("loading.settle", "400ms")
	v.SetDefault("ui.transition_delay", "0s")
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("log.path", "")
}

// Default returns the configuration used when no file or env is present.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		panic("config: invalid defaults: " + err.Error())
	}
	return c
}

// DefaultPath is where Load looks when neither a path nor MLSHOWCASE_CONFIG is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "mlshowcase", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix MLSHOWCASE_.
// An explicit path must exist; the default location is optional.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv("MLSHOWCASE_CONFIG")
		explicit = path != ""
	}
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MLSHOWCASE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate rejects settings the showcase cannot run with.
func (c Config) Validate() error {
	if c.Loading.Step < 1 || c.Loading.Step > 100 {
		return fmt.Errorf("loading.step %d out of range [1,100]", c.Loading.Step)
	}
	if c.Loading.Interval <= 0 {
		return fmt.Errorf("loading.interval must be positive, got %s", c.Loading.Interval)
	}
	if c.Loading.Settle < 0 {
		return fmt.Errorf("loading.settle must not be negative, got %s", c.Loading.Settle)
	}
	if c.UI.TransitionDelay < 0 {
		return fmt.Errorf("ui.transition_delay must not be negative, got %s", c.UI.TransitionDelay)
	}
	return nil
}

// Save writes the provided config to path, creating the directory if needed.
// An empty path writes to MLSHOWCASE_CONFIG or the default location.
func Save(cfg Config, path string) error {
	if path == "" {
		path = os.Getenv("MLSHOWCASE_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("catalog.path", cfg.Catalog.Path)
	v.Set("media.dir", cfg.Media.Dir)
	v.Set("media.open_command", cfg.Media.OpenCommand)
	v.Set("loading.step", cfg.Loading.Step)
	v.Set("loading.interval", cfg.Loading.Interval.String())
	v.Set("loading.settle", cfg.Loading.Settle.String())
	v.Set("ui.transition_delay", cfg.UI.TransitionDelay.String())
	v.Set("ui.mouse", cfg.UI.Mouse)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
