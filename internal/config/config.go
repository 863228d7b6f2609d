package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"rhystmorgan/veContacts/internal/animation"
	"rhystmorgan/veContacts/internal/models"
)

const envPrefix = "VECONTACTS"

// Config holds application configuration.
type Config struct {
	Panel     PanelConfig     `mapstructure:"panel"`
	Animation AnimationConfig `mapstructure:"animation"`
	Audit     AuditConfig     `mapstructure:"audit"`
	Log       LogConfig       `mapstructure:"log"`
	UI        UIConfig        `mapstructure:"ui"`
}

type PanelConfig struct {
	SeedCount     int    `mapstructure:"seed_count"`
	AvatarBaseURL string `mapstructure:"avatar_base_url"`
}

type AnimationConfig struct {
	Enabled   bool    `mapstructure:"enabled"`
	FPS       int     `mapstructure:"fps"`
	Frequency float64 `mapstructure:"frequency"`
	Damping   float64 `mapstructure:"damping"`
}

type AuditConfig struct {
	HistorySize int `mapstructure:"history_size"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("panel.seed_count", models.DefaultSeedCount)
	v.SetDefault("panel.avatar_base_url", models.DefaultAvatarBaseURL)
	v.SetDefault("animation.enabled", true)
	v.SetDefault("animation.fps", animation.DefaultFPS)
	v.SetDefault("animation.frequency", animation.DefaultFrequency)
	v.SetDefault("animation.damping", animation.DefaultDamping)
	v.SetDefault("audit.history_size", 100)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.alt_screen", true)
}

// Load reads configuration from file and env. Env var overrides use prefix
// VECONTACTS_. An explicit path (or VECONTACTS_CONFIG) must exist; the
// default location is optional.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(envPrefix + "_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "vecontacts"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) Validate() error {
	if c.Panel.SeedCount < 0 {
		return fmt.Errorf("seed count must be non-negative, got: %d", c.Panel.SeedCount)
	}

	if c.Animation.FPS <= 0 {
		return fmt.Errorf("animation fps must be positive, got: %d", c.Animation.FPS)
	}

	if c.Animation.Frequency <= 0 {
		return fmt.Errorf("animation frequency must be positive, got: %v", c.Animation.Frequency)
	}

	if c.Animation.Damping <= 0 {
		return fmt.Errorf("animation damping must be positive, got: %v", c.Animation.Damping)
	}

	if c.Audit.HistorySize <= 0 {
		return fmt.Errorf("audit history size must be positive, got: %d", c.Audit.HistorySize)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
		// Valid levels
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn or error)", c.Log.Level)
	}

	return nil
}

// AnimationSettings converts the animation section for the animation package
func (c *Config) AnimationSettings() animation.Config {
	return animation.Config{
		Enabled:   c.Animation.Enabled,
		FPS:       c.Animation.FPS,
		Frequency: c.Animation.Frequency,
		Damping:   c.Animation.Damping,
	}
}
