package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/oxygene76/vector3/pkg/nbody"
)

// Config represents the CLI configuration
type Config struct {
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	NBody  NBodyConfig  `yaml:"nbody" mapstructure:"nbody"`
}

// OutputConfig controls how vectors and scalars are printed
type OutputConfig struct {
	Precision int    `yaml:"precision" mapstructure:"precision"` // -1 = shortest
	Format    string `yaml:"format" mapstructure:"format"`       // text | json
}

// LogConfig contains logger settings
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	JSON  bool   `yaml:"json" mapstructure:"json"`
}

// NBodyConfig contains defaults for the simulate command
type NBodyConfig struct {
	Gravity   float64 `yaml:"gravity" mapstructure:"gravity"`
	Softening float64 `yaml:"softening" mapstructure:"softening"`
	Timestep  float64 `yaml:"timestep" mapstructure:"timestep"`
	SnapEvery int     `yaml:"snap_every" mapstructure:"snap_every"`
}

const (
	FormatText = "text"
	FormatJSON = "json"

	envPrefix = "VECTOR3"
)

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Precision: -1,
			Format:    FormatText,
		},
		Log: LogConfig{
			Level: "info",
		},
		NBody: NBodyConfig{
			Gravity:   nbody.GaussianG,
			Softening: 0,
			Timestep:  1,
			SnapEvery: 10,
		},
	}
}

// HomeDir returns the directory holding config.yaml
func HomeDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".vector3")
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	return filepath.Join(HomeDir(), "config.yaml")
}

// Load reads the config file at path, or searches the default locations when
// path is empty. A missing file yields the defaults. VECTOR3_* environment
// variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(HomeDir())
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("output.precision", d.Output.Precision)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.json", d.Log.JSON)
	v.SetDefault("nbody.gravity", d.NBody.Gravity)
	v.SetDefault("nbody.softening", d.NBody.Softening)
	v.SetDefault("nbody.timestep", d.NBody.Timestep)
	v.SetDefault("nbody.snap_every", d.NBody.SnapEvery)
}

// Save writes cfg as YAML to path, creating its directory
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Output.Precision < -1 || c.Output.Precision > 17 {
		return fmt.Errorf("output precision must be between -1 and 17, got %d", c.Output.Precision)
	}

	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}

	if c.NBody.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive")
	}
	if c.NBody.Softening < 0 {
		return fmt.Errorf("softening cannot be negative")
	}
	if c.NBody.Timestep <= 0 {
		return fmt.Errorf("timestep must be positive")
	}
	if c.NBody.SnapEvery < 1 {
		return fmt.Errorf("snap_every must be at least 1, got %d", c.NBody.SnapEvery)
	}

	return nil
}

// LogLevel returns the parsed log level
func (c *Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
