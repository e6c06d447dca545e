package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/itohio/dbgconf/pkg/buildcfg"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Log formats understood by the debug logger.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the application configuration.
type Config struct {
	Serial SerialConfig `yaml:"serial" toml:"serial"`
	Debug  DebugConfig  `yaml:"debug" toml:"debug"`
	Log    LogConfig    `yaml:"log" toml:"log"`
}

// SerialConfig contains serial port configuration.
type SerialConfig struct {
	Port     string `yaml:"port" toml:"port"`
	BaudRate int    `yaml:"baud_rate" toml:"baud_rate"`
}

// DebugConfig carries optional overrides for the debug tiers. A nil field
// leaves the tier to the build.
type DebugConfig struct {
	Debug         *bool  `yaml:"debug,omitempty" toml:"debug,omitempty"`
	ModerateDebug *bool  `yaml:"moderate_debug,omitempty" toml:"moderate_debug,omitempty"`
	WeakDebug     *bool  `yaml:"weak_debug,omitempty" toml:"weak_debug,omitempty"`
	Defines       string `yaml:"defines,omitempty" toml:"defines,omitempty"` // Compiler-style list, e.g. "-DDEBUG=0"
}

// LogConfig contains debug logger output settings.
type LogConfig struct {
	Format     string `yaml:"format" toml:"format"`
	Timestamps bool   `yaml:"timestamps" toml:"timestamps"`
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	return &Config{
		Serial: SerialConfig{
			Port:     "COM3", // Default for Windows, should be "/dev/ttyACM0" on Linux/Mac
			BaudRate: int(buildcfg.SerialSpeed),
		},
		Log: LogConfig{
			Format:     FormatText,
			Timestamps: true,
		},
	}
}

// Load loads configuration from a YAML or TOML file, chosen by extension.
// If the file doesn't exist or fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return cfg, nil
		}
		return nil, errors.Wrap(err, "failed to read config file")
	}

	if isTOML(filename) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	cfg.ensureDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves the configuration to a YAML or TOML file, chosen by extension.
func (c *Config) Save(filename string) error {
	var (
		data []byte
		err  error
	)
	if isTOML(filename) {
		data, err = toml.Marshal(*c)
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// Validate reports settings the rest of the program cannot use.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return errors.Errorf("unknown log format %q", c.Log.Format)
	}

	if c.Serial.BaudRate < 0 || int64(c.Serial.BaudRate) > math.MaxUint32 {
		return errors.Errorf("baud rate %d out of range", c.Serial.BaudRate)
	}

	return nil
}

// Overrides returns the tier overrides this section describes. The defines
// string is applied first; explicit fields win over it.
func (d *DebugConfig) Overrides() (buildcfg.Overrides, error) {
	o, err := buildcfg.ParseDefines(d.Defines)
	if err != nil {
		return buildcfg.Overrides{}, errors.Wrap(err, "debug.defines")
	}

	return o.Merge(buildcfg.Overrides{
		Debug:         d.Debug,
		ModerateDebug: d.ModerateDebug,
		WeakDebug:     d.WeakDebug,
	}), nil
}

// ensureDefaults ensures that all required fields have default values if missing.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Serial.Port == "" {
		c.Serial.Port = def.Serial.Port
	}
	if c.Serial.BaudRate == 0 {
		c.Serial.BaudRate = def.Serial.BaudRate
	}

	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
	c.Log.Format = strings.ToLower(c.Log.Format)
}

func isTOML(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".toml")
}
