package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir     = ".sonarlab/runs"
	DefaultAddr        = ":8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultSweepSteps  = 50
	DefaultEnvironment = "standard"
)

type Config struct {
	DataDir     string                 `yaml:"data_dir" toml:"data_dir"`
	Environment string                 `yaml:"environment" toml:"environment"`
	Log         LogConfig              `yaml:"log" toml:"log"`
	Server      ServerConfig           `yaml:"server" toml:"server"`
	Sweep       SweepConfig            `yaml:"sweep" toml:"sweep"`
	Presets     map[string]Environment `yaml:"presets,omitempty" toml:"presets,omitempty"`
}

type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

type ServerConfig struct {
	Addr        string   `yaml:"addr" toml:"addr"`
	CORSOrigins []string `yaml:"cors_origins" toml:"cors_origins"`
}

type SweepConfig struct {
	Workers int `yaml:"workers" toml:"workers"`
	Steps   int `yaml:"steps" toml:"steps"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:     DefaultDataDir,
		Environment: DefaultEnvironment,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Server: ServerConfig{
			Addr:        DefaultAddr,
			CORSOrigins: []string{"*"},
		},
		Sweep: SweepConfig{
			Steps: DefaultSweepSteps,
		},
	}
}

// Load reads a YAML or TOML file, chosen by extension, over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config %s: unsupported format %q", path, filepath.Ext(path))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path when it is set and falls back to the defaults
// otherwise. Environment overrides are applied in both cases.
func LoadOrDefault(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from SONARLAB_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("SONARLAB_DATA"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("SONARLAB_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("SONARLAB_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("SONARLAB_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("SONARLAB_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return errors.New("invalid SONARLAB_WORKERS")
		}
		c.Sweep.Workers = n
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir is required")
	}
	if c.Sweep.Steps < 1 {
		return errors.New("sweep.steps must be at least 1")
	}
	if c.Sweep.Workers < 0 {
		return errors.New("sweep.workers must not be negative")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if _, ok := c.Preset(c.Environment); !ok {
		return fmt.Errorf("unknown environment %q", c.Environment)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return toml.NewEncoder(f).Encode(cfg)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
