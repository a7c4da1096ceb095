package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL   = "http://127.0.0.1:5000"
	DefaultTermID    = 8
	DefaultTimeout   = 10 * time.Second
	fileName         = "config.yaml"
	dotEnvName       = ".env"
	envPrefix        = "PLANWISE"
	defaultLogLevel  = "info"
	databaseFileName = "planwise.db"
	logFileName      = "planwise.log"
)

type Config struct {
	BaseURL        string
	DataDir        string
	DBPath         string
	LogPath        string
	LogLevel       string
	Env            string
	RequestTimeout time.Duration
	DefaultTermID  int64
	PluginsDir     string
	// CheckSections runs the meeting-row consistency pass on schedule loads.
	CheckSections  bool
}

// fileConfig mirrors config.yaml. Zero values keep the defaults.
type fileConfig struct {
	BaseURL        string `yaml:"base_url"`
	LogLevel       string `yaml:"log_level"`
	RequestTimeout string `yaml:"request_timeout"`
	DefaultTermID  int64  `yaml:"default_term_id"`
	PluginsDir     string `yaml:"plugins_dir"`
	CheckSections  bool   `yaml:"check_sections"`
}

// envConfig is read with envconfig under the PLANWISE_ prefix.
type envConfig struct {
	BaseURL        string        `envconfig:"BASE_URL"`
	LogLevel       string        `envconfig:"LOG_LEVEL"`
	Env            string        `envconfig:"ENV" default:"production"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT"`
	DefaultTermID  int64         `envconfig:"DEFAULT_TERM_ID"`
	PluginsDir     string        `envconfig:"PLUGINS_DIR"`
	CheckSections  bool          `envconfig:"CHECK_SECTIONS"`
}

// Overrides are command-line values applied last.
type Overrides struct {
	BaseURL  string
	LogLevel string
}

func New(dataDir string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	return Config{
		BaseURL:        DefaultBaseURL,
		DataDir:        dataDir,
		DBPath:         filepath.Join(dataDir, databaseFileName),
		LogPath:        filepath.Join(dataDir, logFileName),
		LogLevel:       defaultLogLevel,
		Env:            "production",
		RequestTimeout: DefaultTimeout,
		DefaultTermID:  DefaultTermID,
		PluginsDir:     dataDir,
	}, nil
}

// Load layers defaults, config.yaml, .env, PLANWISE_* variables, then overrides.
func Load(dataDir string, overrides Overrides) (Config, error) {
	cfg, err := New(dataDir)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyFile(filepath.Join(dataDir, fileName)); err != nil {
		return Config{}, err
	}

	dotEnv := filepath.Join(dataDir, dotEnvName)
	if _, err := os.Stat(dotEnv); err == nil {
		if err := godotenv.Load(dotEnv); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", dotEnv, err)
		}
	}

	env := envConfig{}
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	cfg.applyEnv(env)

	if v := strings.TrimSpace(overrides.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(overrides.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	fc := fileConfig{}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("decode config file: %w", err)
	}
	if fc.BaseURL != "" {
		c.BaseURL = fc.BaseURL
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.RequestTimeout != "" {
		d, err := time.ParseDuration(fc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("decode request_timeout: %w", err)
		}
		c.RequestTimeout = d
	}
	if fc.DefaultTermID > 0 {
		c.DefaultTermID = fc.DefaultTermID
	}
	if fc.PluginsDir != "" {
		c.PluginsDir = resolve(c.DataDir, fc.PluginsDir)
	}
	if fc.CheckSections {
		c.CheckSections = true
	}
	return nil
}

func (c *Config) applyEnv(env envConfig) {
	if env.BaseURL != "" {
		c.BaseURL = env.BaseURL
	}
	if env.LogLevel != "" {
		c.LogLevel = env.LogLevel
	}
	if env.Env != "" {
		c.Env = env.Env
	}
	if env.RequestTimeout > 0 {
		c.RequestTimeout = env.RequestTimeout
	}
	if env.DefaultTermID > 0 {
		c.DefaultTermID = env.DefaultTermID
	}
	if env.PluginsDir != "" {
		c.PluginsDir = resolve(c.DataDir, env.PluginsDir)
	}
	if env.CheckSections {
		c.CheckSections = true
	}
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
