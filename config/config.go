package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"temperature-map/pkg/observe"
)

const DefaultConfigPath = "config/config.yaml"

// Config is assembled in three layers: defaults in code, the YAML file,
// then environment variables. envconfig default tags are not used because
// they would overwrite values read from YAML.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Server  ServerConfig  `yaml:"server"`
	Weather WeatherConfig `yaml:"weather"`
	Log     LogConfig     `yaml:"log"`
	Sentry  SentryConfig  `yaml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"APP_NAME"`
	Version string `yaml:"version" envconfig:"APP_VERSION"`
	Env     string `yaml:"env" envconfig:"APP_ENV"`
}

// ServerConfig timeouts are in seconds. WriteTimeout must cover one full
// uncached fetch cycle, which is sequential.
type ServerConfig struct {
	Port         string `yaml:"port" envconfig:"SERVER_PORT"`
	ReadTimeout  int    `yaml:"read_timeout" envconfig:"SERVER_READ_TIMEOUT"`
	WriteTimeout int    `yaml:"write_timeout" envconfig:"SERVER_WRITE_TIMEOUT"`
	IdleTimeout  int    `yaml:"idle_timeout" envconfig:"SERVER_IDLE_TIMEOUT"`
}

type WeatherConfig struct {
	Provider string `yaml:"provider" envconfig:"WEATHER_PROVIDER"`
	BaseURL  string `yaml:"base_url" envconfig:"WEATHER_BASE_URL"`
	APIKey   string `yaml:"api_key,omitempty" envconfig:"WEATHER_API_KEY"`
	// CacheTTL is the memoization window in seconds.
	CacheTTL int `yaml:"cache_ttl" envconfig:"WEATHER_CACHE_TTL"`
	// WarmupSchedule is a cron spec; empty disables background refresh.
	WarmupSchedule string `yaml:"warmup_schedule" envconfig:"WEATHER_WARMUP_SCHEDULE"`
}

type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LOG_LEVEL"`
	Format string `yaml:"format" envconfig:"LOG_FORMAT"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn" envconfig:"SENTRY_DSN"`
	Debug bool   `yaml:"debug" envconfig:"SENTRY_DEBUG"`
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:    "temperature-map",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 300,
			IdleTimeout:  120,
		},
		Weather: WeatherConfig{
			Provider: "open-meteo",
			BaseURL:  "https://api.open-meteo.com/v1/forecast",
			CacheTTL: 600,
		},
		Log: LogConfig{
			Level:  "info",
			Format: observe.FormatJSON,
		},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := Default()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

// loadFromFile overlays the YAML file on cnf. A missing file is not an error.
func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	var problems []string

	if strings.TrimSpace(config.App.Name) == "" {
		problems = append(problems, "app.name is required")
	}
	if strings.TrimSpace(config.Server.Port) == "" {
		problems = append(problems, "server.port is required")
	}
	if config.Server.ReadTimeout < 0 || config.Server.WriteTimeout < 0 || config.Server.IdleTimeout < 0 {
		problems = append(problems, "server timeouts must not be negative")
	}
	if config.Weather.CacheTTL <= 0 {
		problems = append(problems, "weather.cache_ttl must be positive")
	}
	if u, err := url.Parse(config.Weather.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, "weather.base_url must be an absolute URL")
	}
	if config.Weather.WarmupSchedule != "" {
		if _, err := cron.ParseStandard(config.Weather.WarmupSchedule); err != nil {
			problems = append(problems, fmt.Sprintf("weather.warmup_schedule is invalid: %v", err))
		}
	}
	if _, err := zapcore.ParseLevel(config.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("log.level is invalid: %v", err))
	}
	if config.Log.Format != observe.FormatJSON && config.Log.Format != observe.FormatConsole {
		problems = append(problems, "log.format must be json or console")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}

	return nil
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, err
	}

	return cnf, nil
}

func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(DefaultConfigPath))
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Weather.CacheTTL) * time.Second
}

func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.Server.ReadTimeout) * time.Second
}

func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.Server.WriteTimeout) * time.Second
}

func (c *Config) IdleTimeout() time.Duration {
	return time.Duration(c.Server.IdleTimeout) * time.Second
}
