package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Auth      AuthConfig      `mapstructure:"auth"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Sanitizer SanitizerConfig `mapstructure:"sanitizer"`
	Provider  ProviderConfig  `mapstructure:"provider"`
	Breaker   BreakerConfig   `mapstructure:"breaker"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	BodyLimit    int    `mapstructure:"body_limit"`
}

type AuthConfig struct {
	APIToken   string `mapstructure:"api_token"`
	AdminToken string `mapstructure:"admin_token"`
}

type RateLimitConfig struct {
	MaxRequests int    `mapstructure:"max_requests"`
	Window      string `mapstructure:"window"`
	SweepEvery  string `mapstructure:"sweep_every"`
}

type SanitizerConfig struct {
	MaxLength int `mapstructure:"max_length"`
	MinLength int `mapstructure:"min_length"`
}

type ProviderConfig struct {
	Name         string   `mapstructure:"name"`
	Model        string   `mapstructure:"model"`
	APIKey       string   `mapstructure:"api_key"`
	MaxTokens    int      `mapstructure:"max_tokens"`
	Temperature  float64  `mapstructure:"temperature"`
	Instructions []string `mapstructure:"instructions"`
}

type BreakerConfig struct {
	Timeout     string `mapstructure:"timeout"`
	MaxFailures uint32 `mapstructure:"max_failures"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

var globalConfig Config

func Load(configPath string) error {
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		return fmt.Errorf("⚠️ Warning: Could not load main config file: %v", err)
	}

	setDefaultValues()

	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	viper.SetConfigName(fileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// env-only deployments carry no config file; fall through to
		// environment variables and defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
		}
	}

	if err := viper.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

func setDefaultValues() {
	if globalConfig.Server.Port == 0 {
		globalConfig.Server.Port = 8080
	}
	if globalConfig.Server.ReadTimeout == 0 {
		globalConfig.Server.ReadTimeout = 30
	}
	if globalConfig.Server.WriteTimeout == 0 {
		globalConfig.Server.WriteTimeout = 60
	}
	if globalConfig.Server.BodyLimit == 0 {
		globalConfig.Server.BodyLimit = 1024 * 1024
	}
	if globalConfig.RateLimit.MaxRequests == 0 {
		globalConfig.RateLimit.MaxRequests = 20
	}
	if globalConfig.RateLimit.Window == "" {
		globalConfig.RateLimit.Window = "1m"
	}
	if globalConfig.RateLimit.SweepEvery == "" {
		globalConfig.RateLimit.SweepEvery = "10m"
	}
	if globalConfig.Sanitizer.MaxLength == 0 {
		globalConfig.Sanitizer.MaxLength = 10000
	}
	if globalConfig.Sanitizer.MinLength == 0 {
		globalConfig.Sanitizer.MinLength = 10
	}
	if globalConfig.Provider.Name == "" {
		globalConfig.Provider.Name = "openai"
	}
	if globalConfig.Provider.MaxTokens == 0 {
		globalConfig.Provider.MaxTokens = 1024
	}
	if globalConfig.Breaker.Timeout == "" {
		globalConfig.Breaker.Timeout = "30s"
	}
	if globalConfig.Breaker.MaxFailures == 0 {
		globalConfig.Breaker.MaxFailures = 5
	}
	if globalConfig.Metrics.Port == 0 {
		globalConfig.Metrics.Port = 9090
	}
	if len(globalConfig.CORS.AllowOrigins) == 0 {
		globalConfig.CORS.AllowOrigins = []string{"*"}
	}
}

func GetConfig() *Config {
	return &globalConfig
}

func (c *RateLimitConfig) WindowDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Window)
	if err != nil {
		return 0, fmt.Errorf("invalid rate limit window %q: %w", c.Window, err)
	}
	return d, nil
}

func (c *BreakerConfig) TimeoutDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid breaker timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}
