package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"livelink/internal/models"
	"livelink/internal/validators"
	"livelink/pkg/logger"
)

type Config struct {
	App       *AppConfig            `yaml:"app"`
	Console   *ConsoleConfig        `yaml:"console"`
	Audit     *AuditConfig          `yaml:"audit"`
	Database  *DatabaseConfig       `yaml:"database"`
	Redis     *RedisConfig          `yaml:"redis"`
	WebSocket *WebSocketConfig      `yaml:"websocket"`
	Security  *SecurityConfig       `yaml:"security"`
	Logger    *logger.Config        `yaml:"logger"`
	Settings  models.SystemSettings `yaml:"settings"`
}

type AppConfig struct {
	Name            string        `yaml:"name" validate:"required"`
	Version         string        `yaml:"version"`
	Environment     string        `yaml:"environment" validate:"oneof=development test production"`
	Port            int           `yaml:"port" validate:"min=1,max=65535"`
	Host            string        `yaml:"host"`
	Debug           bool          `yaml:"debug"`
	Timezone        string        `yaml:"timezone"`
	Currency        string        `yaml:"currency" validate:"len=3"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type SecurityConfig struct {
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	TrustedProxies     []string `yaml:"trusted_proxies"`
	OperatorHeader     string   `yaml:"operator_header" validate:"required"`
}

// Load reads .env, then the environment, then the YAML file named by
// CONFIG_FILE. Values in the file override the environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	config := &Config{
		App:       loadAppConfig(),
		Console:   loadConsoleConfig(),
		Audit:     loadAuditConfig(),
		Database:  loadDatabaseConfig(),
		Redis:     loadRedisConfig(),
		WebSocket: loadWebSocketConfig(),
		Security:  loadSecurityConfig(),
		Logger:    loadLoggerConfig(),
		Settings:  defaultSettings(),
	}

	if path := getEnv("CONFIG_FILE", ""); path != "" {
		if err := config.overlayFile(path); err != nil {
			return nil, err
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) overlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if errs := validators.ValidateStruct(c); len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errs)
	}
	return nil
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

// ExpiryWindow is how far ahead a document expiry counts as expiring soon.
func (c *Config) ExpiryWindow() time.Duration {
	return time.Duration(c.Settings.Verification.DocumentExpiryWarningDays) * 24 * time.Hour
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func loadAppConfig() *AppConfig {
	return &AppConfig{
		Name:            getEnv("APP_NAME", "LIVELINK Admin"),
		Version:         getEnv("APP_VERSION", "1.0.0"),
		Environment:     getEnv("APP_ENV", "development"),
		Port:            getEnvAsInt("APP_PORT", 8080),
		Host:            getEnv("APP_HOST", "localhost"),
		Debug:           getEnvAsBool("APP_DEBUG", true),
		Timezone:        getEnv("APP_TIMEZONE", "UTC"),
		Currency:        getEnv("APP_CURRENCY", "USD"),
		ShutdownTimeout: getEnvAsDuration("APP_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func loadSecurityConfig() *SecurityConfig {
	return &SecurityConfig{
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		TrustedProxies:     getEnvAsSlice("TRUSTED_PROXIES", []string{}),
		OperatorHeader:     getEnv("OPERATOR_HEADER", "X-Operator-ID"),
	}
}

func loadLoggerConfig() *logger.Config {
	return &logger.Config{
		Level:      logger.LogLevel(getEnv("LOG_LEVEL", "info")),
		Format:     getEnv("LOG_FORMAT", "text"),
		Output:     getEnv("LOG_OUTPUT", "stdout"),
		TimeFormat: getEnv("LOG_TIME_FORMAT", ""),
		Caller:     getEnvAsBool("LOG_CALLER", false),
		Colors:     getEnvAsBool("LOG_COLORS", false),
		AppName:    getEnv("APP_NAME", "LIVELINK Admin"),
		Version:    getEnv("APP_VERSION", "1.0.0"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := cast.ToIntE(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := cast.ToBoolE(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := cast.ToDurationE(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := cast.ToFloat64E(value); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
