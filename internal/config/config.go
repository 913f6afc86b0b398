// Package config provides environment-variable-first configuration loading
// with optional YAML file fallback for the admin console.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultMaxUploadSize is 10 MB in bytes, the per-file ceiling for
// multipart attachment buffering.
const defaultMaxUploadSize = 10485760

// Config holds the complete application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	AWS     AWSConfig     `yaml:"aws"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Listen        string `yaml:"listen"`
	Mode          string `yaml:"mode"`
	UIDir         string `yaml:"ui_dir"`
	MaxUploadSize int64  `yaml:"max_upload_size"`
}

// AWSConfig holds the provider endpoint, region and credential pair.
// The defaults target a LocalStack instance.
type AWSConfig struct {
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load loads configuration from environment variables with sensible defaults.
// Environment variables always take precedence.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnvVars()
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file as the base layer,
// then overrides with environment variables. Returns an error if the
// specified file path does not exist.
func LoadFromFile(path string) (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Environment variables always override YAML values
	cfg.applyEnvVars()

	return cfg, nil
}

// IsDevelopment returns true when the runtime mode enables the
// development-only endpoints.
func (c *Config) IsDevelopment() bool {
	return c.Server.Mode == "development"
}

// applyDefaults sets sensible default values for all configuration fields.
func (c *Config) applyDefaults() {
	c.Server.Listen = ":8080"
	c.Server.Mode = "development"
	c.Server.UIDir = "ui"
	c.Server.MaxUploadSize = defaultMaxUploadSize
	c.AWS.Endpoint = "http://localstack:4566"
	c.AWS.Region = "us-east-1"
	c.AWS.AccessKeyID = "test"
	c.AWS.SecretAccessKey = "test"
	c.Logging.Level = "info"
}

// applyEnvVars overrides configuration with environment variable values.
// Only non-empty environment variables override existing values.
func (c *Config) applyEnvVars() {
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.Server.Listen = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Listen = fmt.Sprintf(":%d", port)
		}
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		c.Server.Mode = strings.ToLower(v)
	}
	if v := os.Getenv("UI_DIST_PATH"); v != "" {
		c.Server.UIDir = v
	}
	if v := os.Getenv("MAX_UPLOAD_SIZE"); v != "" {
		if size, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Server.MaxUploadSize = size
		}
	}

	if v := os.Getenv("LOCALSTACK_ENDPOINT"); v != "" {
		c.AWS.Endpoint = v
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		c.AWS.Region = v
	}
	if v := os.Getenv("AWS_ACCESS_KEY_ID"); v != "" {
		c.AWS.AccessKeyID = v
	}
	if v := os.Getenv("AWS_SECRET_ACCESS_KEY"); v != "" {
		c.AWS.SecretAccessKey = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
}
