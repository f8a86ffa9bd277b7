package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Environment string          `yaml:"environment"`
	Server      ServerConfig    `yaml:"server"`
	Database    DatabaseConfig  `yaml:"database"`
	CORS        CORSConfig      `yaml:"cors"`
	Log         LogConfig       `yaml:"log"`
	Scheduler   SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string `yaml:"port"`
	Host string `yaml:"host"`
	Addr string `yaml:"-"` // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
}

// SchedulerConfig holds the cron expression for the analytics snapshot refresh.
// An empty expression disables the scheduler.
type SchedulerConfig struct {
	SnapshotCron string `yaml:"snapshot_cron"`
}

// Load reads configuration in three layers: built-in defaults, an optional YAML
// file named by CONFIG_FILE, then environment variables (including a .env file).
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, config); err != nil {
			return nil, err
		}
	}

	applyEnv(config)

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

func defaults() *Config {
	return &Config{
		Environment: "production",
		Server: ServerConfig{
			Port: "5001",
			Host: "localhost",
		},
		Database: DatabaseConfig{
			Path: "./data/booking_operations.db",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Log: LogConfig{
			Level: "info",
		},
		Scheduler: SchedulerConfig{
			SnapshotCron: "@every 5m",
		},
	}
}

// loadFile overlays the YAML file at path onto config. A missing file is not an error.
func loadFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func applyEnv(config *Config) {
	config.Environment = getEnv("ENVIRONMENT", config.Environment)
	config.Server.Port = getEnv("SERVER_PORT", config.Server.Port)
	config.Server.Host = getEnv("SERVER_HOST", config.Server.Host)
	config.Database.Path = getEnv("DB_PATH", config.Database.Path)
	config.Log.Level = getEnv("LOG_LEVEL", config.Log.Level)

	if v, ok := os.LookupEnv("SNAPSHOT_CRON"); ok {
		config.Scheduler.SnapshotCron = strings.TrimSpace(v)
	}

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		config.CORS.AllowedOrigins = origins
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
