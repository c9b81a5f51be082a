package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Cache backends accepted in CACHE_BACKEND
const (
	CacheBackendMemory   = "memory"
	CacheBackendBigCache = "bigcache"
	CacheBackendRedis    = "redis"
	CacheBackendNone     = "none"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment `yaml:"-"`

	// Server configuration
	ServerHost      string        `yaml:"server_host"`
	ServerPort      string        `yaml:"server_port" validate:"required,numeric"`
	StaticDir       string        `yaml:"static_dir"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`

	// Upstream providers
	SpoonacularAPIKey  string        `yaml:"-"`
	SpoonacularBaseURL string        `yaml:"spoonacular_base_url" validate:"required,url"`
	JokeAPIBaseURL     string        `yaml:"joke_api_base_url" validate:"required,url"`
	UpstreamTimeout    time.Duration `yaml:"upstream_timeout" validate:"gte=0"`
	RecipePageSize     int           `yaml:"recipe_page_size" validate:"gte=1,lte=100"`

	// Cache configuration
	CacheBackend    string        `yaml:"cache_backend" validate:"oneof=memory bigcache redis none"`
	CacheDuration   time.Duration `yaml:"cache_duration" validate:"gt=0"`
	CacheMaxEntries int           `yaml:"cache_max_entries" validate:"gte=1"`
	BigCacheSizeMB  int           `yaml:"bigcache_size_mb" validate:"gte=0"`
	RedisURL        string        `yaml:"redis_url" validate:"required_if=CacheBackend redis"`
	RedisKeyPrefix  string        `yaml:"redis_key_prefix"`

	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		ServerPort:         "3000",
		StaticDir:          "public",
		ShutdownTimeout:    10 * time.Second,
		SpoonacularBaseURL: "https://api.spoonacular.com",
		JokeAPIBaseURL:     "https://v2.jokeapi.dev/joke",
		UpstreamTimeout:    10 * time.Second,
		RecipePageSize:     12,
		CacheBackend:       CacheBackendMemory,
		CacheDuration:      30 * time.Minute,
		CacheMaxEntries:    1000,
		BigCacheSizeMB:     64,
		RedisKeyPrefix:     "recipe-finder:",
		LogLevel:           "info",
	}
}

// LoadConfig builds the configuration from defaults, the optional YAML file named by
// RECIPE_FINDER_CONFIG, environment variables and secrets, then validates it.
func LoadConfig() (*Config, error) {
	cfg := Default()
	cfg.Environment = GetEnvironment()

	if path := os.Getenv("RECIPE_FINDER_CONFIG"); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := loadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}

	apiKey, err := loadAPIKey()
	if err != nil {
		return nil, err
	}
	cfg.SpoonacularAPIKey = apiKey

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadFile overlays the YAML file at path onto cfg
func loadFile(cfg *Config, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode YAML config: %w", err)
	}
	return nil
}

// loadEnv applies environment variable overrides
func loadEnv(cfg *Config) error {
	setString(&cfg.ServerHost, "SERVER_HOST")
	setString(&cfg.ServerPort, "PORT")
	setString(&cfg.StaticDir, "STATIC_DIR")
	setString(&cfg.SpoonacularBaseURL, "SPOONACULAR_BASE_URL")
	setString(&cfg.JokeAPIBaseURL, "JOKE_API_BASE_URL")
	setString(&cfg.CacheBackend, "CACHE_BACKEND")
	setString(&cfg.RedisURL, "REDIS_URL")
	setString(&cfg.RedisKeyPrefix, "REDIS_KEY_PREFIX")
	setString(&cfg.LogLevel, "LOG_LEVEL")

	if err := setInt(&cfg.RecipePageSize, "RECIPE_PAGE_SIZE"); err != nil {
		return err
	}
	if err := setInt(&cfg.CacheMaxEntries, "CACHE_MAX_ENTRIES"); err != nil {
		return err
	}
	if err := setInt(&cfg.BigCacheSizeMB, "BIGCACHE_SIZE_MB"); err != nil {
		return err
	}
	if err := setDuration(&cfg.UpstreamTimeout, "UPSTREAM_TIMEOUT"); err != nil {
		return err
	}
	if err := setDuration(&cfg.ShutdownTimeout, "SHUTDOWN_TIMEOUT"); err != nil {
		return err
	}

	// CACHE_DURATION is expressed in milliseconds
	if v := os.Getenv("CACHE_DURATION"); v != "" {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid CACHE_DURATION %q: %w", v, err)
		}
		cfg.CacheDuration = time.Duration(ms) * time.Millisecond
	}

	return nil
}

// loadAPIKey reads the Spoonacular key from SPOONACULAR_API_KEY, the file named by
// SPOONACULAR_API_KEY_FILE, or the spoonacular_api_key Docker secret, in that order.
func loadAPIKey() (string, error) {
	if apiKey := os.Getenv("SPOONACULAR_API_KEY"); apiKey != "" {
		return apiKey, nil
	}

	if apiKeyFile := os.Getenv("SPOONACULAR_API_KEY_FILE"); apiKeyFile != "" {
		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return "", fmt.Errorf("failed to read API key file: %w", err)
		}
		apiKey := strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return "", fmt.Errorf("API key file is empty")
		}
		return apiKey, nil
	}

	return readSecret("spoonacular_api_key"), nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = d
	return nil
}
