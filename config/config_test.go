package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv clears every variable LoadConfig reads so the host environment cannot leak in
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CI", "ENV", "RECIPE_FINDER_CONFIG", "SERVER_HOST", "PORT", "STATIC_DIR",
		"SPOONACULAR_BASE_URL", "JOKE_API_BASE_URL", "CACHE_BACKEND", "REDIS_URL",
		"REDIS_KEY_PREFIX", "LOG_LEVEL", "RECIPE_PAGE_SIZE", "CACHE_MAX_ENTRIES",
		"BIGCACHE_SIZE_MB", "UPSTREAM_TIMEOUT", "SHUTDOWN_TIMEOUT", "CACHE_DURATION",
		"SPOONACULAR_API_KEY", "SPOONACULAR_API_KEY_FILE",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("ENV", "test")
	t.Setenv("SECRETS_DIR", t.TempDir())
}

func TestLoadConfigWithDefaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, "https://api.spoonacular.com", cfg.SpoonacularBaseURL)
	assert.Equal(t, "https://v2.jokeapi.dev/joke", cfg.JokeAPIBaseURL)
	assert.Equal(t, 12, cfg.RecipePageSize)
	assert.Equal(t, 30*time.Minute, cfg.CacheDuration)
	assert.Equal(t, CacheBackendMemory, cfg.CacheBackend)
	assert.Empty(t, cfg.SpoonacularAPIKey)
}

func TestLoadConfigFromEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("CACHE_DURATION", "60000")
	t.Setenv("CACHE_MAX_ENTRIES", "50")
	t.Setenv("RECIPE_PAGE_SIZE", "24")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("SPOONACULAR_API_KEY", "test-key")
	t.Setenv("SPOONACULAR_BASE_URL", "http://localhost:9000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, time.Minute, cfg.CacheDuration)
	assert.Equal(t, 50, cfg.CacheMaxEntries)
	assert.Equal(t, 24, cfg.RecipePageSize)
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "test-key", cfg.SpoonacularAPIKey)
	assert.Equal(t, "http://localhost:9000", cfg.SpoonacularBaseURL)
}

func TestLoadConfigFromFile(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server_port: "4000"
cache_backend: bigcache
cache_duration: 5m
bigcache_size_mb: 16
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("RECIPE_FINDER_CONFIG", path)
	// environment wins over the file
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.ServerPort)
	assert.Equal(t, CacheBackendBigCache, cfg.CacheBackend)
	assert.Equal(t, 5*time.Minute, cfg.CacheDuration)
	assert.Equal(t, 16, cfg.BigCacheSizeMB)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigMissingFile(t *testing.T) {
	isolateEnv(t)
	t.Setenv("RECIPE_FINDER_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open config file")
}

func TestLoadConfigAPIKeySources(t *testing.T) {
	t.Run("key file", func(t *testing.T) {
		isolateEnv(t)
		path := filepath.Join(t.TempDir(), "key")
		require.NoError(t, os.WriteFile(path, []byte("  file-key\n"), 0o600))
		t.Setenv("SPOONACULAR_API_KEY_FILE", path)

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "file-key", cfg.SpoonacularAPIKey)
	})

	t.Run("empty key file", func(t *testing.T) {
		isolateEnv(t)
		path := filepath.Join(t.TempDir(), "key")
		require.NoError(t, os.WriteFile(path, []byte("\n"), 0o600))
		t.Setenv("SPOONACULAR_API_KEY_FILE", path)

		_, err := LoadConfig()
		assert.EqualError(t, err, "API key file is empty")
	})

	t.Run("docker secret", func(t *testing.T) {
		isolateEnv(t)
		dir := t.TempDir()
		t.Setenv("SECRETS_DIR", dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "spoonacular_api_key"), []byte("secret-key"), 0o600))

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "secret-key", cfg.SpoonacularAPIKey)
	})
}

func TestLoadConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unparsable cache duration", "CACHE_DURATION", "soon"},
		{"unparsable page size", "RECIPE_PAGE_SIZE", "twelve"},
		{"unparsable timeout", "UPSTREAM_TIMEOUT", "10"},
		{"unknown backend", "CACHE_BACKEND", "memcached"},
		{"non numeric port", "PORT", "http"},
		{"zero cache duration", "CACHE_DURATION", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			t.Setenv(tt.key, tt.val)

			cfg, err := LoadConfig()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestValidateConfig(t *testing.T) {
	t.Run("redis backend requires url", func(t *testing.T) {
		cfg := Default()
		cfg.CacheBackend = CacheBackendRedis

		err := ValidateConfig(cfg)
		require.Error(t, err)

		var errs ValidationErrors
		require.ErrorAs(t, err, &errs)
		require.Len(t, errs, 1)
		assert.Equal(t, "RedisURL", errs[0].Field)
	})

	t.Run("production requires api key", func(t *testing.T) {
		cfg := Default()
		cfg.Environment = Production

		err := ValidateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SpoonacularAPIKey: is required in production environment")
	})

	t.Run("development tolerates missing api key", func(t *testing.T) {
		cfg := Default()
		cfg.Environment = Development

		assert.NoError(t, ValidateConfig(cfg))
	})
}

func TestEnvironment(t *testing.T) {
	tests := []struct {
		env         Environment
		development bool
		production  bool
	}{
		{Development, true, false},
		{Test, false, false},
		{CI, false, false},
		{Production, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.env), func(t *testing.T) {
			assert.Equal(t, tt.development, tt.env.IsDevelopment())
			assert.Equal(t, tt.production, tt.env.IsProduction())
		})
	}
}

func TestGetEnvironment(t *testing.T) {
	isolateEnv(t)
	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("ENV", "production")
	assert.True(t, GetEnvironment().IsProduction())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
}
