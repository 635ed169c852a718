package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	originalEnv := map[string]string{
		"REVOA_APP_NAME":                os.Getenv("REVOA_APP_NAME"),
		"REVOA_APP_ENV":                 os.Getenv("REVOA_APP_ENV"),
		"REVOA_APP_PORT":                os.Getenv("REVOA_APP_PORT"),
		"REVOA_DATABASE_HOST":           os.Getenv("REVOA_DATABASE_HOST"),
		"REVOA_DATABASE_PORT":           os.Getenv("REVOA_DATABASE_PORT"),
		"REVOA_DATABASE_USER":           os.Getenv("REVOA_DATABASE_USER"),
		"REVOA_DATABASE_PASSWORD":       os.Getenv("REVOA_DATABASE_PASSWORD"),
		"REVOA_DATABASE_DBNAME":         os.Getenv("REVOA_DATABASE_DBNAME"),
		"REVOA_DATABASE_SSLMODE":        os.Getenv("REVOA_DATABASE_SSLMODE"),
		"REVOA_DATABASE_MAX_OPEN_CONNS": os.Getenv("REVOA_DATABASE_MAX_OPEN_CONNS"),
		"REVOA_DATABASE_MAX_IDLE_CONNS": os.Getenv("REVOA_DATABASE_MAX_IDLE_CONNS"),
		"REVOA_SHOPIFY_SHOP_DOMAIN":     os.Getenv("REVOA_SHOPIFY_SHOP_DOMAIN"),
		"REVOA_SHOPIFY_ACCESS_TOKEN":    os.Getenv("REVOA_SHOPIFY_ACCESS_TOKEN"),
		"REVOA_SHOPIFY_API_VERSION":     os.Getenv("REVOA_SHOPIFY_API_VERSION"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "revoa-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "revoa", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, "2024-10", cfg.Shopify.APIVersion)
		assert.Equal(t, 15, cfg.Shopify.TimeoutSeconds)
	})

	t.Run("loads values from environment variables with REVOA prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("REVOA_APP_NAME", "test-app")
		os.Setenv("REVOA_APP_ENV", "testing")
		os.Setenv("REVOA_APP_PORT", "9000")
		os.Setenv("REVOA_DATABASE_HOST", "testdb.local")
		os.Setenv("REVOA_DATABASE_PORT", "5433")
		os.Setenv("REVOA_DATABASE_USER", "testuser")
		os.Setenv("REVOA_DATABASE_PASSWORD", "testpass")
		os.Setenv("REVOA_DATABASE_DBNAME", "testdb")
		os.Setenv("REVOA_DATABASE_SSLMODE", "require")
		os.Setenv("REVOA_SHOPIFY_SHOP_DOMAIN", "acme.myshopify.com")
		os.Setenv("REVOA_SHOPIFY_ACCESS_TOKEN", "shpat_test")
		os.Setenv("REVOA_SHOPIFY_API_VERSION", "2025-01")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "acme.myshopify.com", cfg.Shopify.ShopDomain)
		assert.Equal(t, "shpat_test", cfg.Shopify.AccessToken)
		assert.Equal(t, "2025-01", cfg.Shopify.APIVersion)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("REVOA_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("REVOA_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("zero MaxOpenConns uses default", func(t *testing.T) {
		clearEnv()
		os.Setenv("REVOA_DATABASE_MAX_OPEN_CONNS", "0")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	})

	t.Run("validates MaxIdleConns cannot be negative", func(t *testing.T) {
		clearEnv()
		os.Setenv("REVOA_DATABASE_MAX_IDLE_CONNS", "-1")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns cannot be negative")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	originalEnv := map[string]string{
		"REVOA_APP_ENV":              os.Getenv("REVOA_APP_ENV"),
		"REVOA_DATABASE_PASSWORD":    os.Getenv("REVOA_DATABASE_PASSWORD"),
		"REVOA_DATABASE_SSLMODE":     os.Getenv("REVOA_DATABASE_SSLMODE"),
		"REVOA_SHOPIFY_SHOP_DOMAIN":  os.Getenv("REVOA_SHOPIFY_SHOP_DOMAIN"),
		"REVOA_SHOPIFY_ACCESS_TOKEN": os.Getenv("REVOA_SHOPIFY_ACCESS_TOKEN"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("requires database.password in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("REVOA_APP_ENV", "production")
		os.Setenv("REVOA_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required in production")
	})

	t.Run("requires SSL enabled in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("REVOA_APP_ENV", "production")
		os.Setenv("REVOA_DATABASE_PASSWORD", "secure-password")
		os.Setenv("REVOA_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.sslmode cannot be 'disable' in production")
	})

	t.Run("requires access token when shop domain set in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("REVOA_APP_ENV", "production")
		os.Setenv("REVOA_DATABASE_PASSWORD", "secure-password")
		os.Setenv("REVOA_DATABASE_SSLMODE", "require")
		os.Setenv("REVOA_SHOPIFY_SHOP_DOMAIN", "acme.myshopify.com")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "shopify.access_token is required")
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		clearEnv()
		os.Setenv("REVOA_APP_ENV", "production")
		os.Setenv("REVOA_DATABASE_PASSWORD", "secure-password")
		os.Setenv("REVOA_DATABASE_SSLMODE", "require")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost")
		assert.Contains(t, dsn, "5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "pass@word#123",
			DBName:   "db",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "pass%40word%23123")
	})
}
