package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("APP_PORT", "9090")
		t.Setenv("APP_ENV", "test")
		t.Setenv("JWT_SECRET", "jwt_secret")
		t.Setenv("ADMIN_EMAIL", "owner@example.com")
		t.Setenv("ADMIN_PASSWORD", "hunter2")
		t.Setenv("GOOGLE_SHEET_ID", "sheet-123")
		t.Setenv("GOOGLE_CREDENTIALS_FILE", "/etc/creds.json")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "9090", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "jwt_secret", cfg.JWTSecret)
		assert.Equal(t, "owner@example.com", cfg.AdminEmail)
		assert.Equal(t, "hunter2", cfg.AdminPassword)
		assert.True(t, cfg.HasDatabase())
		assert.True(t, cfg.HasSheets())
		assert.Equal(t, "Asia/Tokyo", cfg.SheetsTimezone)
	})

	t.Run("Defaults when optional vars are unset", func(t *testing.T) {
		t.Setenv("DB_HOST", "")
		t.Setenv("APP_PORT", "")
		t.Setenv("GOOGLE_SHEET_ID", "")
		t.Setenv("GOOGLE_CREDENTIALS_FILE", "")
		t.Setenv("SHEETS_TIMEZONE", "")

		cfg := LoadConfig()

		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "Asia/Tokyo", cfg.SheetsTimezone)
		assert.False(t, cfg.HasDatabase())
		assert.False(t, cfg.HasSheets())
	})
}
