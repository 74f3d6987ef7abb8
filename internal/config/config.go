package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string

	JWTSecret     string
	AdminEmail    string
	AdminPassword string

	// Spreadsheet mirror. Empty SheetID or CredentialsFile disables
	// the mirror entirely.
	SheetID         string
	CredentialsFile string
	SheetsTimezone  string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		AppPort:    getEnv("APP_PORT", "8080"),
		AppEnv:     os.Getenv("APP_ENV"),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		SheetID:         os.Getenv("GOOGLE_SHEET_ID"),
		CredentialsFile: os.Getenv("GOOGLE_CREDENTIALS_FILE"),
		SheetsTimezone:  getEnv("SHEETS_TIMEZONE", "Asia/Tokyo"),
	}

	return cfg
}

// HasDatabase reports whether a Postgres connection is configured.
// Without one the service runs on in-memory storage only.
func (c *Config) HasDatabase() bool {
	return c.DBHost != ""
}

// HasSheets reports whether the spreadsheet mirror is configured.
func (c *Config) HasSheets() bool {
	return c.SheetID != "" && c.CredentialsFile != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
