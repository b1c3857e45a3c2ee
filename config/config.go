package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=acceso_plantas
//	POSTGRES_SSLMODE=disable
//	PILA_WARNING_DAYS=10
//	PILA_DEFAULT_DAYS=10
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Postgres PostgresConfig // PostgreSQL connection settings
	Pila     PilaConfig     // due-date computation knobs
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string
}

// PostgresConfig defines connection details for PostgreSQL.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string // computed DSN used by database/sql
}

// PilaConfig tunes the due-date calculator.
//
// Fields:
//   - WarningDays: how many days ahead of today a due date is flagged as
//     upcoming (inclusive).
//   - DefaultDays: business-day count applied when a NIT suffix is missing
//     from the bracket table.
type PilaConfig struct {
	WarningDays int
	DefaultDays int
}

// AppConfig is the globally accessible configuration instance.
// It is populated once via LoadConfig() and read-only afterwards.
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from a .env file (if present).
//  3. Environment variables.
//
// Fatal exit: if required variables end up missing, validateConfig()
// terminates the app with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "acceso_plantas")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("PILA_WARNING_DAYS", 10)
	viper.SetDefault("PILA_DEFAULT_DAYS", 10)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Pila: PilaConfig{
			WarningDays: viper.GetInt("PILA_WARNING_DAYS"),
			DefaultDays: viper.GetInt("PILA_DEFAULT_DAYS"),
		},
	}

	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	validateConfig()
}

// validateConfig ensures required variables are present and terminates the
// application if they are missing. This avoids unexpected runtime failures
// due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if AppConfig.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if AppConfig.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if AppConfig.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if AppConfig.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if AppConfig.Pila.WarningDays <= 0 {
		missing = append(missing, "PILA_WARNING_DAYS")
	}
	if AppConfig.Pila.DefaultDays <= 0 {
		missing = append(missing, "PILA_DEFAULT_DAYS")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
