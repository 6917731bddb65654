package config

import (
	"fmt"
	"os"
)

// Config captures everything the server reads from the environment.
type Config struct {
	Addr      string
	PrefixAPI string
	JWTSecret string
	Stage     string
	SeedDemo  bool

	MySQL MySQLConfig
}

// MySQLConfig captures the connection parameters for a MySQL instance.
// An empty Host means run on the in-memory store instead.
type MySQLConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Database string
	Params   string
}

// FromEnv populates a Config using sensible defaults that can be overridden
// via environment variables.
func FromEnv() Config {
	return Config{
		Addr:      getEnv("ADDR", ":9091"),
		PrefixAPI: getEnv("PREFIX_API", "/v1/"),
		JWTSecret: getEnv("JWT_SECRET", "trasua-dev-secret"),
		Stage:     getEnv("STAGE", "dev"),
		SeedDemo:  getEnv("SEED_DEMO", "1") == "1",
		MySQL: MySQLConfig{
			User:     getEnv("MYSQL_USER", "trasua"),
			Password: getEnv("MYSQL_PASSWORD", "trasua"),
			Host:     os.Getenv("MYSQL_HOST"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			Database: getEnv("MYSQL_DATABASE", "trasua"),
			Params:   getEnv("MYSQL_PARAMS", "charset=utf8mb4&parseTime=True&loc=Local"),
		},
	}
}

// DSN renders the MySQL connection string.
func (c MySQLConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.Params)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
