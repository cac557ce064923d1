package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	DatabaseURL    string
	Neo4jURI       string
	Neo4jUser      string
	Neo4jPassword  string
	WorkerCount    int
	FieldSeparator string
	QuotedFields   bool
	EscapeMode     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	return &Config{
		DatabaseURL:    getEnv("DATABASE_URL", "postgres://localhost:5432/locextract?sslmode=disable"),
		Neo4jURI:       getEnv("NEO4J_URI", "bolt://localhost:7687"),
		Neo4jUser:      getEnv("NEO4J_USER", "neo4j"),
		Neo4jPassword:  getEnv("NEO4J_PASSWORD", "password"),
		WorkerCount:    getEnvInt("WORKER_COUNT", 8),
		FieldSeparator: getEnv("FIELD_SEPARATOR", ","),
		QuotedFields:   getEnvBool("QUOTED_FIELDS", true),
		EscapeMode:     getEnv("ESCAPE_MODE", "braces"),
	}
}

// Separator returns the configured field separator as a single byte,
// falling back to a comma for multi-character values.
func (c *Config) Separator() byte {
	if len(c.FieldSeparator) == 1 {
		return c.FieldSeparator[0]
	}
	if c.FieldSeparator == `\t` {
		return '\t'
	}
	return ','
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
