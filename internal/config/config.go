package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	OpenAI   OpenAIConfig
	Apollo   ApolloConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type ApolloConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "entrelink"),
		},
		OpenAI: OpenAIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			Model:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Timeout: getEnvAsDuration("REQUEST_TIMEOUT", "8s"),
		},
		Apollo: ApolloConfig{
			APIKey:  getEnv("APOLLO_API_KEY", ""),
			BaseURL: getEnv("APOLLO_BASE_URL", "https://api.apollo.io"),
			Timeout: getEnvAsDuration("REQUEST_TIMEOUT", "8s"),
		},
	}

	// Missing keys surface as 500s at call time; warn early so a bad deploy
	// is visible in the startup log.
	if cfg.OpenAI.APIKey == "" {
		log.Println("⚠️  OPENAI_API_KEY is not set; attribute extraction will fail")
	}
	if cfg.Apollo.APIKey == "" {
		log.Println("⚠️  APOLLO_API_KEY is not set; investor search will fail")
	}

	return cfg
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
