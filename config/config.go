package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Configuration
	ServerPort string

	// Database Configuration
	DatabasePath string

	// Redis Configuration
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Feed Configuration
	CandidatePoolSize int // Recent posts considered for ranking
	MaxFeedReturn     int // Max posts returned per feed request
	FeedCacheTTL      int // seconds

	// Slug Configuration
	SlugMaxAttempts int // Disambiguation suffix cap before giving up
}

var AppConfig *Config

func LoadConfig() *Config {
	// .env is optional; real env vars win either way
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		ServerPort:        getEnv("PORT", "8080"),
		DatabasePath:      getEnv("DB_PATH", "blog.db"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		CandidatePoolSize: getEnvInt("CANDIDATE_POOL_SIZE", 200),
		MaxFeedReturn:     getEnvInt("MAX_FEED_RETURN", 20),
		FeedCacheTTL:      getEnvInt("FEED_CACHE_TTL", 60),
		SlugMaxAttempts:   getEnvInt("SLUG_MAX_ATTEMPTS", 1000),
	}

	return AppConfig
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
