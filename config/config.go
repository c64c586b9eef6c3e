package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort             = "3000"
	DefaultMongoURL         = "mongodb://localhost:27017/mydatabase"
	DefaultDBName           = "mydatabase"
	DefaultJWTExpiryMinutes = 10080 // 7 days
)

type Config struct {
	Env              string
	Port             string
	MongoURL         string
	DBName           string
	JWTSecret        string
	JWTExpiryMinutes int
}

// Load reads configuration from the environment, with a per-environment
// config/.env file as fallback. Real environment variables always win since
// godotenv never overwrites variables that are already set.
func Load() *Config {
	env := getEnv("ENV", "development")
	loadEnvFile(env)

	return &Config{
		Env:              env,
		Port:             getEnv("PORT", DefaultPort),
		MongoURL:         getEnv("MONGO_CONNECTION_STRING", DefaultMongoURL),
		DBName:           getEnv("DB_NAME", DefaultDBName),
		JWTSecret:        mustGetEnv("JWT_SECRET"),
		JWTExpiryMinutes: getEnvAsInt("JWT_EXPIRY_MINUTES", DefaultJWTExpiryMinutes),
	}
}

func loadEnvFile(env string) {
	suffix := ".dev"
	if env == "production" {
		suffix = ".prod"
	}

	if err := godotenv.Load("config/.env" + suffix); err != nil {
		log.Printf("No config/.env%s file loaded, relying on environment", suffix)
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
