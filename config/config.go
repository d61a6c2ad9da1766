package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

var (
	config     *Config
	configOnce sync.Once
)

// Storage backend names accepted in STORAGE_BACKEND.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config stores all configuration of the application
type Config struct {
	// Storage
	StorageBackend string // "memory", "sqlite" or "redis"
	SQLitePath     string
	BlobKeyPrefix  string // prepended to every blob key, e.g. "maharaja_menu"

	// Redis
	RedisHost string
	RedisPort string
	RedisDB   int

	// Session
	SessionSecret string

	// Credentials
	BcryptCost int
}

// LoadConfig loads config from environment variables. A .env file in the
// working directory is applied first when present.
func LoadConfig() *Config {
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	bcryptCost, _ := strconv.Atoi(getEnv("BCRYPT_COST", "10"))

	return &Config{
		StorageBackend: getEnv("STORAGE_BACKEND", BackendSQLite),
		SQLitePath:     getEnv("SQLITE_PATH", "maharaja.db"),
		BlobKeyPrefix:  getEnv("BLOB_KEY_PREFIX", "maharaja"),
		RedisHost:      getEnv("REDIS_HOST", "localhost"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisDB:        redisDB,
		SessionSecret:  getEnv("SESSION_SECRET", "maharaja-session-secret"),
		BcryptCost:     bcryptCost,
	}
}

// GetConfig returns the shared application config, loading it on first use
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetRedisAddr returns the formatted Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
