package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For the token TTL duration

	"github.com/joho/godotenv"   // For loading .env files
	"golang.org/x/crypto/bcrypt" // For the default hashing cost
)

// Config holds the application configuration
type Config struct {
	AppPort    string        // Application port
	DBUser     string        // Database user
	DBPassword string        // Database password
	DBHost     string        // Database host
	DBPort     string        // Database port
	DBName     string        // Database name
	TokenTTL   time.Duration // Token time-to-live, anchored to creation time
	BcryptCost int           // Cost factor for password hashing
	RedisAddr  string        // Redis server address
	RedisPass  string        // Redis password
	RedisDB    int           // Redis database number
	IsProd     bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present

	ttlSec, err := strconv.Atoi(os.Getenv("TOKEN_TTL_SEC"))
	if err != nil || ttlSec <= 0 {
		ttlSec = 86400 // One day unless configured otherwise
	}
	cost, err := strconv.Atoi(os.Getenv("BCRYPT_COST"))
	if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	return &Config{
		AppPort:    os.Getenv("APP_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBName:     os.Getenv("DB_NAME"),
		TokenTTL:   time.Duration(ttlSec) * time.Second,
		BcryptCost: cost,
		RedisAddr:  os.Getenv("REDIS_ADDR"),
		RedisPass:  os.Getenv("REDIS_PASS"),
		RedisDB:    redisDB,
		IsProd:     os.Getenv("IS_PROD") == "true",
	}
}

// DSN builds the MySQL data source name from the database settings
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}
