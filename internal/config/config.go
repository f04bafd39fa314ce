package config

import (
	"fmt"
	"log"
	"os"
)

// App holds the runtime configuration loaded from environment
// variables. The struct is built once at startup and passed to
// components read-only; nothing reads the environment after Load.
type App struct {
	Env             string
	HTTPPort        string
	MongoURI        string
	MongoDB         string
	RedisAddr       string
	JWTIssuer       string
	JWTSigningKey   string
	QueueBackend    string
	RateLimitPerMin int
	BcryptCost      int
}

// Load returns application config populated from environment variables
// with sensible defaults.
func Load() App {
	return App{
		Env:             getEnv("APP_ENV", "dev"),
		HTTPPort:        getEnv("HTTP_PORT", "3000"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:         getEnv("MONGO_DB", "edutrack360"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		JWTIssuer:       getEnv("JWT_ISSUER", "edutrack"),
		JWTSigningKey:   getEnv("JWT_SIGNING_KEY", "dev-signing-secret-change"),
		QueueBackend:    getEnv("QUEUE_BACKEND", "redis"),
		RateLimitPerMin: intEnv("RATE_LIMIT_PER_MIN", 120),
		BcryptCost:      intEnv("BCRYPT_COST", 10),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var parsed int
		if _, err := fmt.Sscanf(val, "%d", &parsed); err == nil {
			return parsed
		}
		log.Printf("invalid int for %s, using fallback %d", key, fallback)
	}
	return fallback
}
