package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource     string
	Port         string
	JWTSecret    string
	TokenTTL     time.Duration
	AnonUsername string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	// the original flip-flopped between minutes/seconds/hours here,
	// so the window is an explicit setting
	ttlMinutes := 60
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttlMinutes = n
		} else {
			log.Printf("ignoring invalid TOKEN_TTL_MINUTES %q, using %d", v, ttlMinutes)
		}
	}

	return &Config{
		DBSource:     getEnv("DB_SOURCE", "express.db"),
		Port:         getEnv("PORT", "5002"),
		JWTSecret:    getEnv("JWT_SECRET", "changeme"),
		TokenTTL:     time.Duration(ttlMinutes) * time.Minute,
		AnonUsername: getEnv("ANON_USERNAME", "guest"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
