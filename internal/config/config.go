package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DBDSN   string
	LogFile string
	Env     string // "development" | "production"
}

func Load() Config {
	// Best effort: a missing .env is fine, env vars win either way.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "trailhead.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./trailhead.log"
	}
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, Env: env}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s APP_ENV=%s", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.Env)
	return cfg
}

// Production reports whether error detail should be withheld from responses.
func (c Config) Production() bool { return c.Env == "production" }
