package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application settings, loaded from environment variables
// with a .env file as an optional convenience.
type Config struct {
	Port        string
	BaseURL     string
	FetchMs     int
	DialMs      int
	SizeCapMB   int
	Concurrency int
	RateLimitMs int

	RulesPath string // optional YAML keyword-rules override
	RandSeed  int64  // 0 = time-seeded
	Strategy  string // branding-potential strategy name
}

// Load reads the .env file (if any) and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] no .env file found, using system env vars")
	}
	return &Config{
		Port:        getEnv("PORT", "3001"),
		BaseURL:     getEnv("SCRAPE_BASE_URL", "https://www.amazon.in"),
		FetchMs:     getEnvInt("FETCH_TIMEOUT_MS", 30000),
		DialMs:      getEnvInt("DIAL_TIMEOUT_MS", 5000),
		SizeCapMB:   getEnvInt("FETCH_SIZE_CAP_MB", 5),
		Concurrency: getEnvInt("MAX_CONCURRENCY", 3),
		RateLimitMs: getEnvInt("RATE_LIMIT_MS", 2000),
		RulesPath:   getEnv("RULES_PATH", ""),
		RandSeed:    int64(getEnvInt("RAND_SEED", 0)),
		Strategy:    getEnv("BRANDING_STRATEGY", "competition-band"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
