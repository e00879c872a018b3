package config

import "os"

// Config carries everything the service reads from the environment.
type Config struct {
	Port        string
	FrontendURL string

	GeminiAPIKey   string
	GeminiModel    string
	GeminiTipModel string

	TipCacheFile string
}

// Load reads the environment with defaults. godotenv runs in main
// before this, so .env values are already visible here.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8000"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash-lite"),
		GeminiTipModel: getEnv("GEMINI_TIP_MODEL", "gemini-1.5-flash"),

		TipCacheFile: getEnv("TIP_CACHE_FILE", "./data/daily_tip_cache.json"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
