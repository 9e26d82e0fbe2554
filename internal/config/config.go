package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DatabaseURL  string
	AppEnv       string
	DBDebug      bool
	FrontendURLs []string
	GeminiAPIKey string
	GeminiModel  string

	// APIBaseURL is where the board client finds the REST API.
	APIBaseURL string
}

func Load() *Config {
	_ = godotenv.Load() // a missing .env is fine, the environment wins

	return &Config{
		Port:         getEnv("PORT", "8000"),
		DatabaseURL:  getEnv("DATABASE_URL", "file:jobs.sqlite"),
		AppEnv:       getEnv("APP_ENV", "local"),
		DBDebug:      getEnv("DB_DEBUG", "false") == "true",
		FrontendURLs: frontendURLs(getEnv("FRONTEND_URL", ""), getEnv("FRONTEND_URL_ALT", "")),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		APIBaseURL:   strings.TrimRight(getEnv("JOB_BOARD_API_URL", "http://localhost:8000/api"), "/"),
	}
}

// IsLocal reports whether the app runs on a developer machine.
func (c *Config) IsLocal() bool {
	return c.AppEnv == "local"
}

// AllowedOrigins lists the browser origins the API answers CORS requests for.
func (c *Config) AllowedOrigins() []string {
	origins := []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	for _, u := range c.FrontendURLs {
		if !contains(origins, u) {
			origins = append(origins, u)
		}
	}
	return origins
}

func frontendURLs(urls ...string) []string {
	var out []string
	for _, u := range urls {
		u = strings.TrimRight(strings.TrimSpace(u), "/")
		if u != "" {
			out = append(out, u)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
