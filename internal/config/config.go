package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config contains all runtime settings for the LegalClause web service.
type Config struct {
	BindAddr         string
	ShutdownTimeout  time.Duration
	SessionTTL       time.Duration
	MetricsNamespace string

	DatabaseURL string
	SecretKey   string

	GeminiAPIKey       string
	GeminiChatModel    string
	GeminiSummaryModel string

	GroqAPIKey string
	GroqModel  string

	ConstitutionPath string
	TesseractCmd     string
	OCRLanguage      string

	ProviderTimeout  time.Duration
	NewsFetchTimeout time.Duration
}

// Load reads environment variables and applies safe defaults. The database
// URL is the one hard requirement: without it the process must not start.
func Load() (Config, error) {
	cfg := Config{
		BindAddr:         envOrDefault("APP_BIND_ADDR", ":8080"),
		MetricsNamespace: envOrDefault("APP_METRICS_NAMESPACE", "legalclause"),
		DatabaseURL:      envTrimmed("DATABASE_URL"),
		SecretKey:        envOrDefault("SECRET_KEY", "dev-secret"),
		GeminiAPIKey:     envTrimmed("GAISTUDIO_KEY"),
		// The chat model favors low latency; summaries get the larger one.
		GeminiChatModel:    envOrDefault("GEMINI_CHAT_MODEL", "gemini-2.0-flash-exp"),
		GeminiSummaryModel: envOrDefault("GEMINI_SUMMARY_MODEL", "gemini-2.5-flash"),
		GroqAPIKey:         envTrimmed("GROQ_KEY"),
		GroqModel:          envOrDefault("GROQ_MODEL", "llama-3.3-70b-versatile"),
		ConstitutionPath:   envOrDefault("CONSTITUTION_PATH", "Documentation/Constitution_of_India_2024_EnglishVersion.pdf"),
		TesseractCmd:       envOrDefault("TESSERACT_CMD", "tesseract"),
		OCRLanguage:        envOrDefault("OCR_LANGUAGE", "eng"),
		ShutdownTimeout:    15 * time.Second,
		SessionTTL:         24 * time.Hour,
		ProviderTimeout:    2 * time.Minute,
		NewsFetchTimeout:   10 * time.Second,
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}

	var err error
	cfg.ShutdownTimeout, err = durationFromEnv("APP_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	if err != nil {
		return Config{}, err
	}
	cfg.SessionTTL, err = durationFromEnv("APP_SESSION_TTL", cfg.SessionTTL)
	if err != nil {
		return Config{}, err
	}
	cfg.ProviderTimeout, err = durationFromEnv("APP_PROVIDER_TIMEOUT", cfg.ProviderTimeout)
	if err != nil {
		return Config{}, err
	}
	cfg.NewsFetchTimeout, err = durationFromEnv("NEWS_FETCH_TIMEOUT", cfg.NewsFetchTimeout)
	if err != nil {
		return Config{}, err
	}

	if cfg.SessionTTL < time.Minute {
		return Config{}, fmt.Errorf("APP_SESSION_TTL must be at least 1m")
	}
	if cfg.ProviderTimeout <= 0 {
		return Config{}, fmt.Errorf("APP_PROVIDER_TIMEOUT must be positive")
	}
	if cfg.NewsFetchTimeout <= 0 {
		return Config{}, fmt.Errorf("NEWS_FETCH_TIMEOUT must be positive")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func envTrimmed(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := envTrimmed(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s parse error: %w", key, err)
	}
	return d, nil
}
