package config

import (
	"encoding/json"
	"os"
	"strings"
	"sync"
	"time"
)

// Corpus backends
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Config holds all application configuration
type Config struct {
	// API Settings
	APITitle   string
	APIVersion string
	APIPrefix  string
	Port       string

	// CORS
	CORSOrigins []string

	// Corpus source: "file", "postgres" or "sqlite"
	CorpusBackend string
	CorpusPath    string // JSON or YAML document (file backend)
	DatabaseURI   string // DSN for the postgres and sqlite backends

	// Voice capture
	VoiceCommand string
	VoiceTimeout time.Duration

	ShutdownTimeout time.Duration
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration instance
func GetConfig() *Config {
	once.Do(func() {
		config = Load()
	})
	return config
}

// Load reads a fresh configuration from the environment
func Load() *Config {
	return &Config{
		APITitle:    getEnv("API_TITLE", "Gita Explorer API"),
		APIVersion:  getEnv("API_VERSION", "1.0.0"),
		APIPrefix:   getEnv("API_PREFIX", "/api/v1"),
		Port:        getEnv("PORT", "5000"),
		CORSOrigins: parseCORSOrigins(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),

		CorpusBackend: strings.ToLower(getEnv("CORPUS_BACKEND", BackendFile)),
		CorpusPath:    getEnv("CORPUS_PATH", "gita_verses.json"),
		DatabaseURI:   getEnv("DATABASE_URI", ""),

		VoiceCommand: getEnv("VOICE_COMMAND", "termux-speech-to-text"),
		VoiceTimeout: getEnvDuration("VOICE_TIMEOUT", 5*time.Second),

		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return defaultValue
		}
		return d
	}
	return defaultValue
}

func parseCORSOrigins(value string) []string {
	var origins []string
	if err := json.Unmarshal([]byte(value), &origins); err == nil {
		return origins
	}
	parts := strings.Split(value, ",")
	origins = make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
