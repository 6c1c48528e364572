package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config captures everything the server reads from the environment. It is
// built once in main and passed down explicitly; nothing else touches os.Getenv.
type Config struct {
	Addr string

	// Record store.
	FirestoreProjectID string
	CredentialsFile    string

	// Session gate. The cookie name doubles as the gate's only input.
	SessionCookieName string
	SessionSigningKey string
	SessionTTL        time.Duration

	// Single authenticated-admin gate.
	AdminEmail    string
	AdminPassword string

	// Optional summary cache. Empty URL disables it.
	RedisURL        string
	SummaryCacheTTL time.Duration
}

// Load reads an optional .env file and then the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Addr:               getEnv("UNIGUIDE_ADDR", ":8080"),
		FirestoreProjectID: getEnv("UNIGUIDE_FIRESTORE_PROJECT", ""),
		CredentialsFile:    getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		SessionCookieName:  getEnv("UNIGUIDE_SESSION_COOKIE", "ug_auth"),
		SessionSigningKey:  getEnv("UNIGUIDE_SESSION_KEY", "dev-secret-key-change-in-production"),
		SessionTTL:         getDuration("UNIGUIDE_SESSION_TTL", 7*24*time.Hour),
		AdminEmail:         getEnv("UNIGUIDE_ADMIN_EMAIL", "admin@uniguide.local"),
		AdminPassword:      getEnv("UNIGUIDE_ADMIN_PASSWORD", "admin"),
		RedisURL:           getEnv("UNIGUIDE_REDIS_URL", ""),
		SummaryCacheTTL:    getDuration("UNIGUIDE_SUMMARY_CACHE_TTL", 5*time.Minute),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
