package config

import (
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port        string
	Env         string
	CORSOrigins []string

	// Store selection: postgres, sqlite or mongo
	StoreDriver      string
	StorePingTimeout time.Duration

	// PostgreSQL
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// golang-migrate source URL; empty disables migrations at startup
	MigrationsSource string

	// SQLite
	SQLitePath string

	// MongoDB
	MongoURI      string
	MongoDatabase string

	// Session
	JWTSecret        string
	JWTExpirationDur time.Duration
	CookieSecure     bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),

		StoreDriver:      strings.ToLower(getEnv("STORE_DRIVER", "postgres")),
		StorePingTimeout: getEnvDuration("STORE_PING_TIMEOUT", 2*time.Second),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "roundup"),
		DBPassword: getEnv("DB_PASSWORD", "roundup"),
		DBName:     getEnv("DB_NAME", "roundup"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		MigrationsSource: getEnv("MIGRATIONS_SOURCE", "file://migrations"),

		SQLitePath: getEnv("SQLITE_PATH", "roundup.db"),

		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "roundup"),

		JWTSecret:        getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
		JWTExpirationDur: getEnvDuration("JWT_EXPIRES_IN", time.Hour),
		CookieSecure:     getEnvBool("COOKIE_SECURE", false),
	}

	return config, nil
}

// PostgresDSN returns the connection string used by the gorm postgres driver.
func (c *Config) PostgresDSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=" + c.DBSSLMode
}

// PostgresURL returns the URL form expected by golang-migrate, with the
// credentials escaped.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func getEnvBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %t\n", key, raw, defaultValue)
		return defaultValue
	}
	return b
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
