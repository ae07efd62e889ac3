// internal/config/config.go
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string

	// DataDir is where the CLI writes exports.
	DataDir string

	// SecretKey signs session cookies and JWTs.
	SecretKey           string
	JWTExpiresInSeconds int64

	AdminUsername string
	AdminPassword string

	XLSXEnabled bool

	RetryAttempts  int
	RetryBaseDelay time.Duration

	LogLevel  string
	LogFormat string

	CORSAllowedOrigins []string

	S3Bucket       string
	S3ExportPrefix string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		host := getEnv("PSQL_HOST", "localhost")
		port := getEnv("PSQL_PORT", "5432")
		user := getEnv("PSQL_USER", "postgres")
		password := getEnv("PSQL_PASSWORD", "postgres")
		dbName := getEnv("PSQL_DB_NAME", "simsea")

		u := &url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(user, password),
			Host:   host + ":" + port,
			Path:   dbName,
		}
		q := u.Query()
		q.Set("sslmode", "disable")
		u.RawQuery = q.Encode()
		databaseURL = u.String()
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		DatabaseURL:         databaseURL,
		DataDir:             getEnv("SIMSEA_DATA_DIR", "data"),
		SecretKey:           getEnv("SIMSEA_SECRET_KEY", "dev-secret-change-me"),
		JWTExpiresInSeconds: int64(getEnvInt("JWT_EXPIRES_IN_SECONDS", 86400)),
		AdminUsername:       getEnv("SIMSEA_ADMIN_USERNAME", "admin"),
		AdminPassword:       getEnv("SIMSEA_ADMIN_PASSWORD", "admin"),
		XLSXEnabled:         getEnvBool("SIMSEA_XLSX_ENABLED", true),
		RetryAttempts:       getEnvInt("SIMSEA_RETRY_ATTEMPTS", 6),
		RetryBaseDelay:      time.Duration(getEnvInt("SIMSEA_RETRY_BASE_DELAY_MS", 500)) * time.Millisecond,
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "json"),
		CORSAllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		S3Bucket:            os.Getenv("S3_BUCKET_NAME"),
		S3ExportPrefix:      getEnv("S3_EXPORT_PREFIX", "exports/"),
	}
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(strings.TrimSpace(getEnv(key, "")))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(getEnv(key, "")))
	if err != nil {
		return defaultValue
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
