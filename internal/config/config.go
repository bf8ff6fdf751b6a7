package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

var (
	ServerPort   string
	JwtSecret    string
	Issuer       string
	TokenTTL     time.Duration
	IsProduction bool

	DbDriver   string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	SqlitePath string

	RedisAddr       string
	RedisPassword   string
	IssueRateLimit  int
	IssueRateWindow time.Duration

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	AITimeout     time.Duration

	AuditRetentionDays int

	LogLevel       string
	LogFormat      string
	TracesExporter string
	AllowedOrigins []string
)

const (
	RoleResident = "resident"
	RoleAdmin    = "admin"
)

// fileValues holds the optional YAML overlay. Keys are the lower-cased
// environment variable names; real environment variables always win.
var fileValues map[string]string

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	fileValues = nil
	if path, ok := os.LookupEnv("CONFIG_FILE"); ok && path != "" {
		values, err := loadFile(path)
		if err != nil {
			slog.Warn("Ignoring config file", "path", path, "error", err)
		} else {
			fileValues = values
		}
	}

	ServerPort = getEnv("SERVER_PORT", "8080")
	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "residence-hub")
	TokenTTL = getDuration("TOKEN_TTL", 24*time.Hour)
	IsProduction = getBool("IS_PRODUCTION", false)

	DbDriver = getEnv("DB_DRIVER", "postgres")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "residence")
	SqlitePath = getEnv("SQLITE_PATH", "residence.db")

	RedisAddr = getEnv("REDIS_ADDR", "")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	IssueRateLimit = getInt("ISSUE_RATE_LIMIT", 10)
	IssueRateWindow = getDuration("ISSUE_RATE_WINDOW", 24*time.Hour)

	OpenAIAPIKey = getEnv("OPENAI_API_KEY", "")
	OpenAIModel = getEnv("OPENAI_MODEL", "gpt-4o-mini")
	OpenAIBaseURL = getEnv("OPENAI_BASE_URL", "")
	AITimeout = getDuration("AI_TIMEOUT", 20*time.Second)

	AuditRetentionDays = getInt("AUDIT_RETENTION_DAYS", 30)

	LogLevel = getEnv("LOG_LEVEL", "info")
	LogFormat = getEnv("LOG_FORMAT", "json")
	TracesExporter = getEnv("OTEL_TRACES_EXPORTER", "none")
	AllowedOrigins = splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"))
}

func loadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	values := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			values[strings.ToLower(k)] = val
		case []interface{}:
			parts := make([]string, 0, len(val))
			for _, item := range val {
				parts = append(parts, toString(item))
			}
			values[strings.ToLower(k)] = strings.Join(parts, ",")
		default:
			values[strings.ToLower(k)] = toString(val)
		}
	}
	return values, nil
}

func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if value, ok := fileValues[strings.ToLower(key)]; ok && value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		slog.Warn("Invalid integer setting, using default", "key", key, "default", fallback)
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, fallback.String()))
	if err != nil {
		slog.Warn("Invalid duration setting, using default", "key", key, "default", fallback)
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
