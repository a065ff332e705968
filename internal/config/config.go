package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Gemini GeminiConfig
	Upload UploadConfig
	S3     S3Config
	CORS   CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// GeminiConfig holds settings for the Gemini model gateway.
type GeminiConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	Endpoint    string `mapstructure:"endpoint"`
}

// UploadConfig holds receipt upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// S3Config holds AWS S3 settings for original-document archival. An empty
// Bucket disables archival.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the HSATRACK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HSATRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "hsatrack")
	v.SetDefault("db.password", "hsatrack_secret")
	v.SetDefault("db.name", "hsatrack_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Gemini defaults
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.timeout_secs", 120)
	v.SetDefault("gemini.endpoint", "")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)

	// S3 defaults (archival disabled unless a bucket is set)
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":           "HSATRACK_SERVER_PORT",
		"server.read_timeout":   "HSATRACK_SERVER_READ_TIMEOUT",
		"server.write_timeout":  "HSATRACK_SERVER_WRITE_TIMEOUT",
		"server.environment":    "HSATRACK_SERVER_ENVIRONMENT",
		"db.host":               "HSATRACK_DB_HOST",
		"db.port":               "HSATRACK_DB_PORT",
		"db.user":               "HSATRACK_DB_USER",
		"db.password":           "HSATRACK_DB_PASSWORD",
		"db.name":               "HSATRACK_DB_NAME",
		"db.sslmode":            "HSATRACK_DB_SSLMODE",
		"db.max_open":           "HSATRACK_DB_MAX_OPEN",
		"db.max_idle":           "HSATRACK_DB_MAX_IDLE",
		"gemini.api_key":        "HSATRACK_GEMINI_API_KEY",
		"gemini.model":          "HSATRACK_GEMINI_MODEL",
		"gemini.timeout_secs":   "HSATRACK_GEMINI_TIMEOUT_SECS",
		"gemini.endpoint":       "HSATRACK_GEMINI_ENDPOINT",
		"upload.max_file_size_mb": "HSATRACK_UPLOAD_MAX_FILE_SIZE_MB",
		"s3.region":             "HSATRACK_S3_REGION",
		"s3.bucket":             "HSATRACK_S3_BUCKET",
		"s3.endpoint":           "HSATRACK_S3_ENDPOINT",
		"s3.access_key":         "HSATRACK_S3_ACCESS_KEY",
		"s3.secret_key":         "HSATRACK_S3_SECRET_KEY",
		"cors.allowed_origins":  "HSATRACK_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if HSATRACK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("HSATRACK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Gemini = GeminiConfig{
		APIKey:      v.GetString("gemini.api_key"),
		Model:       v.GetString("gemini.model"),
		TimeoutSecs: v.GetInt("gemini.timeout_secs"),
		Endpoint:    v.GetString("gemini.endpoint"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
