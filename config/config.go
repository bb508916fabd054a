package config

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// AppConfig holds environment driven configuration values.
// Sensitive data should never have defaults inside code and must be provided via env files or the environment.
type AppConfig struct {
	AppPort     string
	DatabaseURI string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	// Admin credentials: either a bcrypt hash or a plain password hashed at boot.
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	JWTSecret         string
	SessionHours      int
	// Uploads
	UploadDir       string
	UploadMaxSizeMB int
	// Static SPA build served as catch-all in production; empty disables it.
	StaticDir string
	// CORS / rate limiting
	AllowedOrigins     []string
	RateLimitPerMinute int
	// Gin framework configuration
	GinMode string
	GinPath string
	// Logging configuration
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
	// Redis for caching and the token blacklist
	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	// SMTP for the subscriber welcome mail
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
	SMTPTLS      bool
	// RepairIntervalMinutes controls the dangling category reference sweep.
	RepairIntervalMinutes int
}

var cfg AppConfig
var loaded bool

// Load loads the application configuration. It should be called once during boot.
// Precedence: config/config.json -> defaults -> environment variable overrides.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	_ = loadJSONConfig(filepath.Join("config", "config.json"), &cfg)
	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if cfg.JWTSecret == "" {
		// Ephemeral secret so development setups still boot; sessions will
		// not survive a restart without JWT_SECRET set.
		buf := make([]byte, 32)
		_, _ = rand.Read(buf)
		cfg.JWTSecret = hex.EncodeToString(buf)
		log.Println("JWT_SECRET not set, using an ephemeral secret for this run")
	}

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

// Set replaces the cached configuration. Intended for tests.
func Set(c AppConfig) {
	cfg = c
	loaded = true
}

func applyDefaults(c *AppConfig) {
	if c.AppPort == "" {
		c.AppPort = "5000"
	}
	if c.DBHost == "" {
		c.DBHost = "127.0.0.1"
	}
	if c.DBPort == "" {
		c.DBPort = "3306"
	}
	if c.DBUser == "" {
		c.DBUser = "root"
	}
	if c.DBName == "" {
		c.DBName = "travelblog"
	}
	if c.AdminUsername == "" {
		c.AdminUsername = "admin"
	}
	if c.SessionHours <= 0 {
		c.SessionHours = 12
	}
	if c.UploadDir == "" {
		c.UploadDir = filepath.Join(".", "uploads")
	}
	if c.UploadMaxSizeMB <= 0 {
		c.UploadMaxSizeMB = 10
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if c.RateLimitPerMinute <= 0 {
		c.RateLimitPerMinute = 30
	}
	if c.GinMode == "" {
		c.GinMode = "release"
	}
	if c.GinPath == "" {
		c.GinPath = filepath.Join("logs", "access.log")
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogPath == "" {
		c.LogPath = filepath.Join("logs", "app.log")
	}
	if c.LogMaxSizeMB <= 0 {
		c.LogMaxSizeMB = 100
	}
	if c.LogMaxBackups <= 0 {
		c.LogMaxBackups = 3
	}
	if c.LogMaxAgeDays <= 0 {
		c.LogMaxAgeDays = 7
	}
	if c.RedisHost == "" {
		c.RedisHost = "127.0.0.1"
	}
	if c.RedisPort <= 0 {
		c.RedisPort = 6379
	}
	if c.SMTPPort <= 0 {
		c.SMTPPort = 587
	}
	if c.RepairIntervalMinutes <= 0 {
		c.RepairIntervalMinutes = 30
	}
}

// loadJSONConfig reads a flat JSON object into cfg if the file exists.
func loadJSONConfig(path string, out *AppConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return nil // silently ignore missing file
	}
	defer f.Close()

	var raw map[string]any
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return err
	}

	getString := func(key string) string {
		if v, ok := raw[key].(string); ok {
			return v
		}
		return ""
	}
	getInt := func(key string) int {
		switch v := raw[key].(type) {
		case float64:
			return int(v)
		case string:
			n, _ := strconv.Atoi(v)
			return n
		}
		return 0
	}
	getBool := func(key string) bool {
		if v, ok := raw[key].(bool); ok {
			return v
		}
		return false
	}

	out.AppPort = getString("app_port")
	out.DatabaseURI = getString("database_uri")
	out.DBHost = getString("db_host")
	out.DBPort = getString("db_port")
	out.DBUser = getString("db_user")
	out.DBPassword = getString("db_password")
	out.DBName = getString("db_name")
	out.AdminUsername = getString("admin_username")
	out.AdminPassword = getString("admin_password")
	out.AdminPasswordHash = getString("admin_password_hash")
	out.JWTSecret = getString("jwt_secret")
	out.SessionHours = getInt("session_hours")
	out.UploadDir = getString("upload_dir")
	out.UploadMaxSizeMB = getInt("upload_max_size_mb")
	out.StaticDir = getString("static_dir")
	if s := getString("allowed_origins"); s != "" {
		out.AllowedOrigins = splitAndTrim(s)
	}
	out.RateLimitPerMinute = getInt("rate_limit_per_minute")
	out.GinMode = getString("gin_mode")
	out.GinPath = getString("gin_path")
	out.LogLevel = getString("log_level")
	out.LogPath = getString("log_path")
	out.LogMaxSizeMB = getInt("log_max_size_mb")
	out.LogMaxBackups = getInt("log_max_backups")
	out.LogMaxAgeDays = getInt("log_max_age_days")
	out.LogCompress = getBool("log_compress")
	out.RedisHost = getString("redis_host")
	out.RedisPort = getInt("redis_port")
	out.RedisDB = getInt("redis_db")
	out.RedisPassword = getString("redis_password")
	out.SMTPHost = getString("smtp_host")
	out.SMTPPort = getInt("smtp_port")
	out.SMTPUsername = getString("smtp_username")
	out.SMTPPassword = getString("smtp_password")
	out.SMTPFrom = getString("smtp_from")
	out.SMTPFromName = getString("smtp_from_name")
	out.SMTPTLS = getBool("smtp_tls")
	out.RepairIntervalMinutes = getInt("repair_interval_minutes")
	return nil
}

func applyEnvOverrides(c *AppConfig) {
	setStr := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setInt := func(dst *int, key string) {
		if v := os.Getenv(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}
	setBool := func(dst *bool, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v == "1" || strings.EqualFold(v, "true")
		}
	}

	setStr(&c.AppPort, "PORT")
	setStr(&c.DatabaseURI, "DATABASE_URI")
	setStr(&c.DBHost, "DB_HOST")
	setStr(&c.DBPort, "DB_PORT")
	setStr(&c.DBUser, "DB_USER")
	setStr(&c.DBPassword, "DB_PASSWORD")
	setStr(&c.DBName, "DB_NAME")
	setStr(&c.AdminUsername, "ADMIN_USERNAME")
	setStr(&c.AdminPassword, "ADMIN_PASSWORD")
	setStr(&c.AdminPasswordHash, "ADMIN_PASSWORD_HASH")
	setStr(&c.JWTSecret, "JWT_SECRET")
	setInt(&c.SessionHours, "SESSION_HOURS")
	setStr(&c.UploadDir, "UPLOAD_DIR")
	setInt(&c.UploadMaxSizeMB, "UPLOAD_MAX_SIZE_MB")
	setStr(&c.StaticDir, "STATIC_DIR")
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = splitAndTrim(v)
	}
	setInt(&c.RateLimitPerMinute, "RATE_LIMIT_PER_MINUTE")
	setStr(&c.GinMode, "GIN_MODE")
	setStr(&c.GinPath, "GIN_PATH")
	setStr(&c.LogLevel, "LOG_LEVEL")
	setStr(&c.LogPath, "LOG_PATH")
	setInt(&c.LogMaxSizeMB, "LOG_MAX_SIZE_MB")
	setInt(&c.LogMaxBackups, "LOG_MAX_BACKUPS")
	setInt(&c.LogMaxAgeDays, "LOG_MAX_AGE_DAYS")
	setBool(&c.LogCompress, "LOG_COMPRESS")
	setStr(&c.RedisHost, "REDIS_HOST")
	setInt(&c.RedisPort, "REDIS_PORT")
	setInt(&c.RedisDB, "REDIS_DB")
	setStr(&c.RedisPassword, "REDIS_PASSWORD")
	setStr(&c.SMTPHost, "SMTP_HOST")
	setInt(&c.SMTPPort, "SMTP_PORT")
	setStr(&c.SMTPUsername, "SMTP_USERNAME")
	setStr(&c.SMTPPassword, "SMTP_PASSWORD")
	setStr(&c.SMTPFrom, "SMTP_FROM")
	setStr(&c.SMTPFromName, "SMTP_FROM_NAME")
	setBool(&c.SMTPTLS, "SMTP_TLS")
	setInt(&c.RepairIntervalMinutes, "REPAIR_INTERVAL_MINUTES")
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
