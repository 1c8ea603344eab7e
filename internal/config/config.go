package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errInvalidEnvVar error = errors.New("invalid environment variable")

const (
	apiPortEnvKey         = "API_PORT"
	dbConnEnvKey          = "DB_CONNECTION_URL"
	jwtSecretEnvKey       = "JWT_SECRET"
	logLevelEnvKey        = "LOG_LEVEL"
	sessionTTLEnvKey      = "SESSION_TTL"
	corsOriginEnvKey      = "CORS_ALLOWED_ORIGIN"
	maxPictureBytesEnvKey = "MAX_PICTURE_BYTES"
)

const (
	defaultLogLevel        = "info"
	defaultSessionTTL      = 24 * time.Hour
	defaultCORSOrigin      = "*"
	defaultMaxPictureBytes = 5 << 20
)

type App struct {
	Port              string
	DBConnectionURL   string
	JWTSecret         string
	LogLevel          string
	SessionTTL        time.Duration
	CORSAllowedOrigin string
	MaxPictureBytes   int64
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are ignored; variables already set win.
func LoadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load dotenv: %w", err)
	}
	return nil
}

func NewApp() (App, error) {
	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok || jwtSecret == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	logLevel := lookupOrDefault(logLevelEnvKey, defaultLogLevel)
	corsOrigin := lookupOrDefault(corsOriginEnvKey, defaultCORSOrigin)

	sessionTTL := defaultSessionTTL
	if raw, ok := os.LookupEnv(sessionTTLEnvKey); ok {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			return App{}, fmt.Errorf("%w: %s=%q", errInvalidEnvVar, sessionTTLEnvKey, raw)
		}
		sessionTTL = ttl
	}

	var maxPictureBytes int64 = defaultMaxPictureBytes
	if raw, ok := os.LookupEnv(maxPictureBytesEnvKey); ok {
		size, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || size <= 0 {
			return App{}, fmt.Errorf("%w: %s=%q", errInvalidEnvVar, maxPictureBytesEnvKey, raw)
		}
		maxPictureBytes = size
	}

	return App{
		Port:              port,
		DBConnectionURL:   dbConn,
		JWTSecret:         jwtSecret,
		LogLevel:          logLevel,
		SessionTTL:        sessionTTL,
		CORSAllowedOrigin: corsOrigin,
		MaxPictureBytes:   maxPictureBytes,
	}, nil
}

func lookupOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
