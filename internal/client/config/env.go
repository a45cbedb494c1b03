package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const dotEnvPath = ".env"

// Environment variables read by parseEnv.
const (
	EnvAPIBaseURL      = "NUROKI_API_URL"
	EnvCoursesBaseURL  = "NUROKI_COURSES_URL"
	EnvDBPath          = "NUROKI_DB_PATH"
	EnvRequestTimeout  = "NUROKI_TIMEOUT"
	EnvLogFormat       = "NUROKI_LOG_FORMAT"
	EnvLogLevel        = "NUROKI_LOG_LEVEL"
	EnvCoalesceRefresh = "NUROKI_COALESCE_REFRESH"
)

// envLookup returns a lookup that consults the process environment first and
// the dotenv file at path second. A missing or unreadable file is ignored.
func envLookup(path string, lookupEnv func(string) (string, bool)) func(string) (string, bool) {
	dotenv, err := godotenv.Read(path)
	if err != nil {
		dotenv = nil
	}
	return func(key string) (string, bool) {
		if v, ok := lookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

// parseEnv overlays cfg with NUROKI_* variables.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str(EnvAPIBaseURL, &cfg.APIBaseURL)
	str(EnvCoursesBaseURL, &cfg.CoursesBaseURL)
	str(EnvDBPath, &cfg.DBPath)
	str(EnvLogFormat, &cfg.LogFormat)
	str(EnvLogLevel, &cfg.LogLevel)

	if v, ok := lookup(EnvRequestTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRequestTimeout, err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup(EnvCoalesceRefresh); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCoalesceRefresh, err)
		}
		cfg.CoalesceRefresh = b
	}
	return nil
}
