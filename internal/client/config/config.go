package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/nuroki/internal/logging"
)

// Config holds runtime settings for the nuroki CLI.
type Config struct {
	// APIBaseURL serves auth, profile and journal endpoints.
	APIBaseURL string
	// CoursesBaseURL serves courses, roadmaps and enrollments.
	CoursesBaseURL string
	// DBPath is the SQLite file holding the token pair.
	DBPath         string
	RequestTimeout time.Duration
	LogFormat      string
	LogLevel       string
	// CoalesceRefresh shares one token refresh between concurrent 401s.
	CoalesceRefresh bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.CoursesBaseURL = "http://localhost:8001/api"
	c.DBPath = defaultDBPath()
	c.RequestTimeout = 15 * time.Second
	c.LogFormat = logging.FormatText
	c.LogLevel = "warn"
	c.CoalesceRefresh = true
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "nuroki.db"
	}
	return filepath.Join(dir, "nuroki", "nuroki.db")
}

// LoadConfig builds a Config from os.Args and the process environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], os.LookupEnv)
}

// Load constructs a Config, applies defaults, then overlays values from a
// config file (if -c/--config is given), a .env file and the environment,
// and finally command-line flags. Later sources take precedence over
// earlier ones.
func Load(args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, envLookup(dotEnvPath, lookupEnv)); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
