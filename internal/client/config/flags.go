package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/nuroki/internal/flagx"
)

// Flags understood by parseFlags. The same names are declared on the cobra
// root command so that it accepts them.
var configFlags = []string{
	"-a", "--a", "-api", "--api",
	"-t", "--t", "-timeout", "--timeout",
	"-log-level", "--log-level",
}

// parseFlags populates selected Config fields from command-line flags.
//
//	-a, --api string          backend API base URL
//	-t, --timeout duration    per-request timeout
//	--log-level string        debug, info, warn or error
//
// args are filtered with flagx.FilterArgs first, so subcommands and their
// flags pass through untouched.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, configFlags)

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend API base URL")
	fs.StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "backend API base URL")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "per-request timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
