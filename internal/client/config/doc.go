// Package config loads runtime configuration for the nuroki CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected via -c or --config.
//  3. NUROKI_* environment variables, with a .env file in the working
//     directory as fallback for unset variables.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a, --api string         backend API base URL
//	-t, --timeout duration   per-request timeout, e.g. 10s
//	--log-level string       debug, info, warn or error
//
// # File schema
//
// Durations use timex.Duration, so values can be strings like "15s" or
// integer nanoseconds:
//
//	api_base_url: http://localhost:8000/api
//	courses_base_url: http://localhost:8001/api
//	db_path: /home/me/.config/nuroki/nuroki.db
//	request_timeout: 15s
//	log_format: json
//	log_level: info
//	coalesce_refresh: true
package config
