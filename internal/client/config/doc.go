// Package config loads runtime configuration for the portal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. PORTAL_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// The merged Config is then checked with go-playground/validator.
//
// Supported flags
//
//	-a string     backend API base URL
//	-t duration   per-call timeout
//	-d string     state database path
//	-l string     log level
//	-m string     metrics listen address
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080/api",
//	  "request_timeout": "10s",
//	  "state_db_path": "portal.db",
//	  "log_level": "warn",
//	  "log_format": "text",
//	  "metrics_addr": ":9091"
//	}
//
// # Environment
//
//	PORTAL_SERVER_BASE_URL, PORTAL_REQUEST_TIMEOUT, PORTAL_STATE_DB_PATH,
//	PORTAL_LOG_LEVEL, PORTAL_LOG_FORMAT, PORTAL_METRICS_ADDR
package config
