// Package config loads runtime configuration for the Blogify auth CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed with BLOGIFY_ (see parseEnv).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-a string   base URL of the auth API
//	-t int      request timeout (seconds)
//	-d string   session database path
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://blogify-web-backend.vercel.app/api",
//	  "request_timeout": "15s",
//	  "session_db_path": "/home/alice/.local/state/blogify/session.db",
//	  "log_level": "info"
//	}
//
// # Environment
//
//	BLOGIFY_API_URL, BLOGIFY_REQUEST_TIMEOUT (e.g. "15s"), BLOGIFY_SESSION_DB, BLOGIFY_LOG_LEVEL
package config
