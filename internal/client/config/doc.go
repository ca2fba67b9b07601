// Package config loads runtime configuration for the showcase client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, after loading an optional .env file.
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Environment
//
//	SHOWCASE_API_URL     base URL of the API, e.g. http://127.0.0.1:5000/api
//	SHOWCASE_DB          path of the local session database
//	SHOWCASE_TIMEOUT     request timeout, Go duration syntax ("15s")
//	SHOWCASE_RPS         outgoing requests per second, 0 disables throttling
//	SHOWCASE_LOG_LEVEL   debug|info|warn|error
//
// Supported flags
//
//	-a string   API base URL
//	-d string   session database path
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "15s" or
// integer nanoseconds. Missing keys leave the current value alone:
//
//	{
//	  "api_base_url": "http://127.0.0.1:5000/api",
//	  "database_path": "showcase.db",
//	  "request_timeout": "15s",
//	  "requests_per_second": 5,
//	  "log_level": "debug",
//	  "home_preview_projects": 4,
//	  "home_preview_users": 3
//	}
package config
