// Package config loads runtime configuration for the facultyip CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c/--config or FACULTYIP_CONFIG.
//  3. Environment variables prefixed with FACULTYIP_.
//  4. Command-line flags, only those set explicitly.
//
// Supported flags
//
//	-c, --config string        JSON config file
//	-a, --server string        backend base URL
//	    --db string            local session database
//	    --timeout duration     per-request timeout
//	    --log-level string     debug, info, warn, error
//	    --export-dir string    export directory
//	    --export-bucket string S3 bucket for exports
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either
// a string like "30s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:8000",
//	  "database_path": "facultyip.db",
//	  "request_timeout": "30s",
//	  "log_level": "info",
//	  "export_bucket": "exports",
//	  "s3_base_endpoint": "http://127.0.0.1:9000"
//	}
package config
