package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
)

// Config holds runtime settings for the facultyip CLI.
//
// Fields:
//   - ServerURL: base URL of the backend; "/api" is appended by the client.
//   - DatabasePath: SQLite file holding the persisted session.
//   - RequestTimeout: upper bound for a single backend request.
//   - LogLevel: debug, info, warn or error.
//   - ExportDir: directory for admin exports when no bucket or URL is set.
//   - ExportURL: upload endpoint; exports are PUT to ExportURL/<file name>.
//   - ExportBucket / ExportPrefix / S3*: object storage for admin exports.
type Config struct {
	ServerURL      string        `env:"SERVER_URL"       validate:"required,url"`
	DatabasePath   string        `env:"DATABASE_PATH"    validate:"required"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"  validate:"gt=0"`
	LogLevel       string        `env:"LOG_LEVEL"        validate:"oneof=debug info warn warning error"`
	ExportDir      string        `env:"EXPORT_DIR"`
	ExportURL      string        `env:"EXPORT_URL"       validate:"omitempty,url"`
	ExportBucket   string        `env:"EXPORT_BUCKET"`
	ExportPrefix   string        `env:"EXPORT_PREFIX"`
	S3Region       string        `env:"S3_REGION"`
	S3BaseEndpoint string        `env:"S3_BASE_ENDPOINT"`
	S3AccessKey    string        `env:"S3_ACCESS_KEY"`
	S3SecretKey    string        `env:"S3_SECRET_KEY"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8000"
	c.DatabasePath = "facultyip.db"
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "info"
	c.ExportDir = "exports"
	c.S3Region = "us-east-1"
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags (if changed).
// Later sources take precedence over earlier ones. fs may be nil.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, jsonConfigPath(fs)); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, fs); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
