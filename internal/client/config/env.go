package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name, e.g. FACULTYIP_SERVER_URL.
const EnvPrefix = "FACULTYIP_"

// EnvConfigFile names the JSON config file when -c is not given.
const EnvConfigFile = EnvPrefix + "CONFIG"

// parseEnv overlays cfg with the variables that are set. Unset variables
// keep the current value.
func parseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func envConfigFile() string {
	return os.Getenv(EnvConfigFile)
}
