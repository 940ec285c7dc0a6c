package config

import (
	"github.com/spf13/pflag"
)

// Flag names shared with the command tree.
const (
	FlagConfig       = "config"
	FlagServer       = "server"
	FlagDatabase     = "db"
	FlagTimeout      = "timeout"
	FlagLogLevel     = "log-level"
	FlagExportDir    = "export-dir"
	FlagExportURL    = "export-url"
	FlagExportBucket = "export-bucket"
)

// BindFlags registers the configuration flags on fs. Defaults shown in
// help come from LoadDefaults; a flag only overrides other sources when
// it was set explicitly.
func BindFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(FlagConfig, "c", "", "path to JSON config file (env "+EnvConfigFile+")")
	fs.StringP(FlagServer, "a", d.ServerURL, "backend base URL")
	fs.String(FlagDatabase, d.DatabasePath, "path to the local session database")
	fs.Duration(FlagTimeout, d.RequestTimeout, "timeout for a single backend request")
	fs.String(FlagLogLevel, d.LogLevel, "log level: debug, info, warn, error")
	fs.String(FlagExportDir, d.ExportDir, "directory for faculty exports")
	fs.String(FlagExportURL, d.ExportURL, "upload URL for faculty exports (overrides --export-dir)")
	fs.String(FlagExportBucket, d.ExportBucket, "S3 bucket for faculty exports (overrides --export-dir)")
}

// jsonConfigPath resolves the JSON file from -c/--config, then the
// environment.
func jsonConfigPath(fs *pflag.FlagSet) string {
	if fs != nil && fs.Lookup(FlagConfig) != nil {
		if p, err := fs.GetString(FlagConfig); err == nil && p != "" {
			return p
		}
	}
	return envConfigFile()
}

// parseFlags copies explicitly set flags into cfg.
func parseFlags(cfg *Config, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}

	strs := map[string]*string{
		FlagServer:       &cfg.ServerURL,
		FlagDatabase:     &cfg.DatabasePath,
		FlagLogLevel:     &cfg.LogLevel,
		FlagExportDir:    &cfg.ExportDir,
		FlagExportURL:    &cfg.ExportURL,
		FlagExportBucket: &cfg.ExportBucket,
	}
	for name, dst := range strs {
		if fs.Lookup(name) == nil || !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}

	if fs.Lookup(FlagTimeout) != nil && fs.Changed(FlagTimeout) {
		v, err := fs.GetDuration(FlagTimeout)
		if err != nil {
			return err
		}
		cfg.RequestTimeout = v
	}
	return nil
}
