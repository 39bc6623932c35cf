package instance

import "github.com/damru/damru/internal/config"

const DefaultName = "main"

// Resolve determines the active instance name using precedence:
// 1. flagOverride (--instance flag)
// 2. config.toml default_instance
// 3. "main"
func Resolve(flagOverride string, cfg *config.Config) string {
	if flagOverride != "" {
		return flagOverride
	}
	if cfg != nil && cfg.DefaultInstance != "" {
		return cfg.DefaultInstance
	}
	return DefaultName
}

// DirectoryDB returns the configured directory database path, or the
// instance default when the config leaves it blank.
func DirectoryDB(name string, cfg *config.Config) string {
	if cfg != nil && cfg.DirectoryDB != "" {
		return cfg.DirectoryDB
	}
	return DirectoryDBPath(name)
}
