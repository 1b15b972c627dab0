package config

const (
	defaultConfigPath  = "~/.config/chunksum/config.toml"
	projectConfigName  = "chunksum.toml"
	defaultJobs        = -1
	defaultPadding     = "stale"
	defaultFormat      = "text"
	defaultLogFormat   = "console"
	defaultLogLevel    = "warn"
	defaultFollowLinks = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Walk: Walk{
			Jobs:           defaultJobs,
			FollowSymlinks: defaultFollowLinks,
			Padding:        defaultPadding,
		},
		Output: Output{
			Format: defaultFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
