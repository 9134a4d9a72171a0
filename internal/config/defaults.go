package config

// DefaultConfigFile is the conventional config file name.
const DefaultConfigFile = ".refview.yml"

// DefaultConfig returns a Config with sensible defaults. Source has no
// default; it must come from the config file, an env override, or the wizard.
func DefaultConfig() *Config {
	return &Config{
		Title:               "Reference",
		Port:                8791,
		Mode:                "user",
		FetchTimeoutSeconds: 30,
		AllowAllOrigins:     false,
		Open:                false,
	}
}
