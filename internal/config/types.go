package config

// Config is the top-level refview configuration, corresponding to .refview.yml.
type Config struct {
	// Source is the document endpoint: an HTTP(S) URL or a local file path.
	Source string `yaml:"source" koanf:"source"`
	// Title is the site name shown in the sidebar header.
	Title string `yaml:"title" koanf:"title"`
	Port  int    `yaml:"port" koanf:"port"`
	// Mode is the default view mode, "user" or "dev".
	Mode                string `yaml:"mode" koanf:"mode"`
	FetchTimeoutSeconds int    `yaml:"fetch_timeout_seconds" koanf:"fetch_timeout_seconds"`
	AllowAllOrigins     bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Open                bool   `yaml:"open" koanf:"open"`
}
