package config

// Config is the top-level mcpmatrix configuration, corresponding to
// .mcpmatrix.yml.
type Config struct {
	// DataSource is a directory or an http(s) base URL holding the JSON data.
	DataSource string      `yaml:"data_source" koanf:"data_source"`
	OutputDir  string      `yaml:"output_dir" koanf:"output_dir"`
	Title      string      `yaml:"title" koanf:"title"`
	BaseURL    string      `yaml:"base_url" koanf:"base_url"`
	Resources  Resources   `yaml:"resources" koanf:"resources"`
	Serve      ServeConfig `yaml:"serve" koanf:"serve"`
	Log        LogConfig   `yaml:"log" koanf:"log"`
}

// Resources is the fixed enumeration of data files to load. Order matters:
// it drives column and row order on the rendered site.
type Resources struct {
	IDEs       []string `yaml:"ides" koanf:"ides"`
	AIClients  []string `yaml:"ai_clients" koanf:"ai_clients"`
	Features   []string `yaml:"features" koanf:"features"`
	Transports []string `yaml:"transports" koanf:"transports"`
	Changelog  bool     `yaml:"changelog" koanf:"changelog"`
}

// ServeConfig holds preview-server settings.
type ServeConfig struct {
	Port  int  `yaml:"port" koanf:"port"`
	Watch bool `yaml:"watch" koanf:"watch"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}
