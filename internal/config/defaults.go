package config

// DefaultFile is the config file looked up when --config is not given.
const DefaultFile = ".mcpmatrix.yml"

// DefaultIDEs lists the developer interfaces shipped with the reference data.
var DefaultIDEs = []string{
	"vscode",
	"cursor",
	"windsurf",
	"jetbrains",
	"visual-studio",
	"zed",
	"claude-desktop",
	"claude-code",
	"neovim",
}

// DefaultAIClients lists the AI clients shipped with the reference data.
var DefaultAIClients = []string{
	"native",
	"copilot",
	"cline",
	"roo-code",
	"continue",
	"kilo-code",
	"augment",
	"codeium",
}

// DefaultFeatures lists the MCP capabilities tracked by default.
var DefaultFeatures = []string{
	"tools",
	"prompts",
	"resources",
	"sampling",
	"roots",
	"elicitation",
}

// DefaultTransports lists the MCP transports tracked by default.
var DefaultTransports = []string{
	"stdio",
	"sse",
	"streamable-http",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DataSource: "data",
		OutputDir:  "_site",
		Title:      "MCP Client Compatibility",
		Resources: Resources{
			IDEs:       append([]string(nil), DefaultIDEs...),
			AIClients:  append([]string(nil), DefaultAIClients...),
			Features:   append([]string(nil), DefaultFeatures...),
			Transports: append([]string(nil), DefaultTransports...),
			Changelog:  true,
		},
		Serve: ServeConfig{
			Port:  8080,
			Watch: false,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
