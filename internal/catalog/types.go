package catalog

// NativeClientID is the AI client identifier that stands for an
// interface's built-in assistant rather than a plugin.
const NativeClientID = "native"

// Kind tells the two feature collections apart. IDs only have to be unique
// within one kind.
type Kind string

const (
	KindFeature   Kind = "feature"
	KindTransport Kind = "transport"
)

// ParseKind accepts "feature" or "transport" and their plurals. The empty
// string parses as "" with ok set, meaning "either".
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "":
		return "", true
	case "feature", "features":
		return KindFeature, true
	case "transport", "transports":
		return KindTransport, true
	}
	return "", false
}

// Category classifies a developer interface.
type Category string

const (
	CategoryIDE     Category = "ide"
	CategoryDesktop Category = "desktop"
	CategoryCLI     Category = "cli"
	CategoryWeb     Category = "web"
	CategoryOther   Category = "other"
)

// Known reports whether c is one of the recognized categories.
func (c Category) Known() bool {
	switch c {
	case CategoryIDE, CategoryDesktop, CategoryCLI, CategoryWeb, CategoryOther:
		return true
	}
	return false
}

// DeveloperInterface is an editor, CLI or desktop application that can host
// MCP integration ("IDE" in the data files).
type DeveloperInterface struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	Vendor              string            `json:"vendor,omitempty"`
	Category            Category          `json:"category,omitempty"`
	Website             string            `json:"website,omitempty"`
	MCPDocs             string            `json:"mcp_docs,omitempty"`
	ConfigPaths         []string          `json:"config_paths,omitempty"`
	MinMCPVersion       string            `json:"min_mcp_version,omitempty"`
	CompatibleAIClients []string          `json:"compatible_ai_clients"`
	Notes               map[string]string `json:"notes,omitempty"`
}

// DisplayName returns the interface name, or its ID when the name is blank.
func (d *DeveloperInterface) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}

// AIClient is an assistant or plugin that speaks MCP and plugs into a
// developer interface.
type AIClient struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Vendor         string            `json:"vendor,omitempty"`
	Website        string            `json:"website,omitempty"`
	Docs           string            `json:"docs,omitempty"`
	CompatibleIDEs []string          `json:"compatible_ides,omitempty"`
	NativeNames    map[string]string `json:"native_names,omitempty"`
	Notes          map[string]string `json:"notes,omitempty"`
}

// DisplayName returns the client name, or its ID when the name is blank.
func (c *AIClient) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

// NativeName returns the name the native assistant goes by inside the
// given interface, if the data records one.
func (c *AIClient) NativeName(ideID string) string {
	if c == nil || c.NativeNames == nil {
		return ""
	}
	return c.NativeNames[ideID]
}

// ChangelogType tags a changelog entry.
type ChangelogType string

const (
	ChangelogSpec   ChangelogType = "spec"
	ChangelogClient ChangelogType = "client"
)

// Link is an outbound reference attached to a changelog entry.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ChangelogEntry is one dated item in the changelog feed.
type ChangelogEntry struct {
	Date        string        `json:"date"`
	Type        ChangelogType `json:"type"`
	Client      string        `json:"client,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Links       []Link        `json:"links,omitempty"`
}

// Changelog is the document shape of changelog.json.
type Changelog struct {
	Entries []ChangelogEntry `json:"entries"`
}

// Combination pairs a developer interface with one AI client it declares
// compatibility with. Combinations are derived on every load and never
// stored.
type Combination struct {
	Key    ComboKey
	IDE    *DeveloperInterface
	Client *AIClient
}
