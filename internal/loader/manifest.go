package loader

import (
	"path"

	"github.com/ziadkadry99/mcp-matrix/internal/config"
)

// Kind identifies which collection a resource belongs to.
type Kind string

const (
	KindIDE       Kind = "ide"
	KindClient    Kind = "ai-client"
	KindFeature   Kind = "feature"
	KindTransport Kind = "transport"
	KindChangelog Kind = "changelog"
)

// Manifest is the fixed enumeration of resources to load.
type Manifest struct {
	IDEs       []string
	Clients    []string
	Features   []string
	Transports []string
	Changelog  bool
}

// ManifestFromConfig copies the resource lists out of the configuration.
func ManifestFromConfig(res config.Resources) Manifest {
	return Manifest{
		IDEs:       res.IDEs,
		Clients:    res.AIClients,
		Features:   res.Features,
		Transports: res.Transports,
		Changelog:  res.Changelog,
	}
}

// Resource is one document to fetch.
type Resource struct {
	Kind  Kind
	ID    string
	Path  string
	Index int // position within its kind, used to restore manifest order
}

// Resources expands the manifest into the list of documents to fetch, in
// manifest order.
func (m Manifest) Resources() []Resource {
	var out []Resource
	add := func(kind Kind, dir string, ids []string) {
		for i, id := range ids {
			out = append(out, Resource{Kind: kind, ID: id, Path: path.Join(dir, id+".json"), Index: i})
		}
	}
	add(KindIDE, config.ResourceDirs.IDEs, m.IDEs)
	add(KindClient, config.ResourceDirs.AIClients, m.Clients)
	add(KindFeature, config.ResourceDirs.Features, m.Features)
	add(KindTransport, config.ResourceDirs.Transports, m.Transports)
	if m.Changelog {
		out = append(out, Resource{Kind: KindChangelog, ID: "changelog", Path: config.ChangelogFile})
	}
	return out
}
