package config

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
)

// ResourceDirs maps each resource kind to its directory inside the data source.
var ResourceDirs = struct {
	IDEs, AIClients, Features, Transports string
}{
	IDEs:       "ides",
	AIClients:  "ai-clients",
	Features:   "features",
	Transports: "transports",
}

// ChangelogFile is the changelog document inside the data source.
const ChangelogFile = "changelog.json"

// DiscoverResources builds a manifest from the JSON files present in fsys.
// IDs within each kind come back sorted, except that the native client is
// moved to the front of the client list.
func DiscoverResources(fsys fs.FS) (Resources, error) {
	var res Resources
	var err error

	if res.IDEs, err = globIDs(fsys, ResourceDirs.IDEs); err != nil {
		return res, err
	}
	if res.AIClients, err = globIDs(fsys, ResourceDirs.AIClients); err != nil {
		return res, err
	}
	if res.Features, err = globIDs(fsys, ResourceDirs.Features); err != nil {
		return res, err
	}
	if res.Transports, err = globIDs(fsys, ResourceDirs.Transports); err != nil {
		return res, err
	}
	if _, statErr := fs.Stat(fsys, ChangelogFile); statErr == nil {
		res.Changelog = true
	}

	for i, id := range res.AIClients {
		if id == "native" && i > 0 {
			copy(res.AIClients[1:i+1], res.AIClients[:i])
			res.AIClients[0] = "native"
			break
		}
	}
	return res, nil
}

func globIDs(fsys fs.FS, dir string) ([]string, error) {
	matches, err := doublestar.Glob(fsys, dir+"/*.json")
	if err != nil {
		return nil, errors.Wrapf(err, "globbing %s", dir)
	}
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, strings.TrimSuffix(path.Base(m), ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}
