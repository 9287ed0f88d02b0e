package loader

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"

	"github.com/ziadkadry99/mcp-matrix/internal/config"
)

// FindOrphans lists JSON documents present in fsys that the manifest does
// not name. It only inspects the four resource directories.
func FindOrphans(fsys fs.FS, m Manifest) ([]string, error) {
	known := make(map[string]bool)
	for _, r := range m.Resources() {
		known[r.Path] = true
	}

	var orphans []string
	dirs := []string{
		config.ResourceDirs.IDEs,
		config.ResourceDirs.AIClients,
		config.ResourceDirs.Features,
		config.ResourceDirs.Transports,
	}
	for _, dir := range dirs {
		matches, err := doublestar.Glob(fsys, dir+"/**/*.json")
		if err != nil {
			return nil, errors.Wrapf(err, "globbing %s", dir)
		}
		for _, match := range matches {
			if known[match] || strings.HasPrefix(path.Base(match), ".") {
				continue
			}
			orphans = append(orphans, match)
		}
	}
	sort.Strings(orphans)
	return orphans, nil
}
