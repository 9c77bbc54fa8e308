package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	yamlv3 "gopkg.in/yaml.v3"
)

// overlayFile is the union document shape accepted from a catalog directory.
// A single file may carry any combination of the three tables.
type overlayFile struct {
	Distros             []Distro             `yaml:"distros"`
	DesktopEnvironments []DesktopEnvironment `yaml:"desktopEnvironments"`
	Games               []Game               `yaml:"games"`
}

// LoadDir loads the embedded default catalog and merges every *.yaml/*.yml
// file found under dir (recursively) on top of it. Entries with an id
// already present replace the existing entry; new ids append in file order.
// Files are visited in sorted path order so merging is deterministic.
func LoadDir(dir string) (*Catalog, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return c, nil
	}

	fsys := os.DirFS(dir)
	var paths []string
	for _, pattern := range []string{"**/*.yaml", "**/*.yml"} {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("globbing catalog dir %s: %w", dir, err)
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	for _, p := range paths {
		raw, err := os.ReadFile(filepath.Join(dir, p))
		if err != nil {
			return nil, fmt.Errorf("reading catalog file %s: %w", p, err)
		}
		var of overlayFile
		if err := yamlv3.Unmarshal(raw, &of); err != nil {
			return nil, fmt.Errorf("decoding catalog file %s: %w", p, err)
		}
		c.merge(of)
	}

	c.reindex()
	return c, nil
}

// merge replaces or appends by id. Lookups scan the slices directly because
// appends invalidate the index maps; reindex runs once after all merges.
func (c *Catalog) merge(of overlayFile) {
	for _, d := range of.Distros {
		if i := distroIndex(c.Distros, d.ID); i >= 0 {
			c.Distros[i] = d
		} else {
			c.Distros = append(c.Distros, d)
		}
	}
	for _, de := range of.DesktopEnvironments {
		if i := deIndex(c.DesktopEnvironments, de.ID); i >= 0 {
			c.DesktopEnvironments[i] = de
		} else {
			c.DesktopEnvironments = append(c.DesktopEnvironments, de)
		}
	}
	for _, g := range of.Games {
		if i := gameIndex(c.Games, g.ID); i >= 0 {
			c.Games[i] = g
		} else {
			c.Games = append(c.Games, g)
		}
	}
}

func distroIndex(s []Distro, id string) int {
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}

func deIndex(s []DesktopEnvironment, id string) int {
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}

func gameIndex(s []Game, id string) int {
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}
