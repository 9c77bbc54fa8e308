package catalog

import (
	"embed"
	"fmt"

	yamlv3 "gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Catalog aggregates the three reference tables. Construct with New so the
// id indexes are in place; the engine receives a *Catalog explicitly rather
// than reading package-level state.
type Catalog struct {
	Distros             []Distro
	DesktopEnvironments []DesktopEnvironment
	Games               []Game

	distroByID map[string]*Distro
	deByID     map[string]*DesktopEnvironment
	gameByID   map[string]*Game
}

// New builds a Catalog from the given tables and indexes them by id.
func New(distros []Distro, des []DesktopEnvironment, games []Game) *Catalog {
	c := &Catalog{
		Distros:             distros,
		DesktopEnvironments: des,
		Games:               games,
	}
	c.reindex()
	return c
}

func (c *Catalog) reindex() {
	c.distroByID = make(map[string]*Distro, len(c.Distros))
	for i := range c.Distros {
		c.distroByID[c.Distros[i].ID] = &c.Distros[i]
	}
	c.deByID = make(map[string]*DesktopEnvironment, len(c.DesktopEnvironments))
	for i := range c.DesktopEnvironments {
		c.deByID[c.DesktopEnvironments[i].ID] = &c.DesktopEnvironments[i]
	}
	c.gameByID = make(map[string]*Game, len(c.Games))
	for i := range c.Games {
		c.gameByID[c.Games[i].ID] = &c.Games[i]
	}
}

// DistroByID returns the distro with the given id, or nil.
func (c *Catalog) DistroByID(id string) *Distro {
	return c.distroByID[id]
}

// DEByID returns the desktop environment with the given id, or nil.
func (c *Catalog) DEByID(id string) *DesktopEnvironment {
	return c.deByID[id]
}

// GameByID returns the game with the given id, or nil.
func (c *Catalog) GameByID(id string) *Game {
	return c.gameByID[id]
}

// ProblematicGames returns the catalog games from the selection that are
// known to be broken, anti-cheat-blocked, or only partially working.
// Unknown ids are skipped.
func (c *Catalog) ProblematicGames(gameIDs []string) []Game {
	var out []Game
	for _, id := range gameIDs {
		if g := c.gameByID[id]; g != nil && g.Problematic() {
			out = append(out, *g)
		}
	}
	return out
}

// GamesByStatus returns all games with the given compatibility status.
func (c *Catalog) GamesByStatus(status string) []Game {
	var out []Game
	for _, g := range c.Games {
		if g.Status == status {
			out = append(out, g)
		}
	}
	return out
}

// PopularGames returns the games flagged as popular.
func (c *Catalog) PopularGames() []Game {
	var out []Game
	for _, g := range c.Games {
		if g.Popular {
			out = append(out, g)
		}
	}
	return out
}

// distroFile mirrors the on-disk layout of a distro catalog document.
type distroFile struct {
	Distros []Distro `yaml:"distros"`
}

type deFile struct {
	DesktopEnvironments []DesktopEnvironment `yaml:"desktopEnvironments"`
}

type gameFile struct {
	Games []Game `yaml:"games"`
}

// Default loads the embedded catalog data shipped with the binary.
func Default() (*Catalog, error) {
	var df distroFile
	if err := decodeEmbedded("data/distros.yaml", &df); err != nil {
		return nil, err
	}
	var ef deFile
	if err := decodeEmbedded("data/desktops.yaml", &ef); err != nil {
		return nil, err
	}
	var gf gameFile
	if err := decodeEmbedded("data/games.yaml", &gf); err != nil {
		return nil, err
	}
	return New(df.Distros, ef.DesktopEnvironments, gf.Games), nil
}

func decodeEmbedded(path string, v any) error {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading embedded catalog %s: %w", path, err)
	}
	if err := yamlv3.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decoding embedded catalog %s: %w", path, err)
	}
	return nil
}
