package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stomper/tilemap"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is a single playable map with its spawn points. Positions are entity
// centres in world units, y down.
type Level struct {
	Name      string  `json:"name"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	TileSize  float64 `json:"tile_size"`
	Tileset   Tileset `json:"tileset"`
	Tiles     []int   `json:"tiles"`
	Player    Point   `json:"player"`
	Enemies   []Spawn `json:"enemies"`
	Platforms []Point `json:"platforms,omitempty"`
}

type Tileset struct {
	Image   string `json:"image"`
	Columns int    `json:"columns"`
	Rows    int    `json:"rows"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Vector() cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

// Spawn places an enemy. Script overrides the enemy prefab's brain.
type Spawn struct {
	Point
	Script string `json:"script,omitempty"`
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return &lvl, nil
}

// Names lists the embedded level files.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Tilemap builds the collision and render grid.
func (l *Level) Tilemap() (*tilemap.Tilemap, error) {
	return tilemap.New(l.Width, l.Height, l.Tiles, l.TileSize, l.Tileset.Columns, l.Tileset.Rows)
}

// Validate checks the grid and that every spawn lies within the map's
// horizontal extent and no lower than its bottom row.
func (l *Level) Validate() error {
	m, err := l.Tilemap()
	if err != nil {
		return err
	}
	if l.Tileset.Image == "" {
		return errors.New("tileset image is required")
	}
	for i, id := range l.Tiles {
		if id >= l.Tileset.Columns*l.Tileset.Rows {
			return fmt.Errorf("tile %d uses id %d beyond the %dx%d tileset", i, id, l.Tileset.Columns, l.Tileset.Rows)
		}
	}

	w, h := m.Size()
	inside := func(p Point) bool {
		return p.X >= 0 && p.X < w && p.Y < h
	}
	if !inside(l.Player) {
		return fmt.Errorf("player spawn (%g, %g) outside the map", l.Player.X, l.Player.Y)
	}
	if m.IsSolid(l.Player.Vector()) {
		return fmt.Errorf("player spawn (%g, %g) is inside a solid tile", l.Player.X, l.Player.Y)
	}
	if len(l.Enemies) == 0 {
		return errors.New("level needs at least one enemy")
	}
	for i, e := range l.Enemies {
		if !inside(e.Point) {
			return fmt.Errorf("enemy %d spawn (%g, %g) outside the map", i, e.X, e.Y)
		}
		if m.IsSolid(e.Vector()) {
			return fmt.Errorf("enemy %d spawn (%g, %g) is inside a solid tile", i, e.X, e.Y)
		}
	}
	for i, p := range l.Platforms {
		if !inside(p) {
			return fmt.Errorf("platform %d (%g, %g) outside the map", i, p.X, p.Y)
		}
	}
	return nil
}
