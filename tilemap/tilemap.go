package tilemap

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stomper/common"
)

var (
	ErrDataSize      = errors.New("tilemap: data size does not match dimensions")
	ErrDimensions    = errors.New("tilemap: invalid dimensions")
	ErrTilesetLayout = errors.New("tilemap: invalid tileset layout")
)

// Tilemap is an immutable grid of tile IDs addressed row-major from the
// top-left cell. ID 0 is empty, any positive ID is solid.
type Tilemap struct {
	width    int
	height   int
	tiles    []int
	tileSize float64
	columns  int
	rows     int
}

// New copies data into a Tilemap. columns/rows describe the tileset atlas.
func New(width, height int, data []int, tileSize float64, columns, rows int) (*Tilemap, error) {
	if width <= 0 || height <= 0 || tileSize <= 0 {
		return nil, fmt.Errorf("%w: %dx%d tile size %g", ErrDimensions, width, height, tileSize)
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("%w: got %d tiles, want %d", ErrDataSize, len(data), width*height)
	}
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrTilesetLayout, columns, rows)
	}
	for i, id := range data {
		if id < 0 {
			return nil, fmt.Errorf("tilemap: negative tile id %d at index %d", id, i)
		}
	}

	tiles := make([]int, len(data))
	copy(tiles, data)
	return &Tilemap{
		width:    width,
		height:   height,
		tiles:    tiles,
		tileSize: tileSize,
		columns:  columns,
		rows:     rows,
	}, nil
}

func (m *Tilemap) Width() int        { return m.width }
func (m *Tilemap) Height() int       { return m.height }
func (m *Tilemap) TileSize() float64 { return m.tileSize }

// Size returns the map extents in world units.
func (m *Tilemap) Size() (float64, float64) {
	return float64(m.width) * m.tileSize, float64(m.height) * m.tileSize
}

// Cell converts a world position into grid coordinates. The result may be
// outside the grid.
func (m *Tilemap) Cell(pos cp.Vector) (int, int) {
	col := int(math.Floor(pos.X / m.tileSize))
	row := int(math.Floor(pos.Y / m.tileSize))
	return col, row
}

// TileAt returns the tile ID at col,row. ok is false outside the grid.
func (m *Tilemap) TileAt(col, row int) (int, bool) {
	if m == nil || col < 0 || row < 0 || col >= m.width || row >= m.height {
		return 0, false
	}
	return m.tiles[row*m.width+col], true
}

// IsSolid reports whether the tile under pos is non-empty. Positions outside
// the grid are never solid.
func (m *Tilemap) IsSolid(pos cp.Vector) bool {
	if m == nil {
		return false
	}
	id, ok := m.TileAt(m.Cell(pos))
	return ok && id != 0
}

// Bounds returns the world-space box of a cell.
func (m *Tilemap) Bounds(col, row int) common.Rect {
	return common.Rect{
		X:      float64(col) * m.tileSize,
		Y:      float64(row) * m.tileSize,
		Width:  m.tileSize,
		Height: m.tileSize,
	}
}
