package tilemap

import "github.com/milk9111/stomper/common"

// UV is a normalized sub-rectangle of a texture atlas.
type UV struct {
	U, V float64
	W, H float64
}

// Quad is one textured tile ready to be drawn.
type Quad struct {
	Col, Row int
	ID       int
	World    common.Rect
	UV       UV
}

// TileUV maps a tile ID onto the tileset atlas.
func (m *Tilemap) TileUV(id int) UV {
	w := 1.0 / float64(m.columns)
	h := 1.0 / float64(m.rows)
	return UV{
		U: float64(id%m.columns) * w,
		V: float64(id/m.columns) * h,
		W: w,
		H: h,
	}
}

// Quads returns one quad per non-empty tile, in row-major order.
func (m *Tilemap) Quads() []Quad {
	if m == nil {
		return nil
	}
	out := make([]Quad, 0, len(m.tiles))
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			id := m.tiles[row*m.width+col]
			if id == 0 {
				continue
			}
			out = append(out, Quad{
				Col:   col,
				Row:   row,
				ID:    id,
				World: m.Bounds(col, row),
				UV:    m.TileUV(id),
			})
		}
	}
	return out
}
