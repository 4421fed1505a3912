package levels

import (
	"strings"
	"testing"
)

func TestLoadLevel1(t *testing.T) {
	lvl, err := LoadLevelFromFS("level1.json")
	if err != nil {
		t.Fatalf("LoadLevelFromFS: %v", err)
	}
	if lvl.Width != 24 || lvl.Height != 7 || len(lvl.Tiles) != 24*7 {
		t.Fatalf("unexpected dimensions %dx%d with %d tiles", lvl.Width, lvl.Height, len(lvl.Tiles))
	}
	if len(lvl.Enemies) != 3 {
		t.Fatalf("enemies = %d, want 3", len(lvl.Enemies))
	}

	m, err := lvl.Tilemap()
	if err != nil {
		t.Fatalf("Tilemap: %v", err)
	}
	// The pit in the bottom row spans columns 8 through 15.
	for col := 0; col < lvl.Width; col++ {
		id, ok := m.TileAt(col, lvl.Height-1)
		if !ok {
			t.Fatalf("bottom row col %d out of range", col)
		}
		pit := col >= 8 && col <= 15
		if pit != (id == 0) {
			t.Fatalf("bottom row col %d has id %d", col, id)
		}
	}
}

func TestNames(t *testing.T) {
	names, err := Names()
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	found := false
	for _, n := range names {
		found = found || n == "level1.json"
	}
	if !found {
		t.Fatalf("level1.json not embedded: %v", names)
	}
}

func validLevel() Level {
	return Level{
		Name:     "tiny",
		Width:    3,
		Height:   2,
		TileSize: 1,
		Tileset:  Tileset{Image: "images/tileset_1.png", Columns: 3, Rows: 1},
		Tiles:    []int{0, 0, 0, 1, 2, 1},
		Player:   Point{X: 0.5, Y: 0.5},
		Enemies:  []Spawn{{Point: Point{X: 2.5, Y: 0.5}}},
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(l *Level)
		wantErr string
	}{
		{"valid", func(l *Level) {}, ""},
		{"short data", func(l *Level) { l.Tiles = l.Tiles[:5] }, "data size"},
		{"unknown tile", func(l *Level) { l.Tiles[3] = 7 }, "beyond"},
		{"no tileset image", func(l *Level) { l.Tileset.Image = "" }, "tileset image"},
		{"player outside", func(l *Level) { l.Player.X = 3 }, "player spawn"},
		{"player in wall", func(l *Level) { l.Player = Point{X: 0.5, Y: 1.5} }, "solid"},
		{"no enemies", func(l *Level) { l.Enemies = nil }, "at least one enemy"},
		{"enemy below map", func(l *Level) { l.Enemies[0].Y = 2.5 }, "enemy 0"},
		{"platform outside", func(l *Level) { l.Platforms = []Point{{X: -1, Y: 0}} }, "platform 0"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lvl := validLevel()
			lvl.Tiles = append([]int(nil), lvl.Tiles...)
			lvl.Enemies = append([]Spawn(nil), lvl.Enemies...)
			c.mutate(&lvl)

			err := lvl.Validate()
			if c.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("Validate err = %v, want %q", err, c.wantErr)
			}
		})
	}
}
