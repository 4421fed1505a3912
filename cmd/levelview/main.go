package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/stomper/levels"
	"github.com/milk9111/stomper/prefabs"
	"github.com/milk9111/stomper/script"
	"github.com/milk9111/stomper/tilemap"
)

func main() {
	level := flag.String("level", "level1.json", "level file to check")
	all := flag.Bool("all", false, "check every bundled level")
	quiet := flag.Bool("q", false, "skip the map dump")
	flag.Parse()

	if _, err := prefabs.LoadGameSpec(); err != nil {
		log.Fatalf("game spec: %v", err)
	}
	for _, name := range []string{"player.yaml", "enemy.yaml", "platform.yaml"} {
		if _, err := prefabs.LoadEntitySpec(name); err != nil {
			log.Fatalf("entity spec %s: %v", name, err)
		}
	}

	names := []string{*level}
	if *all {
		var err error
		if names, err = levels.Names(); err != nil {
			log.Fatalf("list levels: %v", err)
		}
	}

	lib := script.NewLibrary(nil)
	failed := false
	for _, name := range names {
		if err := check(name, lib, *quiet); err != nil {
			log.Printf("%s: %v", name, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func check(name string, lib *script.Library, quiet bool) error {
	lvl, err := levels.LoadLevelFromFS(name)
	if err != nil {
		return err
	}
	for i, s := range lvl.Enemies {
		if s.Script == "" || lib.Has(s.Script) {
			continue
		}
		if err := lib.Compile(s.Script); err != nil {
			return fmt.Errorf("enemy %d: %w", i, err)
		}
	}
	m, err := lvl.Tilemap()
	if err != nil {
		return err
	}

	fmt.Printf("%s: %dx%d, %d enemies, %d platforms\n", lvl.Name, m.Width(), m.Height(), len(lvl.Enemies), len(lvl.Platforms))
	if !quiet {
		for _, line := range asciiMap(lvl, m) {
			fmt.Println(line)
		}
	}
	return nil
}

// asciiMap draws one rune per cell: '#' solid, 'P' player, 'E' enemy, '=' platform.
func asciiMap(lvl *levels.Level, m *tilemap.Tilemap) []string {
	grid := make([][]byte, m.Height())
	for row := range grid {
		grid[row] = make([]byte, m.Width())
		for col := range grid[row] {
			grid[row][col] = '.'
			if id, ok := m.TileAt(col, row); ok && id != 0 {
				grid[row][col] = '#'
			}
		}
	}

	mark := func(p levels.Point, c byte) {
		col, row := m.Cell(p.Vector())
		if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
			return
		}
		grid[row][col] = c
	}
	for _, p := range lvl.Platforms {
		mark(p, '=')
	}
	for _, s := range lvl.Enemies {
		mark(s.Point, 'E')
	}
	mark(lvl.Player, 'P')

	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = string(row)
	}
	return lines
}
