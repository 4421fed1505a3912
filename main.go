package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "draw collision boxes and log the player position every step")
	watch := flag.Bool("watch", false, "hot reload prefabs/*.yaml tuning and prefabs/scripts/*.tengo brains")
	mute := flag.Bool("mute", false, "load audio but never play it")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "level1.json", "embedded level file in levels/")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(Options{
		Level: *levelName,
		Debug: *debug,
		Watch: *watch,
		Mute:  *mute,
	})
	if err != nil {
		log.Fatalf("stomper: %v", err)
	}

	w, h := game.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	err = ebiten.RunGame(game)
	if cerr := game.Close(); cerr != nil {
		log.Printf("stomper: close: %v", cerr)
	}
	if err != nil {
		log.Fatal(err)
	}
}
