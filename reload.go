package main

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/milk9111/stomper/entity"
	"github.com/milk9111/stomper/prefabs"
)

// applyReloads handles files reported by the watcher since the last frame.
// Entity tuning and brains change in place; textures, audio and the level are
// fixed for the run.
func (g *Game) applyReloads() {
	select {
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			log.Printf("stomper: watch: %v", err)
		}
	default:
	}

	for _, name := range g.watcher.Poll() {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".tengo":
			g.reloadScript(strings.TrimSuffix(name, filepath.Ext(name)))
		case ".yaml", ".yml":
			g.reloadSpec(name)
		}
	}
}

func (g *Game) reloadSpec(name string) {
	var (
		dst  **prefabs.EntitySpec
		kind entity.Kind
	)
	switch name {
	case "player.yaml":
		dst, kind = &g.specs.player, entity.Player
	case "enemy.yaml":
		dst, kind = &g.specs.enemy, entity.Enemy
	case "platform.yaml":
		log.Printf("stomper: %s changed; platform extents apply on restart", name)
		return
	default:
		log.Printf("stomper: %s changed; restart to apply", name)
		return
	}

	spec, err := prefabs.LoadEntitySpec(name)
	if err != nil {
		log.Printf("stomper: reload %s: %v", name, err)
		return
	}
	*dst = spec

	tune := func(e *entity.Entity) {
		e.Tune(spec.Speed, spec.JumpPower, spec.Acceleration.Vector())
	}
	if kind == entity.Player {
		tune(g.world.Player())
	} else {
		for _, e := range g.world.Enemies().All() {
			tune(e)
		}
	}
	log.Printf("stomper: reloaded %s", name)
}

func (g *Game) reloadScript(name string) {
	if err := g.brains.Compile(name); err != nil {
		log.Printf("stomper: reload script %s: %v", name, err)
		return
	}
	n := 0
	for i, s := range g.scripts {
		if s != name {
			continue
		}
		brain, err := g.brains.NewBrain(name)
		if err != nil {
			log.Printf("stomper: reload script %s: %v", name, err)
			return
		}
		if err := g.world.SetBrain(i, brain); err != nil {
			log.Printf("stomper: reload script %s: %v", name, err)
			return
		}
		n++
	}
	log.Printf("stomper: reloaded script %s for %d enemies", name, n)
}
