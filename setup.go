package main

import (
	"fmt"

	"github.com/milk9111/stomper/entity"
	"github.com/milk9111/stomper/levels"
	"github.com/milk9111/stomper/prefabs"
	"github.com/milk9111/stomper/script"
	"github.com/milk9111/stomper/sim"
)

type entitySpecs struct {
	player   *prefabs.EntitySpec
	enemy    *prefabs.EntitySpec
	platform *prefabs.EntitySpec
}

func loadEntitySpecs() (entitySpecs, error) {
	var specs entitySpecs
	var err error
	if specs.player, err = prefabs.LoadEntitySpec("player.yaml"); err != nil {
		return entitySpecs{}, err
	}
	if specs.enemy, err = prefabs.LoadEntitySpec("enemy.yaml"); err != nil {
		return entitySpecs{}, err
	}
	if specs.platform, err = prefabs.LoadEntitySpec("platform.yaml"); err != nil {
		return entitySpecs{}, err
	}
	return specs, nil
}

// buildWorld spawns the level's entities and gives every enemy a brain. It
// returns the script name used by each enemy, by roster index.
func buildWorld(lvl *levels.Level, specs entitySpecs, lib *script.Library) (*sim.World, []string, error) {
	m, err := lvl.Tilemap()
	if err != nil {
		return nil, nil, fmt.Errorf("level %s: %w", lvl.Name, err)
	}

	player, err := entity.New(specs.player.Config(entity.Player, lvl.Player.Vector()))
	if err != nil {
		return nil, nil, fmt.Errorf("spawn player: %w", err)
	}

	enemies := make([]*entity.Entity, 0, len(lvl.Enemies))
	scripts := make([]string, 0, len(lvl.Enemies))
	for i, s := range lvl.Enemies {
		e, err := entity.New(specs.enemy.Config(entity.Enemy, s.Vector()))
		if err != nil {
			return nil, nil, fmt.Errorf("spawn enemy %d: %w", i, err)
		}
		enemies = append(enemies, e)

		name := s.Script
		if name == "" {
			name = specs.enemy.Script
		}
		if name == "" {
			name = script.DefaultBrain
		}
		scripts = append(scripts, name)
	}

	platforms := make([]*entity.Entity, 0, len(lvl.Platforms))
	for i, p := range lvl.Platforms {
		e, err := entity.New(specs.platform.Config(entity.Platform, p.Vector()))
		if err != nil {
			return nil, nil, fmt.Errorf("spawn platform %d: %w", i, err)
		}
		platforms = append(platforms, e)
	}

	enemyRoster, err := entity.NewRoster(entity.Enemy, enemies...)
	if err != nil {
		return nil, nil, err
	}
	platformRoster, err := entity.NewRoster(entity.Platform, platforms...)
	if err != nil {
		return nil, nil, err
	}

	world, err := sim.NewWorld(player, enemyRoster, platformRoster, m)
	if err != nil {
		return nil, nil, err
	}
	for i, name := range scripts {
		brain, err := lib.NewBrain(name)
		if err != nil {
			return nil, nil, fmt.Errorf("enemy %d brain: %w", i, err)
		}
		if err := world.SetBrain(i, brain); err != nil {
			return nil, nil, err
		}
	}
	return world, scripts, nil
}
