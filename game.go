package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/stomper/assets"
	"github.com/milk9111/stomper/input"
	"github.com/milk9111/stomper/levels"
	"github.com/milk9111/stomper/prefabs"
	"github.com/milk9111/stomper/render"
	"github.com/milk9111/stomper/script"
	"github.com/milk9111/stomper/sim"
	"github.com/milk9111/stomper/sound"
	"github.com/milk9111/stomper/view"
	"golang.org/x/image/colornames"
)

const musicFadeFrames = 45

type Options struct {
	Level string
	Debug bool
	Watch bool
	Mute  bool
}

// Game wires the simulation, camera, renderer, audio and hot reload into an
// ebiten.Game. Everything runs on Ebitengine's update goroutine.
type Game struct {
	spec  *prefabs.GameSpec
	specs entitySpecs
	level *levels.Level

	world   *sim.World
	scripts []string
	clock   *sim.Clock
	cam     *view.Camera
	render  *render.Renderer

	mixer    *sound.Mixer
	music    *sound.Track
	jumpSFX  *sound.Effect
	stompSFX *sound.Effect

	brains  *script.Library
	watcher *prefabs.Watcher
	debug   bool

	closeOnce sync.Once
	closeErr  error
}

func NewGame(opts Options) (*Game, error) {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, err
	}
	specs, err := loadEntitySpecs()
	if err != nil {
		return nil, err
	}
	lvl, err := levels.LoadLevelFromFS(opts.Level)
	if err != nil {
		return nil, err
	}

	brains := script.NewLibrary(prefabs.LoadScript)
	world, scripts, err := buildWorld(lvl, specs, brains)
	if err != nil {
		return nil, err
	}
	world.FallMargin = spec.FallMargin
	world.Debug = opts.Debug

	sheets, err := loadSheets(spec, lvl, specs)
	if err != nil {
		return nil, err
	}

	cam := view.New(spec.Window.Width, spec.Window.Height, spec.PixelsPerUnit, spec.CameraY)
	cam.Follow(world.Player().Position().X)

	g := &Game{
		spec:    spec,
		specs:   specs,
		level:   lvl,
		world:   world,
		scripts: scripts,
		clock:   sim.NewClock(spec.FixedStep),
		cam:     cam,
		render: render.New(cam, sheets, render.Options{
			Background: spec.Background.Color.ColorOr(colornames.Cornflowerblue),
			Banner: render.BannerOptions{
				Offset:     cp.Vector{X: spec.Banner.OffsetX, Y: spec.Banner.OffsetY},
				Scale:      spec.Banner.Scale,
				PopSeconds: spec.Banner.PopSeconds,
				Color:      spec.Banner.Color.ColorOr(color.White),
			},
			HUD: render.HUDOptions{
				Color:      spec.HUD.Color.ColorOr(color.White),
				Background: spec.HUD.Background.ColorOr(color.NRGBA{A: 0x88}),
			},
			Debug: opts.Debug,
		}),
		brains: brains,
		debug:  opts.Debug,
	}

	if err := g.loadAudio(opts.Mute); err != nil {
		_ = g.Close()
		return nil, err
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("stomper: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	log.Printf("stomper: loaded %s (%dx%d, %d enemies, %d platforms)",
		lvl.Name, lvl.Width, lvl.Height, world.Enemies().Len(), world.Platforms().Len())
	return g, nil
}

func (g *Game) loadAudio(mute bool) error {
	a := g.spec.Audio
	g.mixer = sound.NewMixer(a.SampleRate, assets.LoadFile)
	g.mixer.SetMuted(mute)

	var err error
	if g.music, err = g.mixer.LoadMusic(a.Music.File, a.Music.Volume); err != nil {
		return err
	}
	if g.jumpSFX, err = g.mixer.LoadSoundEffect(a.Jump.File, a.Jump.Volume); err != nil {
		return err
	}
	if g.stompSFX, err = g.mixer.LoadSoundEffect(a.Stomp.File, a.Stomp.Volume); err != nil {
		return err
	}
	return g.mixer.PlayMusic(g.music, true)
}

func loadSheets(spec *prefabs.GameSpec, lvl *levels.Level, specs entitySpecs) (render.Sheets, error) {
	var sheets render.Sheets
	load := func(dst **ebiten.Image, path string) error {
		if path == "" {
			return nil
		}
		img, err := assets.LoadImage(path)
		if err != nil {
			return fmt.Errorf("load texture %q: %w", path, err)
		}
		*dst = img
		return nil
	}
	for _, l := range []struct {
		dst  **ebiten.Image
		path string
	}{
		{&sheets.Background, spec.Background.Image},
		{&sheets.Tileset, lvl.Tileset.Image},
		{&sheets.Player, specs.player.Sheet},
		{&sheets.Enemy, specs.enemy.Sheet},
		{&sheets.Platform, specs.platform.Sheet},
	} {
		if err := load(l.dst, l.path); err != nil {
			return render.Sheets{}, err
		}
	}
	return sheets, nil
}

func (g *Game) Title() string {
	if g.spec.Title == "" {
		return "stomper"
	}
	return g.spec.Title
}

func (g *Game) WindowSize() (int, int) {
	return g.spec.Window.Width, g.spec.Window.Height
}

func (g *Game) World() *sim.World { return g.world }

func (g *Game) Update() error {
	if g.watcher != nil {
		g.applyReloads()
	}

	in := input.Poll()
	if in.Quit || ebiten.IsWindowBeingClosed() {
		if err := g.world.Quit(); err != nil && !errors.Is(err, sim.ErrIllegalTransition) {
			return err
		}
		return ebiten.Termination
	}

	player := g.world.Player()
	if g.world.Running() && input.Apply(in, player) {
		g.mixer.PlaySoundEffectOnce(g.jumpSFX)
	}

	steps := g.clock.Tick(time.Now())
	for i := 0; i < steps && g.world.Running(); i++ {
		g.world.Step(g.clock.Step())
		g.cam.Follow(player.Position().X)
	}

	for _, evt := range g.world.Events() {
		switch evt.Kind {
		case sim.EventEnemyDefeated:
			g.mixer.PlaySoundEffectOnce(g.stompSFX)
		case sim.EventWon, sim.EventLost:
			g.mixer.StopMusic(musicFadeFrames)
		}
	}

	g.mixer.Update()
	g.render.Update(g.world, 1/float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(screen, g.world)
}

// LayoutF tracks the window size so a resized window shows more of the level
// instead of stretching it.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	w, h := int(outsideWidth), int(outsideHeight)
	if w <= 0 || h <= 0 {
		w, h = g.spec.Window.Width, g.spec.Window.Height
	}
	g.cam.Resize(w, h)
	return float64(w), float64(h)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close releases audio players and stops the watcher. It is safe to call more
// than once.
func (g *Game) Close() error {
	g.closeOnce.Do(func() {
		var errs []error
		if g.watcher != nil {
			errs = append(errs, g.watcher.Close())
		}
		if g.mixer != nil {
			errs = append(errs, g.mixer.Close())
		}
		g.closeErr = errors.Join(errs...)
	})
	return g.closeErr
}
