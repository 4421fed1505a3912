package script

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/stomper/common"
	"github.com/milk9111/stomper/entity"
	"github.com/milk9111/stomper/prefabs"
	"github.com/milk9111/stomper/sim"
	"github.com/milk9111/stomper/tilemap"
)

// DefaultBrain runs when an enemy names no script.
const DefaultBrain = "idle"

// probe is how far past an entity's edge the ground and wall checks look.
const probe = 0.05

const thinkDispatchScript = `
__move = think(__self, __player, __state)
`

// Loader reads script source by name.
type Loader func(name string) ([]byte, error)

// Library compiles each brain script once and hands out private clones.
type Library struct {
	load     Loader
	mu       sync.Mutex
	compiled map[string]*tengo.Compiled
}

func NewLibrary(load Loader) *Library {
	if load == nil {
		load = prefabs.LoadScript
	}
	return &Library{load: load, compiled: map[string]*tengo.Compiled{}}
}

// Compile (re)compiles name, replacing any cached program. Brains already
// handed out keep their old program.
func (l *Library) Compile(name string) error {
	name = normalize(name)
	src, err := l.load(name)
	if err != nil {
		return fmt.Errorf("script: load %q: %w", name, err)
	}

	s := tengo.NewScript([]byte(string(src) + "\n" + thinkDispatchScript))
	_ = s.Add("__self", map[string]any{})
	_ = s.Add("__player", map[string]any{})
	_ = s.Add("__state", map[string]any{})
	_ = s.Add("__move", 0)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return fmt.Errorf("script: compile %q: %w", name, err)
	}

	l.mu.Lock()
	l.compiled[name] = compiled
	l.mu.Unlock()
	return nil
}

// NewBrain returns a brain running name with its own state.
func (l *Library) NewBrain(name string) (*Brain, error) {
	name = normalize(name)
	l.mu.Lock()
	c, ok := l.compiled[name]
	l.mu.Unlock()
	if !ok {
		if err := l.Compile(name); err != nil {
			return nil, err
		}
		l.mu.Lock()
		c = l.compiled[name]
		l.mu.Unlock()
	}
	return &Brain{
		name:     name,
		compiled: c.Clone(),
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

// Has reports whether name has been compiled.
func (l *Library) Has(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.compiled[normalize(name)]
	return ok
}

func normalize(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, ".tengo")
	if name == "" {
		return DefaultBrain
	}
	return name
}

// Brain is a scripted sim.Brain.
type Brain struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
	failed   bool
}

var _ sim.Brain = (*Brain)(nil)

func (b *Brain) Name() string { return b.name }

// Think runs the script's think function. Script errors are logged once and
// leave the enemy standing still.
func (b *Brain) Think(self, player *entity.Entity, m *tilemap.Tilemap) cp.Vector {
	if b == nil || b.compiled == nil {
		return cp.Vector{}
	}
	if err := b.run(self, player, m); err != nil {
		if !b.failed {
			log.Printf("script: %s: %v", b.name, err)
			b.failed = true
		}
		return cp.Vector{}
	}
	b.failed = false
	return moveFromObject(b.compiled.Get("__move").Object())
}

func (b *Brain) run(self, player *entity.Entity, m *tilemap.Tilemap) error {
	if err := b.compiled.Set("__self", selfView(self, m)); err != nil {
		return err
	}
	if err := b.compiled.Set("__player", playerView(player)); err != nil {
		return err
	}
	if err := b.compiled.Set("__state", b.state); err != nil {
		return err
	}
	return b.compiled.Run()
}

func selfView(e *entity.Entity, m *tilemap.Tilemap) *tengo.ImmutableMap {
	pos, vel := e.Position(), e.Velocity()
	halfW, halfH := e.Width()/2, e.Height()/2
	below := pos.Y + halfH + probe

	values := map[string]tengo.Object{
		"x":            &tengo.Float{Value: pos.X},
		"y":            &tengo.Float{Value: pos.Y},
		"vx":           &tengo.Float{Value: vel.X},
		"vy":           &tengo.Float{Value: vel.Y},
		"width":        &tengo.Float{Value: e.Width()},
		"height":       &tengo.Float{Value: e.Height()},
		"grounded":     boolObject(e.CollidedBottom()),
		"wall_left":    boolObject(e.CollidedLeft() || m.IsSolid(cp.Vector{X: pos.X - halfW - probe, Y: pos.Y})),
		"wall_right":   boolObject(e.CollidedRight() || m.IsSolid(cp.Vector{X: pos.X + halfW + probe, Y: pos.Y})),
		"ground_left":  boolObject(m.IsSolid(cp.Vector{X: pos.X - halfW - probe, Y: below})),
		"ground_right": boolObject(m.IsSolid(cp.Vector{X: pos.X + halfW + probe, Y: below})),
	}
	return &tengo.ImmutableMap{Value: values}
}

func playerView(p *entity.Entity) *tengo.ImmutableMap {
	var pos cp.Vector
	if p != nil {
		pos = p.Position()
	}
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"x": &tengo.Float{Value: pos.X},
		"y": &tengo.Float{Value: pos.Y},
	}}
}

func boolObject(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

// moveFromObject accepts a number (walk direction) or a [x, y] array. Only the
// sign of y matters.
func moveFromObject(obj tengo.Object) cp.Vector {
	switch v := obj.(type) {
	case *tengo.Int, *tengo.Float:
		return cp.Vector{X: common.Clamp(number(v), -1, 1)}
	case *tengo.Array:
		var out cp.Vector
		if len(v.Value) > 0 {
			out.X = common.Clamp(number(v.Value[0]), -1, 1)
		}
		if len(v.Value) > 1 {
			out.Y = common.Sign(number(v.Value[1]))
		}
		return out
	default:
		return cp.Vector{}
	}
}

func number(obj tengo.Object) float64 {
	switch v := obj.(type) {
	case *tengo.Int:
		return float64(v.Value)
	case *tengo.Float:
		return v.Value
	default:
		return 0
	}
}
