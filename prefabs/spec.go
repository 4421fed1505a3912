package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stomper/entity"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec holds window, camera, audio and banner settings.
type GameSpec struct {
	Title         string         `yaml:"title"`
	Window        WindowSpec     `yaml:"window"`
	FixedStep     float64        `yaml:"fixed_step"`
	PixelsPerUnit float64        `yaml:"pixels_per_unit"`
	CameraY       float64        `yaml:"camera_y"`
	FallMargin    float64        `yaml:"fall_margin"`
	Background    BackgroundSpec `yaml:"background"`
	Audio         AudioSpec      `yaml:"audio"`
	Banner        BannerSpec     `yaml:"banner"`
	HUD           HUDSpec        `yaml:"hud"`
}

type WindowSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type BackgroundSpec struct {
	Color *YAMLColor `yaml:"color"`
	Image string     `yaml:"image"`
}

type AudioSpec struct {
	SampleRate int       `yaml:"sample_rate"`
	Music      SoundSpec `yaml:"music"`
	Jump       SoundSpec `yaml:"jump"`
	Stomp      SoundSpec `yaml:"stomp"`
}

type SoundSpec struct {
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type BannerSpec struct {
	OffsetX    float64    `yaml:"offset_x"`
	OffsetY    float64    `yaml:"offset_y"`
	Scale      float64    `yaml:"scale"`
	PopSeconds float64    `yaml:"pop_seconds"`
	Color      *YAMLColor `yaml:"color"`
}

type HUDSpec struct {
	Color      *YAMLColor `yaml:"color"`
	Background *YAMLColor `yaml:"background"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *GameSpec) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("prefabs: game.yaml: window %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.FixedStep <= 0 {
		return fmt.Errorf("prefabs: game.yaml: fixed_step must be positive, got %g", s.FixedStep)
	}
	if s.PixelsPerUnit <= 0 {
		return fmt.Errorf("prefabs: game.yaml: pixels_per_unit must be positive, got %g", s.PixelsPerUnit)
	}
	return nil
}

// EntitySpec tunes one entity kind.
type EntitySpec struct {
	Name         string        `yaml:"name"`
	Speed        float64       `yaml:"speed"`
	JumpPower    float64       `yaml:"jump_power"`
	Acceleration VectorSpec    `yaml:"acceleration"`
	Width        float64       `yaml:"width"`
	Height       float64       `yaml:"height"`
	VisualScale  float64       `yaml:"visual_scale"`
	Sheet        string        `yaml:"sheet"`
	Animation    AnimationSpec `yaml:"animation"`
	Script       string        `yaml:"script"`
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v VectorSpec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// AnimationSpec lists frame indices per direction in left, right, up, down
// order.
type AnimationSpec struct {
	Columns       int     `yaml:"columns"`
	Rows          int     `yaml:"rows"`
	FrameDuration float64 `yaml:"frame_duration"`
	Frames        [][]int `yaml:"frames"`
}

func LoadEntitySpec(filename string) (*EntitySpec, error) {
	spec, err := LoadSpec[EntitySpec](filename)
	if err != nil {
		return nil, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, entity.ErrInvalidExtents)
	}
	if len(spec.Animation.Frames) > 4 {
		return nil, fmt.Errorf("prefabs: %s: %d frame rows, want at most 4", filename, len(spec.Animation.Frames))
	}
	return &spec, nil
}

func (a AnimationSpec) Animation() entity.Animation {
	anim := entity.Animation{
		Columns:       a.Columns,
		Rows:          a.Rows,
		FrameDuration: a.FrameDuration,
	}
	for i := 0; i < len(a.Frames) && i < len(anim.Frames); i++ {
		anim.Frames[i] = append([]int(nil), a.Frames[i]...)
	}
	return anim
}

// Config builds an entity.Config for kind at pos.
func (s *EntitySpec) Config(kind entity.Kind, pos cp.Vector) entity.Config {
	return entity.Config{
		Kind:         kind,
		Position:     pos,
		Speed:        s.Speed,
		JumpPower:    s.JumpPower,
		Acceleration: s.Acceleration.Vector(),
		Width:        s.Width,
		Height:       s.Height,
		VisualScale:  s.VisualScale,
		Animation:    s.Animation.Animation(),
	}
}

type YAMLColor struct {
	color.Color
}

// ColorOr returns c's colour, or fallback when c is unset.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
