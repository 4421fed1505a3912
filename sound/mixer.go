package sound

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/stomper/common"
)

const (
	DefaultSampleRate = 44100
	defaultFadeFrames = 30
)

var ErrUnsupportedFormat = errors.New("sound: unsupported audio format")

// Loader reads an audio file by asset path.
type Loader func(path string) ([]byte, error)

// Mixer owns every audio player created through it.
type Mixer struct {
	ctx     *audio.Context
	load    Loader
	muted   bool
	players []*audio.Player

	music    *audio.Player
	musicVol float64
	fadeStep float64
	fading   bool
	closed   bool
}

// Track is background music. Players for the looping and one-shot variants
// are created on first use.
type Track struct {
	path    string
	data    []byte
	volume  float64
	players map[bool]*audio.Player
}

// Effect is a short sound played from the start on every trigger.
type Effect struct {
	path   string
	player *audio.Player
	volume float64
}

func NewMixer(sampleRate int, load Loader) *Mixer {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &Mixer{ctx: ctx, load: load}
}

// SetMuted keeps every player silent. Assets are still loaded and decoded.
func (m *Mixer) SetMuted(muted bool) {
	m.muted = muted
	if muted && m.music != nil {
		m.music.Pause()
	}
}

func (m *Mixer) LoadMusic(path string, volume float64) (*Track, error) {
	data, err := m.load(path)
	if err != nil {
		return nil, fmt.Errorf("sound: load music %q: %w", path, err)
	}
	if _, err := m.decode(path, data); err != nil {
		return nil, err
	}
	return &Track{path: path, data: data, volume: clampVolume(volume), players: map[bool]*audio.Player{}}, nil
}

func (m *Mixer) LoadSoundEffect(path string, volume float64) (*Effect, error) {
	data, err := m.load(path)
	if err != nil {
		return nil, fmt.Errorf("sound: load effect %q: %w", path, err)
	}
	stream, err := m.decode(path, data)
	if err != nil {
		return nil, err
	}
	p, err := m.ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("sound: player for %q: %w", path, err)
	}
	m.players = append(m.players, p)
	return &Effect{path: path, player: p, volume: clampVolume(volume)}, nil
}

// PlayMusic replaces the current music with t.
func (m *Mixer) PlayMusic(t *Track, loop bool) error {
	if m.closed || t == nil {
		return nil
	}
	p, ok := t.players[loop]
	if !ok {
		stream, err := m.decode(t.path, t.data)
		if err != nil {
			return err
		}
		var src io.Reader = stream
		if loop {
			src = audio.NewInfiniteLoop(stream, stream.Length())
		}
		p, err = m.ctx.NewPlayer(src)
		if err != nil {
			return fmt.Errorf("sound: player for %q: %w", t.path, err)
		}
		t.players[loop] = p
		m.players = append(m.players, p)
	}

	if m.music != nil && m.music != p {
		m.music.Pause()
	}
	m.music = p
	m.musicVol = t.volume
	m.fading = false
	p.SetVolume(t.volume)
	if err := p.Rewind(); err != nil {
		return fmt.Errorf("sound: rewind %q: %w", t.path, err)
	}
	if !m.muted {
		p.Play()
	}
	return nil
}

// StopMusic fades the current music out over the given number of updates.
func (m *Mixer) StopMusic(fadeFrames int) {
	if m.music == nil || m.fading {
		return
	}
	if fadeFrames <= 0 {
		fadeFrames = defaultFadeFrames
	}
	m.fadeStep = m.musicVol / float64(fadeFrames)
	if m.fadeStep <= 0 {
		m.fadeStep = 1
	}
	m.fading = true
}

// PlaySoundEffectOnce restarts e from the beginning.
func (m *Mixer) PlaySoundEffectOnce(e *Effect) {
	if m.closed || m.muted || e == nil {
		return
	}
	e.player.SetVolume(e.volume)
	_ = e.player.Rewind()
	e.player.Play()
}

// Update advances a pending fade. Call once per frame.
func (m *Mixer) Update() {
	if !m.fading || m.music == nil {
		return
	}
	m.musicVol -= m.fadeStep
	if m.musicVol > 0 {
		m.music.SetVolume(m.musicVol)
		return
	}
	m.musicVol = 0
	m.music.SetVolume(0)
	m.music.Pause()
	m.music = nil
	m.fading = false
}

// Close releases every player. Later calls do nothing.
func (m *Mixer) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	m.music = nil

	var errs []error
	for _, p := range m.players {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	m.players = nil
	return errors.Join(errs...)
}

type stream interface {
	io.ReadSeeker
	Length() int64
}

func (m *Mixer) decode(path string, data []byte) (stream, error) {
	var decode func(rate int, r io.Reader) (stream, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		decode = func(rate int, r io.Reader) (stream, error) { return wav.DecodeWithSampleRate(rate, r) }
	case ".mp3":
		decode = func(rate int, r io.Reader) (stream, error) { return mp3.DecodeWithSampleRate(rate, r) }
	case ".ogg":
		decode = func(rate int, r io.Reader) (stream, error) { return vorbis.DecodeWithSampleRate(rate, r) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	s, err := decode(m.ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("sound: decode %q: %w", path, err)
	}
	return s, nil
}

// clampVolume treats a missing volume as full volume.
func clampVolume(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return common.Clamp(v, 0, 1)
}
