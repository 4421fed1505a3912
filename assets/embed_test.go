package assets

import (
	"errors"
	"io/fs"
	"testing"
)

func TestCleanAssetPath(t *testing.T) {
	cases := map[string]string{
		"":                             "",
		"images/player0.png":           "images/player0.png",
		"assets/images/player0.png":    "images/player0.png",
		"/home/me/game/assets/a/b.wav": "a/b.wav",
		"/tmp/bounce.wav":              "bounce.wav",
	}
	for in, want := range cases {
		if got := cleanAssetPath(in); got != want {
			t.Fatalf("cleanAssetPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDecodeImage(t *testing.T) {
	cases := []struct {
		path string
		w, h int
	}{
		{"images/player0.png", 128, 128},
		{"images/enemy.png", 128, 128},
		{"assets/images/tileset_1.png", 96, 32},
		{"images/platform_tileset.png", 32, 13},
		{"images/background.png", 320, 180},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			img, err := DecodeImage(c.path)
			if err != nil {
				t.Fatalf("DecodeImage: %v", err)
			}
			if b := img.Bounds(); b.Dx() != c.w || b.Dy() != c.h {
				t.Fatalf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), c.w, c.h)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	for _, p := range []string{"audio/dooblydoo.wav", "audio/bounce.wav", "audio/stomp.wav"} {
		if !Exists(p) {
			t.Fatalf("%s not embedded", p)
		}
		b, err := LoadFile(p)
		if err != nil {
			t.Fatalf("LoadFile(%s): %v", p, err)
		}
		if len(b) < 44 || string(b[:4]) != "RIFF" {
			t.Fatalf("%s is not a wav file", p)
		}
	}

	if _, err := LoadFile("audio/missing.mp3"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}
	if Exists("images") {
		t.Fatalf("directories are not files")
	}
}
