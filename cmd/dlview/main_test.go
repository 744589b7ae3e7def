package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/gogpu/dlist/scenefile"
)

func loadPage(t *testing.T) (scenefile.Config, *scenefile.Scene) {
	t.Helper()
	scene, err := scenefile.Load(filepath.Join("..", "..", "scenefile", "testdata", "page.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg := scenefile.DefaultConfig()
	cfg.Output = filepath.Join(t.TempDir(), "page.png")
	return cfg, scene
}

func TestRenderWithBackends(t *testing.T) {
	tests := []struct {
		backend  string
		wantList bool
	}{
		{"raster", false},
		{"recording", true},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			cfg, scene := loadPage(t)
			var buf bytes.Buffer
			if err := renderWith(tt.backend, cfg, scene, termenv.NewOutput(&buf)); err != nil {
				t.Fatalf("renderWith(%q): %v", tt.backend, err)
			}

			f, err := os.Open(cfg.Output)
			if err != nil {
				t.Fatalf("open output: %v", err)
			}
			defer f.Close()
			img, err := png.Decode(f)
			if err != nil {
				t.Fatalf("decode output: %v", err)
			}
			w, h := deviceSize(cfg, scene)
			if got := img.Bounds().Size(); got.X != w || got.Y != h {
				t.Errorf("image size = %v, want %dx%d", got, w, h)
			}

			listed := strings.Contains(buf.String(), "Recorded commands")
			if listed != tt.wantList {
				t.Errorf("command listing printed = %v, want %v\n%s", listed, tt.wantList, buf.String())
			}
		})
	}
}

func TestRenderWithUnknownBackend(t *testing.T) {
	cfg, scene := loadPage(t)
	err := renderWith("vulkan", cfg, scene, termenv.NewOutput(&bytes.Buffer{}))
	if err == nil || !strings.Contains(err.Error(), `unknown backend "vulkan"`) {
		t.Fatalf("renderWith(vulkan) error = %v", err)
	}
	if _, err := os.Stat(cfg.Output); !os.IsNotExist(err) {
		t.Errorf("output written for unknown backend: %v", err)
	}
}
