package recording

import (
	"maps"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/dlist"
)

// withRegistry swaps in a registry holding only the given names for the
// duration of a test.
func withRegistry(t *testing.T, names ...string) {
	t.Helper()
	registryMu.Lock()
	saved := maps.Clone(backends)
	backends = make(map[string]BackendFactory)
	registryMu.Unlock()
	t.Cleanup(func() {
		registryMu.Lock()
		backends = saved
		registryMu.Unlock()
	})

	for _, name := range names {
		Register(name, func(w, h int) dlist.Backend { return NewRecorder(w, h) })
	}
}

func TestRecordingBackendRegistered(t *testing.T) {
	b, err := NewBackend("recording", 320, 200)
	if err != nil {
		t.Fatalf("NewBackend(recording) error = %v", err)
	}
	rec, ok := b.(*Recorder)
	if !ok {
		t.Fatalf("NewBackend(recording) = %T, want *Recorder", b)
	}
	if rec.Width() != 320 || rec.Height() != 200 {
		t.Errorf("size = %dx%d, want 320x200", rec.Width(), rec.Height())
	}
}

func TestNewBackendPassesSize(t *testing.T) {
	withRegistry(t)

	var gotW, gotH int
	Register("sized", func(w, h int) dlist.Backend {
		gotW, gotH = w, h
		return NewRecorder(w, h)
	})
	if _, err := NewBackend("sized", 800, 600); err != nil {
		t.Fatalf("NewBackend() error = %v", err)
	}
	if gotW != 800 || gotH != 600 {
		t.Errorf("factory got %dx%d, want 800x600", gotW, gotH)
	}
}

func TestNewBackendUnknownListsNames(t *testing.T) {
	withRegistry(t, "alpha", "bravo")

	_, err := NewBackend("svg", 1, 1)
	if err == nil {
		t.Fatal("NewBackend(svg) error = nil")
	}
	if !strings.Contains(err.Error(), "[alpha bravo]") {
		t.Errorf("error %q does not list registered backends", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name    string
		factory BackendFactory
	}{
		{"nil factory", nil},
		{"duplicate", func(w, h int) dlist.Backend { return NewRecorder(w, h) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withRegistry(t, "taken")
			defer func() {
				if recover() == nil {
					t.Error("Register() did not panic")
				}
			}()
			Register("taken", tt.factory)
		})
	}
}

func TestBackendsSorted(t *testing.T) {
	withRegistry(t, "charlie", "alpha", "bravo")

	if got, want := Backends(), []string{"alpha", "bravo", "charlie"}; !slices.Equal(got, want) {
		t.Errorf("Backends() = %v, want %v", got, want)
	}
}

func TestConcurrentRegistration(t *testing.T) {
	withRegistry(t)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range 100 {
			Register("b"+string(rune('A'+i%26))+string(rune('0'+i/26)), func(w, h int) dlist.Backend { return NewRecorder(w, h) })
		}
	}()
	go func() {
		defer wg.Done()
		for range 100 {
			_ = Backends()
			_, _ = NewBackend("missing", 1, 1)
		}
	}()
	wg.Wait()

	if n := len(Backends()); n != 100 {
		t.Errorf("len(Backends()) = %d, want 100", n)
	}
}
