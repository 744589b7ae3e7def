package recording

import (
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/dlist"
)

// BackendFactory returns a backend for a width by height pixel surface.
type BackendFactory func(width, height int) dlist.Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register makes a backend available to NewBackend under name. Backend
// packages call it from init. It panics on a nil factory or a name that is
// already taken.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	backends[name] = factory
}

// NewBackend returns a new width by height backend of the named kind.
// The raster package registers "raster"; this package registers "recording".
func NewBackend(name string, width, height int) (dlist.Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("recording: unknown backend %q (have %v)", name, Backends())
	}
	return factory(width, height), nil
}

// Backends returns the registered names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func init() {
	Register("recording", func(w, h int) dlist.Backend {
		return NewRecorder(w, h)
	})
}
