package recording

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a renderer drawing to a width×height target.
// Factories are registered via Register() and called by NewRenderer().
type Factory func(width, height int) Renderer

var (
	registryMu sync.RWMutex
	renderers  = make(map[string]Factory)
)

// Register makes a renderer available by name. It is typically called
// from init() in renderer packages, following the database/sql driver
// pattern:
//
//	func init() {
//	    recording.Register("raster", func(w, h int) recording.Renderer {
//	        return NewBackend(w, h)
//	    })
//	}
//
// Register panics if factory is nil or if name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := renderers[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	renderers[name] = factory
}

// Unregister removes a renderer from the registry. Unknown names are
// ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(renderers, name)
}

// NewRenderer creates a renderer by name.
//
//	import _ "github.com/gogpu/drawlib/recording/backends/raster"
//
//	rd, err := recording.NewRenderer("raster", 800, 600)
func NewRenderer(name string, width, height int) (Renderer, error) {
	registryMu.RLock()
	factory, ok := renderers[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("recording: unknown renderer %q (forgotten import?)", name)
	}
	return factory(width, height), nil
}

// MustRenderer is like NewRenderer but panics on error.
func MustRenderer(name string, width, height int) Renderer {
	rd, err := NewRenderer(name, width, height)
	if err != nil {
		panic(err)
	}
	return rd
}

// Renderers returns the registered renderer names in sorted order.
func Renderers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a renderer with the given name exists.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := renderers[name]
	return ok
}

// Count returns the number of registered renderers.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(renderers)
}
