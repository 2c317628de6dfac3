package text

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-text/typesetting/font"
	"github.com/gogpu/drawlib"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Font is a parsed font usable for both shaping and outline extraction.
type Font struct {
	name  string
	sfnt  *sfnt.Font
	shape *font.Face
}

// ParseFont parses TrueType or OpenType data.
func ParseFont(name string, data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font %q: %w", name, err)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font %q for shaping: %w", name, err)
	}
	return &Font{name: name, sfnt: sf, shape: face}, nil
}

// Name returns the name the font was registered under.
func (f *Font) Name() string { return f.name }

// Family returns the family name stored in the font file, or the
// registered name when the file has none.
func (f *Font) Family() string {
	if n, err := f.sfnt.Name(nil, sfnt.NameIDFamily); err == nil && n != "" {
		return n
	}
	return f.name
}

// DefaultFamily is the family used when a requested font is unknown.
const DefaultFamily = "Sans"

// Registry maps family names to fonts. Lookups are case-insensitive.
// A Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	fonts    map[string]*Font
	fallback string
}

// NewRegistry returns a registry holding the built-in families.
func NewRegistry() *Registry {
	r := &Registry{fonts: make(map[string]*Font), fallback: strings.ToLower(DefaultFamily)}
	for name, data := range map[string][]byte{
		"Sans":  goregular.TTF,
		"Mono":  gomono.TTF,
		"Serif": lmroman10regular.TTF,
	} {
		if err := r.Register(name, data); err != nil {
			drawlib.Logger().Warn("text: built-in font unavailable", "font", name, "err", err)
		}
	}
	return r
}

// Register parses data and adds it under name, replacing any font of the
// same name.
func (r *Registry) Register(name string, data []byte) error {
	f, err := ParseFont(name, data)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.fonts[strings.ToLower(name)] = f
	r.mu.Unlock()
	return nil
}

// RegisterFile reads a font file and adds it under name. A leading "~" in
// path is expanded to the home directory.
func (r *Registry) RegisterFile(name, path string) error {
	p, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("text: %w", err)
	}
	data, err := os.ReadFile(filepath.Clean(p))
	if err != nil {
		return fmt.Errorf("text: open font file: %w", err)
	}
	return r.Register(name, data)
}

// SetDefault selects the family used for unknown names.
func (r *Registry) SetDefault(name string) {
	r.mu.Lock()
	r.fallback = strings.ToLower(name)
	r.mu.Unlock()
}

// Names returns the registered family names in lower case.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.fonts))
	for n := range r.fonts {
		names = append(names, n)
	}
	return names
}

// Lookup resolves a font description such as "Sans" or "Serif Bold 12".
// The longest leading run of words naming a registered family wins;
// anything else falls back to the default family.
func (r *Registry) Lookup(desc string) (*Font, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	words := strings.Fields(strings.ToLower(desc))
	for n := len(words); n > 0; n-- {
		if f, ok := r.fonts[strings.Join(words[:n], " ")]; ok {
			return f, nil
		}
	}
	if f, ok := r.fonts[r.fallback]; ok {
		if desc != "" {
			drawlib.Logger().Debug("text: unknown font, using default", "font", desc, "default", f.name)
		}
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNoFont, desc)
}
