package text

import (
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/drawlib/internal/cache"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
	"honnef.co/go/curve"
)

// Glyph is a positioned glyph of a shaped run. (X, Y) is the pen position
// relative to the start of the run on its baseline.
type Glyph struct {
	ID      uint16
	X, Y    float64
	Advance float64
}

// Shaped is a shaped single-line run of text.
type Shaped struct {
	Text    string
	Font    *Font
	Size    float64
	Glyphs  []Glyph
	Width   float64
	Ascent  float64
	Descent float64
}

// Height returns the logical line height of the run.
func (s *Shaped) Height() float64 {
	return s.Ascent + s.Descent
}

// Shaper turns strings into positioned glyphs and outlines. A Shaper holds
// scratch buffers and must not be used from multiple goroutines at once.
type Shaper struct {
	fonts    *Registry
	hb       shaping.HarfbuzzShaper
	buf      sfnt.Buffer
	outlines *cache.Cache[outlineKey, []curve.PathElement]
}

// OutlineCacheSize is the number of glyph outlines a Shaper keeps.
const OutlineCacheSize = 2048

type outlineKey struct {
	font *Font
	gid  uint16
	size uint64
}

// NewShaper returns a shaper resolving fonts through fonts. A nil registry
// is replaced by NewRegistry().
func NewShaper(fonts *Registry) *Shaper {
	if fonts == nil {
		fonts = NewRegistry()
	}
	return &Shaper{
		fonts:    fonts,
		outlines: cache.New[outlineKey, []curve.PathElement](OutlineCacheSize),
	}
}

// Fonts returns the shaper's font registry.
func (s *Shaper) Fonts() *Registry { return s.fonts }

// OutlineCacheStats reports glyph outline cache usage.
func (s *Shaper) OutlineCacheStats() cache.Stats { return s.outlines.Stats() }

// Shape lays out str on a single line using the named font at size pixels
// per em. The text is NFC-normalized first.
func (s *Shaper) Shape(str, fontName string, size float64) (*Shaped, error) {
	f, err := s.fonts.Lookup(fontName)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, fmt.Errorf("text: invalid font size %g", size)
	}
	str = norm.NFC.String(str)

	ppem := floatToFixed(size)
	m, err := f.sfnt.Metrics(&s.buf, ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("text: metrics for %q: %w", f.name, err)
	}
	out := &Shaped{
		Text:    str,
		Font:    f,
		Size:    size,
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
	}
	if str == "" {
		return out, nil
	}

	runes := []rune(str)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      f.shape,
		Size:      ppem,
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	output := s.hb.Shape(input)

	out.Glyphs = make([]Glyph, len(output.Glyphs))
	var x float64
	for i, g := range output.Glyphs {
		adv := fixedToFloat(g.Advance)
		out.Glyphs[i] = Glyph{
			ID:      uint16(g.GlyphID), //nolint:gosec // sfnt glyph indices are 16-bit
			X:       x + fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
			Advance: adv,
		}
		x += adv
	}
	out.Width = x
	return out, nil
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
