package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoFont is returned when a registry has no font to fall back to.
	ErrNoFont = errors.New("text: no font available")

	// ErrEmptyPath is returned when text is laid out along a path with no
	// length.
	ErrEmptyPath = errors.New("text: path has zero length")
)
