package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection. It must point to the FontSource itself.
	addr *FontSource

	name string

	mu     sync.RWMutex
	data   []byte
	sfnt   *opentype.Font
	shaped *gotext.Font // parsed lazily on first Shape call
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{
		data: dataCopy,
		sfnt: f,
	}
	s.addr = s
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the font family name, or "" if the font has none.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Face creates a Face at the specified pixel size with the given
// synthetic style.
// Panics if s is nil (e.g. when NewFontSource's error was ignored).
func (s *FontSource) Face(size float64, synth Style) *Face {
	if s == nil {
		panic("text: FontSource is nil, check the error from NewFontSource")
	}
	s.copyCheck()
	return &Face{source: s, size: size, synth: synth}
}

// Close releases the font data. Faces created from the source stop
// working after Close.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.sfnt = nil
	s.shaped = nil
	return nil
}

// Err reports why the source cannot be drawn with: ErrClosedSource after
// Close, or the parse error of the shaping font. It returns nil for a
// usable source.
func (s *FontSource) Err() error {
	s.copyCheck()
	if _, err := s.outlines(); err != nil {
		return err
	}
	_, err := s.shapingFont()
	return err
}

// outlines returns the x/image font used for metrics and glyph outlines.
func (s *FontSource) outlines() (*opentype.Font, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sfnt == nil {
		return nil, ErrClosedSource
	}
	return s.sfnt, nil
}

// shapingFont returns the go-text font used by the shaper, parsing it on
// first use. The returned font is read-only and safe for concurrent use.
func (s *FontSource) shapingFont() (*gotext.Font, error) {
	s.mu.RLock()
	f, data := s.shaped, s.data
	s.mu.RUnlock()
	if f != nil {
		return f, nil
	}
	if data == nil {
		return nil, ErrClosedSource
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shaped != nil {
		return s.shaped, nil
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}
	s.shaped = face.Font
	return s.shaped, nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}
