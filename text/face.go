package text

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Style selects synthetic style transforms applied while rasterizing.
// Use them when a font file has no real bold or italic variant.
type Style uint8

const (
	// StyleBold emboldens glyphs by overdrawing them with horizontal offsets.
	StyleBold Style = 1 << iota

	// StyleItalic slants glyphs by FakeItalicSkew.
	StyleItalic

	// StyleNormal applies no transform.
	StyleNormal Style = 0
)

// FakeItalicSkew is the horizontal shear applied per unit of height for
// synthetic italics. Negative values lean glyphs to the right because
// the Y axis increases down.
const FakeItalicSkew = -0.25

// Has reports whether all bits of o are set in s.
func (s Style) Has(o Style) bool {
	return s&o == o
}

// String returns a readable name for the style.
func (s Style) String() string {
	switch {
	case s.Has(StyleBold | StyleItalic):
		return "bold-italic"
	case s.Has(StyleBold):
		return "bold"
	case s.Has(StyleItalic):
		return "italic"
	default:
		return "normal"
	}
}

// Face is a FontSource at a specific pixel size with synthetic styling.
// Face is cheap to create and is not safe for concurrent use.
type Face struct {
	source *FontSource
	size   float64
	synth  Style

	buf sfnt.Buffer
}

// Source returns the FontSource the face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Size returns the pixel size (pixels per em).
func (f *Face) Size() float64 {
	return f.size
}

// Synthetic returns the synthetic style applied at draw time.
func (f *Face) Synthetic() Style {
	return f.synth
}

// ppem returns the face size as a fixed-point pixels-per-em value.
func (f *Face) ppem() fixed.Int26_6 {
	return fixed.Int26_6(f.size * 64)
}

// Metrics returns the font metrics at the face size.
// A closed source yields zero metrics.
func (f *Face) Metrics() Metrics {
	otf, err := f.source.outlines()
	if err != nil {
		return Metrics{}
	}

	m, err := otf.Metrics(&f.buf, f.ppem(), font.HintingNone)
	if err != nil {
		return Metrics{}
	}
	bounds, err := otf.Bounds(&f.buf, f.ppem(), font.HintingNone)
	if err != nil {
		return Metrics{}
	}

	return Metrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
		LineGap: fixedToFloat(m.Height - m.Ascent - m.Descent),
		Top:     fixedToFloat(bounds.Min.Y),
		Bottom:  fixedToFloat(bounds.Max.Y),
	}
}

// Overhang returns how far, in pixels, synthetic styling can push ink past
// the right end of a line's advance: the emboldening stroke plus the lean
// of the tallest glyph under the italic skew.
func (f *Face) Overhang() float64 {
	var o float64
	if f.synth.Has(StyleBold) {
		o += EmboldenWidth(f.size)
	}
	if f.synth.Has(StyleItalic) {
		o += math.Abs(FakeItalicSkew) * max(-f.Metrics().Top, 0)
	}
	return o
}

// Advance returns the shaped horizontal advance of a single line in pixels.
func (f *Face) Advance(line string) float64 {
	run := Shape(line, f)
	return run.Advance
}

// fixedToFloat converts fixed.Int26_6 to float64.
func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
