package text

import (
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// GlyphID is a glyph index within a font.
type GlyphID uint16

// ShapedGlyph is a glyph positioned relative to the start of its line.
type ShapedGlyph struct {
	ID GlyphID

	// X is the pen position plus the shaper's horizontal offset.
	X float64

	// Y is the vertical offset from the baseline; the Y axis increases down.
	Y float64

	// Advance is the horizontal advance of the glyph.
	Advance float64
}

// Run is a shaped line of text.
type Run struct {
	Glyphs    []ShapedGlyph
	Advance   float64
	Direction Direction
}

// shaperPool pools HarfbuzzShaper instances, which keep internal
// buffers and are not safe for concurrent use.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Shape converts a single line of text into positioned glyphs using
// HarfBuzz shaping from go-text/typesetting. Glyphs are returned in
// visual order, left to right.
//
// An empty line, a nil face, or a font that cannot be shaped yields an
// empty Run.
func Shape(line string, face *Face) Run {
	if line == "" || face == nil {
		return Run{}
	}

	f, err := face.source.shapingFont()
	if err != nil {
		return Run{}
	}

	runes := []rune(line)
	dir := LineDirection(line)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir.toShaping(),
		Face:      gotext.NewFace(f),
		Size:      face.ppem(),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)

	run := Run{
		Glyphs:    make([]ShapedGlyph, len(out.Glyphs)),
		Direction: dir,
	}
	var x float64
	for i, g := range out.Glyphs {
		adv := fixedToFloat(g.Advance)
		run.Glyphs[i] = ShapedGlyph{
			ID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // sfnt glyph indices are 16-bit
			X:       x + fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
			Advance: adv,
		}
		x += adv
	}
	run.Advance = x
	return run
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
