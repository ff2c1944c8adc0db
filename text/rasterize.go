package text

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// emboldenStep is the largest horizontal gap, in pixels, between two
// overdraw passes of a synthetically bold glyph.
const emboldenStep = 0.5

// DrawLine renders a single line of text onto dst.
// Position (x, y) is the left end of the baseline.
//
// Each glyph is shaped, its outline is loaded from the font, synthetic
// styles are applied, and the outline is rasterized into an alpha mask.
// The mask is then composited over dst in col. Glyphs without outlines
// (spaces, color bitmaps) are skipped.
func DrawLine(dst draw.Image, line string, face *Face, x, y float64, col color.Color) {
	if dst == nil || line == "" || face == nil {
		return
	}
	otf, err := face.source.outlines()
	if err != nil {
		return
	}

	run := Shape(line, face)
	src := image.NewUniform(col)
	skew := 0.0
	if face.synth.Has(StyleItalic) {
		skew = FakeItalicSkew
	}
	var embolden float64
	if face.synth.Has(StyleBold) {
		embolden = EmboldenWidth(face.size)
	}

	r := &glyphRasterizer{}
	for _, g := range run.Glyphs {
		segs, err := otf.LoadGlyph(&face.buf, sfnt.GlyphIndex(g.ID), face.ppem(), nil)
		if err != nil || len(segs) == 0 {
			continue
		}
		r.load(segs, skew)
		r.draw(dst, src, x+g.X, y+g.Y, embolden)
	}
}

// EmboldenWidth returns the horizontal stroke added to synthetically bold
// glyphs at the given pixel size: 1/24 of the size for small text easing
// to 1/32 at 36px and above.
func EmboldenWidth(size float64) float64 {
	const (
		smallSize, smallRatio = 9.0, 1.0 / 24
		largeSize, largeRatio = 36.0, 1.0 / 32
	)
	switch {
	case size <= smallSize:
		return size * smallRatio
	case size >= largeSize:
		return size * largeRatio
	default:
		t := (size - smallSize) / (largeSize - smallSize)
		return size * (smallRatio + (largeRatio-smallRatio)*t)
	}
}

// pathOp mirrors sfnt.SegmentOp for transformed outlines.
type pathOp uint8

const (
	opMoveTo pathOp = iota
	opLineTo
	opQuadTo
	opCubeTo
)

type pathSeg struct {
	op  pathOp
	pts [3][2]float64
}

// glyphRasterizer turns glyph outlines into alpha masks. The segment
// slice is reused across glyphs.
type glyphRasterizer struct {
	segs                   []pathSeg
	minX, minY, maxX, maxY float64
	z                      *vector.Rasterizer
}

// load converts sfnt segments into float paths, applying the horizontal
// skew, and records their control-point bounds.
func (r *glyphRasterizer) load(segs sfnt.Segments, skew float64) {
	r.segs = r.segs[:0]
	r.minX, r.minY = math.Inf(1), math.Inf(1)
	r.maxX, r.maxY = math.Inf(-1), math.Inf(-1)

	for _, s := range segs {
		var ps pathSeg
		n := 1
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			ps.op = opMoveTo
		case sfnt.SegmentOpLineTo:
			ps.op = opLineTo
		case sfnt.SegmentOpQuadTo:
			ps.op, n = opQuadTo, 2
		case sfnt.SegmentOpCubeTo:
			ps.op, n = opCubeTo, 3
		}
		for i := 0; i < n; i++ {
			px, py := skewPoint(s.Args[i], skew)
			ps.pts[i] = [2]float64{px, py}
			r.minX, r.maxX = math.Min(r.minX, px), math.Max(r.maxX, px)
			r.minY, r.maxY = math.Min(r.minY, py), math.Max(r.maxY, py)
		}
		r.segs = append(r.segs, ps)
	}
}

// draw rasterizes the loaded outline with its origin at (ox, oy) and
// composites it over dst. A positive embolden overdraws the outline at
// horizontal offsets up to that width.
func (r *glyphRasterizer) draw(dst draw.Image, src image.Image, ox, oy, embolden float64) {
	if len(r.segs) == 0 || r.minX > r.maxX {
		return
	}

	gr := image.Rect(
		int(math.Floor(ox+r.minX)),
		int(math.Floor(oy+r.minY)),
		int(math.Ceil(ox+r.maxX+embolden)),
		int(math.Ceil(oy+r.maxY)),
	)
	clip := gr.Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}

	w, h := gr.Dx(), gr.Dy()
	if r.z == nil {
		r.z = vector.NewRasterizer(w, h)
	}
	mask := image.NewAlpha(image.Rect(0, 0, w, h))

	passes := 1
	if embolden > 0 {
		passes = int(math.Ceil(embolden/emboldenStep)) + 1
	}
	for i := 0; i < passes; i++ {
		dx := 0.0
		if passes > 1 {
			dx = embolden * float64(i) / float64(passes-1)
		}
		r.z.Reset(w, h)
		r.addPath(ox+dx-float64(gr.Min.X), oy-float64(gr.Min.Y))
		r.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	}

	draw.DrawMask(dst, clip, src, image.Point{}, mask, clip.Min.Sub(gr.Min), draw.Over)
}

// addPath feeds the loaded outline to the vector rasterizer, translated by (tx, ty).
func (r *glyphRasterizer) addPath(tx, ty float64) {
	pt := func(p [2]float64) (float32, float32) {
		return float32(p[0] + tx), float32(p[1] + ty)
	}
	started := false
	for _, s := range r.segs {
		switch s.op {
		case opMoveTo:
			if started {
				r.z.ClosePath()
			}
			started = true
			r.z.MoveTo(pt(s.pts[0]))
		case opLineTo:
			r.z.LineTo(pt(s.pts[0]))
		case opQuadTo:
			bx, by := pt(s.pts[0])
			cx, cy := pt(s.pts[1])
			r.z.QuadTo(bx, by, cx, cy)
		case opCubeTo:
			bx, by := pt(s.pts[0])
			cx, cy := pt(s.pts[1])
			dx, dy := pt(s.pts[2])
			r.z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if started {
		r.z.ClosePath()
	}
}

// skewPoint converts a fixed-point outline point to floats and shears it
// horizontally by skew per unit of (downward) height.
func skewPoint(p fixed.Point26_6, skew float64) (float64, float64) {
	x, y := fixedToFloat(p.X), fixedToFloat(p.Y)
	return x + skew*y, y
}
