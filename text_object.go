package photoedit

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/photoedit/text"
)

const (
	// DefaultTextSize is the default and maximum rasterization size, in pixels.
	DefaultTextSize = 400

	// DefaultInitialScale is the display scale of a newly created text object.
	DefaultInitialScale = 0.3

	// bitmapPadding is extra height below the last line.
	bitmapPadding = 8
)

// DebugBackground is a translucent red fill that makes text bitmap bounds
// visible while tuning layout.
var DebugBackground = ARGB(0x38c83838)

// TextObject is an editable text overlay. The text is rasterized into the
// object's source bitmap, one line per "\n"-separated segment, at the
// text size clamped to the maximum text size.
//
// Setters only record new property values. Call Commit to re-rasterize.
// TextObject is not safe for concurrent use.
type TextObject struct {
	ImageObject

	text        string
	textSize    int
	maxTextSize int
	color       RGBA
	typeface    string
	bold        bool
	italic      bool
	background  RGBA
	loader      FontLoader

	// rendered is the state the current bitmap was drawn from; nil
	// before the first rasterization.
	rendered *textState
}

// textState captures every property that affects the rendered bitmap.
type textState struct {
	text       string
	size       int
	color      RGBA
	typeface   string
	bold       bool
	italic     bool
	background RGBA
}

// NewTextObject creates a text object, rasterizes s, applies the initial
// display scale, and anchors the object in quadrant q of a canvas of
// width×height pixels. rotateBm and deleteBm are the selection handles;
// either may be nil.
func NewTextObject(s string, q Quadrant, width, height int, rotateBm, deleteBm *Bitmap, opts ...TextObjectOption) (*TextObject, error) {
	o := defaultTextObjectOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &TextObject{
		ImageObject: newImageObject(nil, rotateBm, deleteBm),
		text:        s,
		textSize:    o.textSize,
		maxTextSize: o.maxTextSize,
		color:       o.color,
		typeface:    o.typeface,
		bold:        o.bold,
		italic:      o.italic,
		background:  o.background,
		loader:      o.loader,
	}

	if err := t.regenerate(); err != nil {
		return nil, err
	}
	if err := t.SetScale(o.initialScale); err != nil {
		return nil, fmt.Errorf("photoedit: initial scale %v: %w", o.initialScale, err)
	}

	w, h := t.ScaledSize()
	if p, ok := q.anchor(w, h, width, height, rotateBm, deleteBm); ok {
		t.SetPosition(p)
	}
	Logger().Debug("photoedit: text object placed",
		"id", t.ID(), "quadrant", q, "x", t.X(), "y", t.Y())
	return t, nil
}

// Commit re-rasterizes the text after property changes. It is a no-op
// when nothing that affects the bitmap changed since the last render.
func (t *TextObject) Commit() error {
	return t.regenerate()
}

// regenerate draws the text into a new bitmap sized to its measured
// bounds: the widest line by the font bounding-box height per line.
func (t *TextObject) regenerate() error {
	t.textSize = min(t.maxTextSize, max(t.textSize, 1))

	state := t.state()
	if t.rendered != nil && *t.rendered == state {
		return nil
	}

	tf, err := ResolveTypeface(t.loader, t.typeface, t.bold, t.italic)
	if err != nil {
		return err
	}
	face := tf.Face(float64(t.textSize))
	if err := face.Source().Err(); err != nil {
		return &TypefaceError{Name: tf.Name, Err: err}
	}

	lines := splitLines(t.text)
	width := 0
	for _, line := range lines {
		if w := int(face.Advance(line)); w > width {
			width = w
		}
	}
	if width > 0 {
		width += int(math.Ceil(face.Overhang()))
	}
	if width < 1 {
		width = 1
	}

	m := face.Metrics()
	lineHeight := m.BoxHeight()
	baseline := m.CenteredBaseline(lineHeight)

	bm := NewBitmap(width, lineHeight*len(lines)+bitmapPadding)
	if t.background.A > 0 {
		bm.Clear(t.background)
	}
	col := t.color.Color()
	for i, line := range lines {
		text.DrawLine(bm.Image(), line, face, 0, float64(baseline+i*lineHeight), col)
	}

	t.srcBm = bm
	t.SetCenter()
	t.rendered = &state

	Logger().Debug("photoedit: text rasterized",
		"id", t.ID(),
		"textSize", t.textSize,
		"lines", len(lines),
		"lineHeight", lineHeight,
		"baseline", baseline,
		"width", bm.Width(),
		"height", bm.Height())
	return nil
}

func (t *TextObject) state() textState {
	return textState{
		text:       t.text,
		size:       t.textSize,
		color:      t.color,
		typeface:   t.typeface,
		bold:       t.bold,
		italic:     t.italic,
		background: t.background,
	}
}

// splitLines splits s on "\n", dropping trailing empty lines. Empty text
// is a single empty line; text made only of newlines has no lines.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Text returns the current text.
func (t *TextObject) Text() string { return t.text }

// SetText sets the text.
func (t *TextObject) SetText(s string) { t.text = s }

// TextSize returns the text size in pixels. After Commit it reflects the
// size actually rendered.
func (t *TextObject) TextSize() int { return t.textSize }

// SetTextSize sets the text size in pixels.
func (t *TextObject) SetTextSize(size int) { t.textSize = size }

// MaxTextSize returns the largest size text is rasterized at.
func (t *TextObject) MaxTextSize() int { return t.maxTextSize }

// Color returns the text color.
func (t *TextObject) Color() RGBA { return t.color }

// SetColor sets the text color.
func (t *TextObject) SetColor(c RGBA) { t.color = c }

// Typeface returns the typeface name; "" is the default typeface.
func (t *TextObject) Typeface() string { return t.typeface }

// SetTypeface sets the typeface name.
func (t *TextObject) SetTypeface(name string) { t.typeface = name }

// Bold reports whether the text is bold.
func (t *TextObject) Bold() bool { return t.bold }

// SetBold sets bold.
func (t *TextObject) SetBold(bold bool) { t.bold = bold }

// Italic reports whether the text is italic.
func (t *TextObject) Italic() bool { return t.italic }

// SetItalic sets italic.
func (t *TextObject) SetItalic(italic bool) { t.italic = italic }

// Background returns the bitmap fill color behind the text.
func (t *TextObject) Background() RGBA { return t.background }

// SetBackground sets the bitmap fill color behind the text.
func (t *TextObject) SetBackground(c RGBA) { t.background = c }
