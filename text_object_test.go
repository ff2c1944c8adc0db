package photoedit

import (
	"errors"
	"io/fs"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/photoedit/text"
)

// regularFace returns the default regular face at size.
func regularFace(t *testing.T, size float64) *text.Face {
	t.Helper()
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = src.Close() })
	return src.Face(size, text.StyleNormal)
}

func newTestText(t *testing.T, s string, opts ...TextObjectOption) *TextObject {
	t.Helper()
	obj, err := NewTextObject(s, Center, 1080, 1920, nil, nil, opts...)
	if err != nil {
		t.Fatalf("NewTextObject(%q) error = %v", s, err)
	}
	return obj
}

// inked counts pixels with non-zero alpha.
func inked(bm *Bitmap) int {
	n := 0
	pix := bm.Image().Pix
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestNewTextObjectDefaults(t *testing.T) {
	obj := newTestText(t, "Hello")

	if obj.Text() != "Hello" {
		t.Errorf("Text() = %q", obj.Text())
	}
	if obj.TextSize() != DefaultTextSize || obj.MaxTextSize() != DefaultTextSize {
		t.Errorf("TextSize() = %d, MaxTextSize() = %d, want %d", obj.TextSize(), obj.MaxTextSize(), DefaultTextSize)
	}
	if obj.Color() != Yellow {
		t.Errorf("Color() = %v, want yellow", obj.Color())
	}
	if obj.Typeface() != "" || obj.Bold() || obj.Italic() {
		t.Error("default style should be the plain default typeface")
	}
	if obj.Background() != Transparent {
		t.Errorf("Background() = %v, want transparent", obj.Background())
	}
	if obj.Scale() != DefaultInitialScale {
		t.Errorf("Scale() = %v, want %v", obj.Scale(), DefaultInitialScale)
	}
	if obj.Position() != Pt(540, 960) {
		t.Errorf("Position() = %v, want canvas center", obj.Position())
	}
	if obj.ID() == "" {
		t.Error("ID() is empty")
	}
}

func TestTextObjectBitmapSize(t *testing.T) {
	face := regularFace(t, DefaultTextSize)
	m := face.Metrics()
	lh := m.BoxHeight()

	tests := []struct {
		name       string
		text       string
		wantWidth  int
		wantHeight int
	}{
		{"single line", "Hello", int(face.Advance("Hello")), lh + 8},
		{"widest line wins", "a\nwide line\nbc", int(face.Advance("wide line")), 3*lh + 8},
		{"trailing newline dropped", "Hello\n\n", int(face.Advance("Hello")), lh + 8},
		{"inner blank line kept", "a\n\nb", int(max(face.Advance("a"), face.Advance("b"))), 3*lh + 8},
		{"empty text", "", 1, lh + 8},
		{"only newlines", "\n\n", 1, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm := newTestText(t, tt.text).Bitmap()
			if bm.Width() != tt.wantWidth || bm.Height() != tt.wantHeight {
				t.Errorf("bitmap = %dx%d, want %dx%d", bm.Width(), bm.Height(), tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestTextObjectCenterFollowsBitmap(t *testing.T) {
	obj := newTestText(t, "centered")
	bm := obj.Bitmap()

	if obj.Center() != Pt(bm.Width()/2, bm.Height()/2) {
		t.Errorf("Center() = %v, want middle of %dx%d", obj.Center(), bm.Width(), bm.Height())
	}
}

func TestTextObjectDrawsInColor(t *testing.T) {
	obj := newTestText(t, "I", WithColor(Red))
	img := obj.Bitmap().Image()

	found := false
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+3] != 255 {
			continue
		}
		found = true
		if img.Pix[i] != 255 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 {
			t.Fatalf("opaque pixel = %v, want red", img.Pix[i:i+4])
		}
	}
	if !found {
		t.Error("no fully covered pixels were drawn")
	}
}

func TestTextObjectBackground(t *testing.T) {
	obj := newTestText(t, "bg", WithBackground(DebugBackground))
	bm := obj.Bitmap()

	// The bottom padding row never contains glyphs.
	px := bm.Image().RGBAAt(0, bm.Height()-1)
	if px.A != 0x38 || px.R <= px.G {
		t.Errorf("padding pixel = %+v, want translucent red background", px)
	}

	plain := newTestText(t, "bg")
	if inked(plain.Bitmap()) >= bm.Width()*bm.Height() {
		t.Error("transparent background should leave uncovered pixels")
	}
}

func TestTextObjectCommitSkipsUnchanged(t *testing.T) {
	obj := newTestText(t, "same")
	before := obj.Bitmap()

	if err := obj.Commit(); err != nil {
		t.Fatal(err)
	}
	if obj.Bitmap() != before {
		t.Error("Commit() without changes should keep the bitmap")
	}
}

func TestTextObjectSettersNeedCommit(t *testing.T) {
	obj := newTestText(t, "short")
	before := obj.Bitmap()

	obj.SetText("a much longer line of text")
	if obj.Bitmap() != before {
		t.Fatal("setters must not re-rasterize")
	}
	if err := obj.Commit(); err != nil {
		t.Fatal(err)
	}
	if obj.Bitmap().Width() <= before.Width() {
		t.Errorf("width after longer text = %d, want > %d", obj.Bitmap().Width(), before.Width())
	}
}

func TestTextObjectCommitEveryProperty(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TextObject)
	}{
		{"text", func(o *TextObject) { o.SetText("other") }},
		{"size", func(o *TextObject) { o.SetTextSize(120) }},
		{"color", func(o *TextObject) { o.SetColor(Blue) }},
		{"typeface", func(o *TextObject) { o.SetTypeface(FaceBYGF) }},
		{"bold", func(o *TextObject) { o.SetBold(true) }},
		{"italic", func(o *TextObject) { o.SetItalic(true) }},
		{"background", func(o *TextObject) { o.SetBackground(White) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := newTestText(t, "prop", WithFontLoader(NewAssetFontLoader(testAssets())))
			before := obj.Bitmap()

			tt.mutate(obj)
			if err := obj.Commit(); err != nil {
				t.Fatal(err)
			}
			if obj.Bitmap() == before {
				t.Errorf("changing %s did not re-rasterize", tt.name)
			}
		})
	}
}

func TestTextObjectTextSizeClamp(t *testing.T) {
	obj := newTestText(t, "size")
	full := obj.Bitmap()

	obj.SetTextSize(1000)
	if err := obj.Commit(); err != nil {
		t.Fatal(err)
	}
	if obj.TextSize() != DefaultTextSize {
		t.Errorf("TextSize() = %d, want clamp to %d", obj.TextSize(), DefaultTextSize)
	}
	if obj.Bitmap() != full {
		t.Error("clamped size equals the rendered size; bitmap should be kept")
	}

	obj.SetTextSize(100)
	if err := obj.Commit(); err != nil {
		t.Fatal(err)
	}
	if obj.Bitmap().Height() >= full.Height() || obj.Bitmap().Width() >= full.Width() {
		t.Errorf("100px bitmap %dx%d should be smaller than 400px %dx%d",
			obj.Bitmap().Width(), obj.Bitmap().Height(), full.Width(), full.Height())
	}

	obj.SetTextSize(-5)
	if err := obj.Commit(); err != nil {
		t.Fatal(err)
	}
	if obj.TextSize() != 1 {
		t.Errorf("TextSize() = %d, want 1 for non-positive sizes", obj.TextSize())
	}
}

func TestTextObjectMaxTextSizeOption(t *testing.T) {
	obj := newTestText(t, "max", WithTextSize(500), WithMaxTextSize(64))
	if obj.TextSize() != 64 || obj.MaxTextSize() != 64 {
		t.Errorf("TextSize() = %d, MaxTextSize() = %d, want 64", obj.TextSize(), obj.MaxTextSize())
	}

	face := regularFace(t, 64)
	if got, want := obj.Bitmap().Height(), face.Metrics().BoxHeight()+8; got != want {
		t.Errorf("bitmap height = %d, want %d", got, want)
	}

	ignored := newTestText(t, "max", WithMaxTextSize(0))
	if ignored.MaxTextSize() != DefaultTextSize {
		t.Errorf("WithMaxTextSize(0) should be ignored, got %d", ignored.MaxTextSize())
	}
}

func TestTextObjectBoldDefaultFamily(t *testing.T) {
	regular := newTestText(t, "Bold")
	bold := newTestText(t, "Bold", WithBold(true))

	if inked(bold.Bitmap()) <= inked(regular.Bitmap()) {
		t.Error("bold text should cover more pixels than regular text")
	}
}

func TestTextObjectAssetTypeface(t *testing.T) {
	assets := NewAssetFontLoader(testAssets())

	mono := newTestText(t, "iiii", WithTypeface(FaceBY), WithFontLoader(assets))
	regular := newTestText(t, "iiii")
	if mono.Bitmap().Width() <= regular.Bitmap().Width() {
		t.Errorf("monospace 'iiii' width %d should exceed proportional %d",
			mono.Bitmap().Width(), regular.Bitmap().Width())
	}

	fakeBold := newTestText(t, "iiii", WithTypeface(FaceBY), WithFontLoader(assets), WithBold(true))
	wantPad := int(math.Ceil(text.EmboldenWidth(DefaultTextSize)))
	if got := fakeBold.Bitmap().Width() - mono.Bitmap().Width(); got != wantPad {
		t.Errorf("synthetic bold widened the bitmap by %d, want %d", got, wantPad)
	}
	if inked(fakeBold.Bitmap()) <= inked(mono.Bitmap()) {
		t.Error("synthetic bold should cover more pixels")
	}
}

func TestTextObjectTypefaceErrors(t *testing.T) {
	loader := NewAssetFontLoader(testAssets(), "missing")

	_, err := NewTextObject("x", Center, 100, 100, nil, nil,
		WithTypeface("missing"), WithFontLoader(loader))
	var tfErr *TypefaceError
	if !errors.As(err, &tfErr) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("NewTextObject() error = %v, want TypefaceError(fs.ErrNotExist)", err)
	}

	obj := newTestText(t, "x", WithFontLoader(loader))
	before := obj.Bitmap()
	obj.SetTypeface("missing")
	if err := obj.Commit(); err == nil {
		t.Fatal("Commit() with a missing typeface should fail")
	}
	if obj.Bitmap() != before {
		t.Error("failed Commit() must keep the previous bitmap")
	}
}

// sourceLoader serves a single prebuilt font source under one name.
type sourceLoader struct {
	name string
	src  *text.FontSource
}

func (l sourceLoader) Has(name string) bool { return name == l.name }

func (l sourceLoader) Load(string) (*text.FontSource, error) { return l.src, nil }

func TestTextObjectCommitClosedSource(t *testing.T) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	loader := sourceLoader{name: "custom", src: src}
	obj := newTestText(t, "Hello", WithTypeface("custom"), WithFontLoader(loader))
	before := obj.Bitmap()

	_ = src.Close()
	obj.SetText("Hello world")
	err = obj.Commit()
	if !errors.Is(err, text.ErrClosedSource) {
		t.Fatalf("Commit() error = %v, want ErrClosedSource", err)
	}
	var tfErr *TypefaceError
	if !errors.As(err, &tfErr) || tfErr.Name != "custom" {
		t.Errorf("Commit() error = %v, want TypefaceError for %q", err, "custom")
	}
	if obj.Bitmap() != before {
		t.Error("failed Commit() must keep the previous bitmap")
	}
	if err := obj.Commit(); err == nil {
		t.Error("a failed render must not be recorded; the next Commit() should retry and fail again")
	}
}

func TestTextObjectSyntheticItalicPadding(t *testing.T) {
	assets := NewAssetFontLoader(testAssets())
	upright := newTestText(t, "lll", WithTypeface(FaceBY), WithFontLoader(assets))
	slanted := newTestText(t, "lll", WithTypeface(FaceBY), WithFontLoader(assets), WithItalic(true))

	if slanted.Bitmap().Width() <= upright.Bitmap().Width() {
		t.Errorf("synthetic italic width %d should exceed upright %d",
			slanted.Bitmap().Width(), upright.Bitmap().Width())
	}

	// Draw the same line unclipped and check its ink fits the bitmap.
	tf, err := ResolveTypeface(assets, FaceBY, false, true)
	if err != nil {
		t.Fatal(err)
	}
	face := tf.Face(DefaultTextSize)
	wide := NewBitmap(4*slanted.Bitmap().Width(), slanted.Bitmap().Height())
	text.DrawLine(wide.Image(), "lll", face, 0, DefaultTextSize, Black.Color())
	right := -1
	for y := range wide.Height() {
		for x := wide.Width() - 1; x > right; x-- {
			if wide.GetPixel(x, y).A != 0 {
				right = x
				break
			}
		}
	}
	if right < 0 {
		t.Fatal("no ink drawn")
	}
	if right >= slanted.Bitmap().Width() {
		t.Errorf("slanted ink reaches column %d, bitmap width is %d", right, slanted.Bitmap().Width())
	}
}

func TestTextObjectInvalidInitialScale(t *testing.T) {
	_, err := NewTextObject("x", Center, 100, 100, nil, nil, WithInitialScale(0))
	if !errors.Is(err, ErrInvalidScale) {
		t.Errorf("error = %v, want ErrInvalidScale", err)
	}
}

func TestTextObjectPlacement(t *testing.T) {
	rotate := NewBitmap(48, 48)
	del := NewBitmap(32, 32)
	const canvasW, canvasH = 1080, 1920

	for _, q := range []Quadrant{LeftTop, RightTop, LeftBottom, RightBottom, Center, Quadrant(0)} {
		t.Run(q.String(), func(t *testing.T) {
			obj, err := NewTextObject("Placed", q, canvasW, canvasH, rotate, del)
			if err != nil {
				t.Fatal(err)
			}
			w, h := obj.ScaledSize()
			want, _ := q.anchor(w, h, canvasW, canvasH, rotate, del)
			if obj.Position() != want {
				t.Errorf("Position() = %v, want %v", obj.Position(), want)
			}

			if q == LeftTop || q == RightTop || q == LeftBottom || q == RightBottom {
				b := obj.Bounds()
				if b.Min.X < 0 || b.Min.Y < 0 || b.Max.X > canvasW || b.Max.Y > canvasH {
					t.Errorf("Bounds() = %v escapes the %dx%d canvas", b, canvasW, canvasH)
				}
			}
		})
	}
}

func TestTextObjectPositionAccessors(t *testing.T) {
	obj := newTestText(t, "move")
	obj.SetX(7)
	obj.SetY(9)
	if obj.X() != 7 || obj.Y() != 9 {
		t.Errorf("X,Y = %d,%d, want 7,9", obj.X(), obj.Y())
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{""}},
		{"a", []string{"a"}},
		{"a\nb", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\nb\n\n", []string{"a", "", "b"}},
		{"\n", []string{}},
	}

	for _, tt := range tests {
		got := splitLines(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("splitLines(%q) = %q, want %q", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitLines(%q) = %q, want %q", tt.in, got, tt.want)
				break
			}
		}
	}
}
