package photoedit

// TextObjectOption configures a TextObject during creation.
//
// Example:
//
//	obj, err := photoedit.NewTextObject("Hello", photoedit.Center, 1080, 1920, rot, del,
//	    photoedit.WithColor(photoedit.White),
//	    photoedit.WithTypeface(photoedit.FaceBY),
//	    photoedit.WithFontLoader(photoedit.NewAssetFontLoader(assets)),
//	)
type TextObjectOption func(*textObjectOptions)

// textObjectOptions holds optional configuration for TextObject creation.
type textObjectOptions struct {
	textSize     int
	maxTextSize  int
	color        RGBA
	typeface     string
	bold         bool
	italic       bool
	background   RGBA
	initialScale float64
	loader       FontLoader
}

// defaultTextObjectOptions returns the default text object options.
func defaultTextObjectOptions() textObjectOptions {
	return textObjectOptions{
		textSize:     DefaultTextSize,
		maxTextSize:  DefaultTextSize,
		color:        Yellow,
		background:   Transparent,
		initialScale: DefaultInitialScale,
	}
}

// WithTextSize sets the initial text size in pixels.
func WithTextSize(size int) TextObjectOption {
	return func(o *textObjectOptions) {
		o.textSize = size
	}
}

// WithMaxTextSize sets the largest size text is ever rasterized at.
// Sizes below 1 are ignored.
func WithMaxTextSize(size int) TextObjectOption {
	return func(o *textObjectOptions) {
		if size >= 1 {
			o.maxTextSize = size
		}
	}
}

// WithColor sets the text color.
func WithColor(c RGBA) TextObjectOption {
	return func(o *textObjectOptions) {
		o.color = c
	}
}

// WithTypeface selects a typeface by name. See ResolveTypeface.
func WithTypeface(name string) TextObjectOption {
	return func(o *textObjectOptions) {
		o.typeface = name
	}
}

// WithBold renders the text bold.
func WithBold(bold bool) TextObjectOption {
	return func(o *textObjectOptions) {
		o.bold = bold
	}
}

// WithItalic renders the text italic.
func WithItalic(italic bool) TextObjectOption {
	return func(o *textObjectOptions) {
		o.italic = italic
	}
}

// WithBackground fills the bitmap behind the text. The default is
// transparent; DebugBackground makes the bitmap bounds visible.
func WithBackground(c RGBA) TextObjectOption {
	return func(o *textObjectOptions) {
		o.background = c
	}
}

// WithInitialScale sets the display scale applied before placement.
func WithInitialScale(s float64) TextObjectOption {
	return func(o *textObjectOptions) {
		o.initialScale = s
	}
}

// WithFontLoader sets the loader used to resolve asset typefaces.
func WithFontLoader(l FontLoader) TextObjectOption {
	return func(o *textObjectOptions) {
		o.loader = l
	}
}
