package photoedit

import (
	"fmt"
	"io/fs"
	"path"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/photoedit/text"
)

// Asset typefaces bundled with the editor under fonts/<name>.ttf.
const (
	FaceBY   = "by3500"
	FaceBYGF = "bygf3500"
)

// FontLoader resolves asset typeface names to font sources.
type FontLoader interface {
	// Has reports whether name is a typeface the loader can provide.
	Has(name string) bool

	// Load returns the font source for name.
	Load(name string) (*text.FontSource, error)
}

// AssetFontLoader loads typefaces from "fonts/<name>.ttf" inside a file
// system, typically an embed.FS or os.DirFS of the app's assets.
// Parsed sources are cached per name.
//
// AssetFontLoader is safe for concurrent use.
type AssetFontLoader struct {
	fsys  fs.FS
	names map[string]struct{}

	mu    sync.Mutex
	cache map[string]*text.FontSource
}

// NewAssetFontLoader creates a loader for the given typeface names.
// With no names, the loader serves FaceBY and FaceBYGF.
func NewAssetFontLoader(fsys fs.FS, names ...string) *AssetFontLoader {
	if len(names) == 0 {
		names = []string{FaceBY, FaceBYGF}
	}
	l := &AssetFontLoader{
		fsys:  fsys,
		names: make(map[string]struct{}, len(names)),
		cache: make(map[string]*text.FontSource),
	}
	for _, n := range names {
		l.names[n] = struct{}{}
	}
	return l
}

// Has implements FontLoader.
func (l *AssetFontLoader) Has(name string) bool {
	_, ok := l.names[name]
	return ok
}

// Load implements FontLoader.
func (l *AssetFontLoader) Load(name string) (*text.FontSource, error) {
	if !l.Has(name) {
		return nil, &TypefaceError{Name: name, Err: fs.ErrNotExist}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if s, ok := l.cache[name]; ok {
		return s, nil
	}

	data, err := fs.ReadFile(l.fsys, path.Join("fonts", name+".ttf"))
	if err != nil {
		return nil, &TypefaceError{Name: name, Err: err}
	}
	s, err := text.NewFontSource(data)
	if err != nil {
		return nil, &TypefaceError{Name: name, Err: err}
	}
	l.cache[name] = s
	return s, nil
}

// Close releases all cached sources.
func (l *AssetFontLoader) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for name, s := range l.cache {
		_ = s.Close()
		delete(l.cache, name)
	}
	return nil
}

// Typeface is a resolved font plus the synthetic style needed to
// render the requested weight and slant.
type Typeface struct {
	// Name is the requested typeface name; "" for the default typeface.
	Name string

	Source    *text.FontSource
	Synthetic text.Style
}

// Face returns the typeface at the given pixel size.
func (tf Typeface) Face(size float64) *text.Face {
	return tf.Source.Face(size, tf.Synthetic)
}

// ResolveTypeface maps a typeface name and style flags to a font.
//
// An empty name, a nil loader, or a name the loader does not know selects
// the default typeface, which has real bold and italic variants. Asset
// typefaces are single regular fonts; bold and italic are synthesized.
func ResolveTypeface(loader FontLoader, name string, bold, italic bool) (Typeface, error) {
	style := text.StyleNormal
	if bold {
		style |= text.StyleBold
	}
	if italic {
		style |= text.StyleItalic
	}

	if name != "" && loader != nil && loader.Has(name) {
		src, err := loader.Load(name)
		if err != nil {
			return Typeface{}, err
		}
		return Typeface{Name: name, Source: src, Synthetic: style}, nil
	}

	if name != "" {
		Logger().Warn("photoedit: unknown typeface, using default", "typeface", name)
	}
	src, err := defaultTypeface(style)
	if err != nil {
		return Typeface{}, err
	}
	return Typeface{Source: src, Synthetic: text.StyleNormal}, nil
}

// defaultFonts holds the lazily parsed default family, indexed by text.Style.
var defaultFonts [4]struct {
	once sync.Once
	src  *text.FontSource
	err  error
}

var defaultFontData = [4][]byte{
	text.StyleNormal:                  goregular.TTF,
	text.StyleBold:                    gobold.TTF,
	text.StyleItalic:                  goitalic.TTF,
	text.StyleBold | text.StyleItalic: gobolditalic.TTF,
}

// defaultTypeface returns the default family's font for style.
func defaultTypeface(style text.Style) (*text.FontSource, error) {
	d := &defaultFonts[style]
	d.once.Do(func() {
		d.src, d.err = text.NewFontSource(defaultFontData[style])
		if d.err != nil {
			d.err = fmt.Errorf("photoedit: default typeface %s: %w", style, d.err)
		}
	})
	return d.src, d.err
}
