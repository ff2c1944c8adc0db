// Package text measures and rasterizes single lines of text for photoedit.
//
// The pipeline separates shared font data from sized faces:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - Face: lightweight font instance at a pixel size, optionally with
//     synthetic bold or italic
//   - Shape: HarfBuzz shaping via go-text/typesetting, with the line
//     direction resolved by golang.org/x/text/unicode/bidi
//   - DrawLine: glyph outlines from golang.org/x/image/font/sfnt,
//     rasterized with golang.org/x/image/vector
//
// # Example usage
//
//	source, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	face := source.Face(48, text.StyleNormal)
//	m := face.Metrics()
//	dst := image.NewRGBA(image.Rect(0, 0, 400, m.BoxHeight()))
//	text.DrawLine(dst, "Hello", face, 0, float64(m.CenteredBaseline(m.BoxHeight())), color.Black)
//
// # Synthetic styles
//
// Fonts that ship without bold or italic variants can be styled at draw
// time. StyleBold overdraws each glyph at small horizontal offsets and
// StyleItalic shears outlines by FakeItalicSkew. Synthetic styles do not
// change advances, so measurement is identical for all styles of a face.
package text
