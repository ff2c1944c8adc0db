// Package photoedit provides editable overlay objects for a photo-editing
// canvas.
//
// # Overview
//
// Every object on the canvas is an ImageObject: a source bitmap drawn
// centered on a position, with a display scale, a rotation, and rotate
// and delete handle bitmaps. TextObject is an ImageObject whose bitmap is
// rasterized from user-supplied multi-line text.
//
// # Quick Start
//
//	obj, err := photoedit.NewTextObject("Hello\nWorld", photoedit.RightBottom,
//	    1080, 1920, rotateHandle, deleteHandle)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	obj.SetColor(photoedit.White)
//	obj.SetBold(true)
//	if err := obj.Commit(); err != nil {
//	    log.Fatal(err)
//	}
//	_ = obj.Bitmap().SavePNG("text.png")
//
// # Text layout
//
// Each "\n"-separated line is shaped and measured. The bitmap is as wide as
// the widest line, and each line is one font bounding box tall, with the
// baseline centered in its cell. An 8-pixel margin is added below the last
// line. Text is rasterized at the text size clamped to the maximum text
// size (400 by default). The display scale does not change the rendered
// pixels.
//
// # Typefaces
//
// The default typeface is the Go font family, which has real bold and
// italic variants. Named asset typefaces (FaceBY, FaceBYGF, or any name an
// AssetFontLoader was configured with) are loaded from fonts/<name>.ttf.
// Their bold and italic styles are synthesized.
//
// # Coordinate System
//
// Positions are integer canvas pixels:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rotation in degrees, clockwise
package photoedit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
