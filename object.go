package photoedit

import (
	"image"
	"math"

	"github.com/google/uuid"
)

// ImageObject is the base of every object placed on the editing canvas:
// a source bitmap drawn centered on a position, at a display scale and
// rotation, decorated with rotate and delete handles while selected.
//
// The zero value is not usable; create objects with NewImageObject or
// embed an ImageObject initialized by it.
type ImageObject struct {
	id       string
	point    Point
	scale    float64
	rotation float64
	center   Point

	srcBm    *Bitmap
	rotateBm *Bitmap
	deleteBm *Bitmap
}

// NewImageObject creates an object at (0, 0) with scale 1.
// Any bitmap may be nil; nil decorations count as zero-sized.
func NewImageObject(src, rotateBm, deleteBm *Bitmap) *ImageObject {
	o := newImageObject(src, rotateBm, deleteBm)
	return &o
}

func newImageObject(src, rotateBm, deleteBm *Bitmap) ImageObject {
	o := ImageObject{
		id:       uuid.NewString(),
		scale:    1,
		srcBm:    src,
		rotateBm: rotateBm,
		deleteBm: deleteBm,
	}
	o.SetCenter()
	return o
}

// ID returns the object's unique identifier.
func (o *ImageObject) ID() string { return o.id }

// Position returns the on-canvas position of the bitmap's center.
func (o *ImageObject) Position() Point { return o.point }

// SetPosition moves the object.
func (o *ImageObject) SetPosition(p Point) { o.point = p }

// X returns the horizontal position.
func (o *ImageObject) X() int { return o.point.X }

// SetX sets the horizontal position.
func (o *ImageObject) SetX(x int) { o.point.X = x }

// Y returns the vertical position.
func (o *ImageObject) Y() int { return o.point.Y }

// SetY sets the vertical position.
func (o *ImageObject) SetY(y int) { o.point.Y = y }

// Scale returns the display scale factor.
func (o *ImageObject) Scale() float64 { return o.scale }

// SetScale sets the display scale factor. Scale must be positive and finite.
func (o *ImageObject) SetScale(s float64) error {
	if !(s > 0) || math.IsInf(s, 0) {
		return ErrInvalidScale
	}
	o.scale = s
	return nil
}

// Rotation returns the rotation in degrees, clockwise.
func (o *ImageObject) Rotation() float64 { return o.rotation }

// SetRotation sets the rotation in degrees, normalized to [0, 360).
func (o *ImageObject) SetRotation(deg float64) {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	o.rotation = deg
}

// Bitmap returns the source bitmap, or nil if none has been set.
func (o *ImageObject) Bitmap() *Bitmap { return o.srcBm }

// SetBitmap replaces the source bitmap and recenters the pivot.
func (o *ImageObject) SetBitmap(bm *Bitmap) error {
	if bm == nil {
		return ErrNilBitmap
	}
	o.srcBm = bm
	o.SetCenter()
	return nil
}

// RotateDecoration returns the rotate handle bitmap.
func (o *ImageObject) RotateDecoration() *Bitmap { return o.rotateBm }

// DeleteDecoration returns the delete handle bitmap.
func (o *ImageObject) DeleteDecoration() *Bitmap { return o.deleteBm }

// SetCenter recomputes the rotation pivot as the middle of the source
// bitmap, in bitmap coordinates.
func (o *ImageObject) SetCenter() {
	o.center = Point{X: o.srcBm.Width() / 2, Y: o.srcBm.Height() / 2}
}

// Center returns the rotation pivot in bitmap coordinates.
func (o *ImageObject) Center() Point { return o.center }

// ScaledSize returns the bitmap's displayed size.
func (o *ImageObject) ScaledSize() (w, h float64) {
	return float64(o.srcBm.Width()) * o.scale, float64(o.srcBm.Height()) * o.scale
}

// Bounds returns the unrotated on-canvas rectangle covered by the scaled
// bitmap, centered on the position.
func (o *ImageObject) Bounds() image.Rectangle {
	w, h := o.ScaledSize()
	minX := float64(o.point.X) - w/2
	minY := float64(o.point.Y) - h/2
	return image.Rect(
		int(math.Floor(minX)),
		int(math.Floor(minY)),
		int(math.Ceil(minX+w)),
		int(math.Ceil(minY+h)),
	)
}
