package photoedit

import (
	"fmt"
	"math"
	"strings"
)

// Quadrant selects where a new object is anchored on the canvas.
type Quadrant int

// Anchor quadrants. Values outside this set leave the object at (0, 0).
const (
	LeftTop Quadrant = iota + 1
	RightTop
	LeftBottom
	RightBottom
	Center
)

var quadrantNames = map[Quadrant]string{
	LeftTop:     "left-top",
	RightTop:    "right-top",
	LeftBottom:  "left-bottom",
	RightBottom: "right-bottom",
	Center:      "center",
}

// String returns the quadrant's kebab-case name.
func (q Quadrant) String() string {
	if s, ok := quadrantNames[q]; ok {
		return s
	}
	return fmt.Sprintf("Quadrant(%d)", int(q))
}

// ParseQuadrant parses a quadrant name as produced by String.
// Underscores and case are ignored.
func ParseQuadrant(s string) (Quadrant, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for q, name := range quadrantNames {
		if name == norm {
			return q, nil
		}
	}
	return 0, fmt.Errorf("photoedit: unknown quadrant %q", s)
}

// anchor computes the initial center position of an object whose scaled
// size is (w, h) on a canvas of size (canvasW, canvasH). Objects in
// corner quadrants are inset so the decoration handles stay on screen:
// the delete handle on the leading edges, the rotate handle on the
// trailing edges.
func (q Quadrant) anchor(w, h float64, canvasW, canvasH int, rotateBm, deleteBm *Bitmap) (Point, bool) {
	leading := func(size float64, handle int) int {
		return int(math.Max(size/2+float64(handle), 0))
	}
	trailing := func(canvas int, size float64, handle int) int {
		return int(math.Max(float64(canvas)-size+size/2-float64(handle), 0))
	}

	switch q {
	case LeftTop:
		return Point{X: leading(w, deleteBm.Width()), Y: leading(h, deleteBm.Height())}, true
	case RightTop:
		return Point{X: trailing(canvasW, w, rotateBm.Width()), Y: leading(h, deleteBm.Height())}, true
	case LeftBottom:
		return Point{X: leading(w, deleteBm.Width()), Y: trailing(canvasH, h, rotateBm.Height())}, true
	case RightBottom:
		return Point{X: trailing(canvasW, w, rotateBm.Width()), Y: trailing(canvasH, h, rotateBm.Height())}, true
	case Center:
		return Point{X: canvasW / 2, Y: canvasH / 2}, true
	}
	return Point{}, false
}
