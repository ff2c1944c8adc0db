package text

import "math"

// Metrics holds font metrics at a specific size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (positive).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64

	// Top is the highest extent of any glyph relative to the baseline.
	// The Y axis increases down, so Top is negative for most fonts.
	Top float64

	// Bottom is the lowest extent of any glyph relative to the baseline.
	Bottom float64
}

// LineHeight returns the recommended distance between baselines
// (ascent + descent + line gap).
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// BoxHeight returns the height of the font bounding box rounded up to a
// whole pixel. Lines laid out BoxHeight apart never overlap.
func (m Metrics) BoxHeight() int {
	return int(math.Ceil(m.Bottom - m.Top))
}

// CenteredBaseline returns the baseline offset that vertically centers the
// bounding box inside a cell of the given height.
func (m Metrics) CenteredBaseline(cell int) int {
	return int((float64(cell) - m.Bottom - m.Top) / 2)
}
