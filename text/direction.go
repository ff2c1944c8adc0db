package text

import (
	"github.com/go-text/typesetting/di"
	"golang.org/x/text/unicode/bidi"
)

// Direction is the resolved base direction of a line.
type Direction int

const (
	// DirectionLTR is left-to-right text.
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text.
	DirectionRTL
)

// String returns "ltr" or "rtl".
func (d Direction) String() string {
	if d == DirectionRTL {
		return "rtl"
	}
	return "ltr"
}

// LineDirection resolves the base direction of a single line with the
// Unicode bidi algorithm. Lines that are entirely right-to-left shape as
// RTL; mixed and neutral lines fall back to LTR.
func LineDirection(line string) Direction {
	if line == "" {
		return DirectionLTR
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(line, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil {
		return DirectionLTR
	}
	if ordering.Direction() == bidi.RightToLeft {
		return DirectionRTL
	}
	return DirectionLTR
}

// toShaping converts a Direction to go-text's di.Direction.
func (d Direction) toShaping() di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}
