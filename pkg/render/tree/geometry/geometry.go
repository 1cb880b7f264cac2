// Package geometry computes SVG path data and bounding viewBoxes for the
// connector lines drawn between family tree cards.
//
// All functions are pure: given the same points they return the same path
// string and viewBox. Coordinates are in user units (pixels in SVG space).
// The fixed visual constants (sibling rise, paddings) are carried over from
// the shipped visual design and are deliberately not derived from card size.
package geometry

import (
	"fmt"
	"math"
)

// ConnectorType selects the path shape for a relationship line.
type ConnectorType string

// Connector types for relationship lines.
const (
	// ParentChild drops vertically to the midpoint between the rows, jogs
	// horizontally, then drops to the target.
	ParentChild ConnectorType = "parent-child"
	// Spouse is a straight segment, drawn dashed by the styles layer.
	Spouse ConnectorType = "spouse"
	// Sibling is an inverted U rising above both endpoints.
	Sibling ConnectorType = "sibling"
	// Generation is a straight segment used for many-to-many links between
	// the parent row and the center row.
	Generation ConnectorType = "generation"
)

// Fixed layout constants, in user units.
const (
	// SiblingRise is how far a sibling connector rises above its higher
	// endpoint before jogging across.
	SiblingRise = 30.0
	// SiblingPadding is the viewBox padding for sibling connectors; the
	// extra room accommodates the upward rise.
	SiblingPadding = 40.0
	// DefaultPadding is the viewBox padding for all other connector types
	// and for multi-connection generation sets.
	DefaultPadding = 20.0
)

// Position is a 2D point in layout coordinates.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ViewBox is an axis-aligned bounding rectangle in layout coordinates.
type ViewBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// String formats the viewBox as the four space-separated numbers expected by
// the SVG viewBox attribute.
func (v ViewBox) String() string {
	return fmt.Sprintf("%s %s %s %s", fnum(v.X), fnum(v.Y), fnum(v.Width), fnum(v.Height))
}

// ComputePath returns the SVG path data for a connector of type t between
// from and to. A degenerate from == to still yields a valid path.
func ComputePath(t ConnectorType, from, to Position) string {
	switch t {
	case ParentChild:
		midY := (from.Y + to.Y) / 2
		return fmt.Sprintf("M %s %s L %s %s L %s %s L %s %s",
			fnum(from.X), fnum(from.Y),
			fnum(from.X), fnum(midY),
			fnum(to.X), fnum(midY),
			fnum(to.X), fnum(to.Y))
	case Sibling:
		riseY := math.Min(from.Y, to.Y) - SiblingRise
		return fmt.Sprintf("M %s %s L %s %s L %s %s L %s %s",
			fnum(from.X), fnum(from.Y),
			fnum(from.X), fnum(riseY),
			fnum(to.X), fnum(riseY),
			fnum(to.X), fnum(to.Y))
	default: // Spouse, Generation: straight segment
		return fmt.Sprintf("M %s %s L %s %s",
			fnum(from.X), fnum(from.Y),
			fnum(to.X), fnum(to.Y))
	}
}

// PaddingFor returns the viewBox padding used for a single connector of
// type t. Multi-connection generation sets always use DefaultPadding.
func PaddingFor(t ConnectorType) float64 {
	if t == Sibling {
		return SiblingPadding
	}
	return DefaultPadding
}

// ComputeViewBox returns the bounding box of points expanded by padding on
// every side. The padding is applied even when the raw extent is zero, so a
// degenerate point set still yields a non-zero-area box. An empty point set
// yields a box of bare padding around the origin.
func ComputeViewBox(points []Position, padding float64) ViewBox {
	minX, minY := 0.0, 0.0
	maxX, maxY := 0.0, 0.0
	for i, p := range points {
		if i == 0 {
			minX, maxX = p.X, p.X
			minY, maxY = p.Y, p.Y
			continue
		}
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return ViewBox{
		X:      minX - padding,
		Y:      minY - padding,
		Width:  (maxX - minX) + 2*padding,
		Height: (maxY - minY) + 2*padding,
	}
}

// SiblingViewBox bounds a sibling connector including its rise above the
// endpoints, expanded by SiblingPadding.
func SiblingViewBox(from, to Position) ViewBox {
	riseY := math.Min(from.Y, to.Y) - SiblingRise
	return ComputeViewBox([]Position{from, to, {X: from.X, Y: riseY}}, SiblingPadding)
}

// fnum formats a coordinate without a trailing ".0" for whole numbers, so
// paths read "M 50 100" rather than "M 50.0 100.0".
func fnum(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e9 {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
