package styles

import (
	"bytes"
	"encoding/xml"
)

const (
	nameFontSize  = 13.0
	nameCharWidth = 0.55
	namePadding   = 0.85
)

// TruncateName shortens a display name to fit a card of the given width,
// appending ".." when cut. Names short enough to fit are returned unchanged.
func TruncateName(name string, cardWidth float64) string {
	availW := cardWidth * namePadding
	charWidth := nameFontSize * nameCharWidth
	maxChars := int(availW / charWidth)
	if maxChars < 3 {
		maxChars = 3
	}

	runes := []rune(name)
	if len(runes) <= maxChars {
		return name
	}
	return string(runes[:maxChars-2]) + ".."
}

// EscapeXML escapes s for inclusion in SVG text and attribute content.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
