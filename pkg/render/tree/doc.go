// Package tree assembles the full three-row family visualization from a
// single relationship set.
//
// Compose turns a family.RelationshipSet into a Tree: three laid-out rows
// (parents, center, children), the color-coding map for the center row, and
// the connector geometry between rows. The Tree is a pure value; sinks in
// the sink subpackage turn it into SVG or JSON, and the View type tracks the
// showing/loading lifecycle across selection changes.
//
// Subpackages, leaves first:
//
//   - geometry:  SVG path strings and bounding viewBoxes for connectors
//   - classify:  person → card variant/label/color classification
//   - layout:    card boxes and row strips, fit-centering
//   - centering: scroll-centering of the selected card
//   - styles:    visual treatments (stroke widths, dashes, colors)
//   - sink:      SVG and JSON output
package tree
