// Package render provides visualization rendering for family trees.
//
// # Overview
//
// This package groups the two renderers that turn a person's relationship
// set into visual output:
//
//   - Three-row tree layouts (in [tree] subpackage)
//   - Pedigree node-link charts (in [pedigree] subpackage)
//
// # Tree Layouts
//
// The [tree] subpackage renders a relationship set as three horizontal rows
// of cards: parents, the center row with the selected person among siblings
// and spouses, and children. Connectors link parents to the center row and
// the selected person to their children.
//
// Key tree subpackages:
//   - [tree/geometry]: SVG path and view box primitives
//   - [tree/classify]: Row assignment
//   - [tree/layout]: Card positions and connector routing
//   - [tree/sink]: Output formats (SVG, JSON)
//   - [tree/styles]: Visual styles
//
// # Pedigree Charts
//
// The [pedigree] subpackage renders the same relationship set as a
// traditional node-link chart using Graphviz. People appear as boxes
// connected by descent arrows.
//
//	dot := pedigree.ToDOT(set, pedigree.Options{})
//	svg, err := pedigree.RenderSVG(ctx, dot)
//
// [tree]: github.com/kintreeapp/kintree/pkg/render/tree
// [tree/geometry]: github.com/kintreeapp/kintree/pkg/render/tree/geometry
// [tree/classify]: github.com/kintreeapp/kintree/pkg/render/tree/classify
// [tree/layout]: github.com/kintreeapp/kintree/pkg/render/tree/layout
// [tree/sink]: github.com/kintreeapp/kintree/pkg/render/tree/sink
// [tree/styles]: github.com/kintreeapp/kintree/pkg/render/tree/styles
// [pedigree]: github.com/kintreeapp/kintree/pkg/render/pedigree
package render
