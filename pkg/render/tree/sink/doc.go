// Package sink converts a composed tree into output artifacts.
//
// Two sinks are provided:
//
//   - RenderSVG: a standalone SVG document. Rows are emitted as labeled
//     region groups ("Parents row", "Center row with siblings and spouses",
//     "Children row") so assistive technology and scripts can address them.
//     The center row group is translated so the selected card sits at the
//     horizontal center of the frame, reproducing the scroll-centering
//     behavior in a static artifact.
//
//   - RenderJSON: the layout as data, for API responses and for clients
//     that draw the tree themselves.
//
// Both sinks are pure functions of the tree and their options; neither
// performs I/O.
package sink
