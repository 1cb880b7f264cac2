// Package pkg provides the core libraries for Kintree family tree visualization.
//
// # Overview
//
// Kintree renders a person's close family as a three-row layout: parents on
// top, the selected person with siblings and spouses in the middle, children
// on the bottom. The pkg directory is organized into five main areas:
//
//  1. [family] - Domain types (people, relationship sets, color coding)
//  2. [provider] - Data sources (in-memory, JSON file, MongoDB)
//  3. [render/tree] - The layout and rendering pipeline
//  4. [render/pedigree] - Graphviz pedigree charts
//  5. [pipeline] - Orchestration (fetch → compose → render)
//
// # Architecture
//
// The typical data flow through Kintree:
//
//	Data source (memory / file / MongoDB)
//	         ↓
//	    [provider] package (fetch a person's relationship set)
//	         ↓
//	    [render/tree] package (classify rows, lay out cards, compose)
//	         ↓
//	    SVG/JSON/DOT output
//
// # Quick Start
//
// Fetch a relationship set and render an SVG tree:
//
//	import (
//	    "context"
//	    "github.com/kintreeapp/kintree/pkg/provider/memory"
//	    "github.com/kintreeapp/kintree/pkg/render/tree"
//	    "github.com/kintreeapp/kintree/pkg/render/tree/sink"
//	)
//
//	// 1. Fetch relationships
//	store := memory.New()
//	focal := memory.SeedDemo(store)
//	set, _ := store.FetchRelationshipSet(context.Background(), focal.ID)
//
//	// 2. Compose the tree
//	t, _ := tree.Compose(set, tree.Options{FrameWidth: 800})
//
//	// 3. Render to SVG
//	svg := sink.RenderSVG(t)
//
// # Main Packages
//
// ## Domain
//
// [family] - People and relationships. A [family.RelationshipSet] is one
// person's immediate family: parents, siblings, spouses, children. Color
// coding assigns each relative a stable hue.
//
// [provider] - The [provider.Provider] interface and its backends:
// [provider/memory] for tests and the demo dataset, [provider/file] for
// JSON documents, [provider/mongo] for MongoDB collections.
//
// ## Rendering
//
// [render/tree] - The layout engine. The pipeline: classify → layout →
// compose.
//
//   - [render/tree/geometry]: SVG path and view box primitives
//   - [render/tree/classify]: Assign relatives to rows
//   - [render/tree/layout]: Card positions, connectors, frames
//   - [render/tree/centering]: Keep the selected card in view
//   - [render/tree/styles]: Visual styles
//   - [render/tree/sink]: Output formats (SVG, JSON)
//
// [render/pedigree] - Ancestor charts as Graphviz node-link diagrams.
//
// ## Infrastructure
//
// [pipeline] - Complete visualization pipeline (fetch → compose → render)
// used by the CLI, the HTTP server, and the TUI. Ensures consistent behavior
// across all entry points.
//
// [cache] - Artifact caching with file, Redis, and null backends. Only
// rendered outputs are cached; relationship data is always fetched fresh.
//
// [history] - File-backed viewing history for the interactive browser.
//
// [errors] - Coded errors shared across packages. Codes map to exit codes
// in the CLI and status codes in the server.
//
// [observability] - Pluggable hooks for pipeline and cache events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                  # All tests
//	go test ./pkg/render/tree/...      # Specific package
//	go test -run Example               # Examples only
//
// [family]: https://pkg.go.dev/github.com/kintreeapp/kintree/pkg/family
// [provider]: https://pkg.go.dev/github.com/kintreeapp/kintree/pkg/provider
// [provider/memory]: https://pkg.go.dev/github.com/kintreeapp/kintree/pkg/provider/memory
// [provider/file]: https://pkg.go.dev/github.com/kintreeapp/kintree/pkg/provider/file
// [provider/mongo]: https://pkg.go.dev/github.com/kintreeapp/kintree/pkg/provider/mongo
// [render/tree]: https://pkg.go.dev/github.com/kintreeapp/kintree/pkg/render/tree
// [render/tree/geometry]: https://pkg.go.dev/github.com/kintreeapp/kintree/pkg/render/tree/geometry
// [render/tree/classify]: https://pkg.go.dev/github.com/kintreeapp/kintree/pkg/render/tree/classify
// [render/tree/layout]: https://pkg.go.dev/github.com/kintreeapp/kintree/pkg/render/tree/layout
// [render/tree/centering]: https://pkg.go.dev/github.com/kintreeapp/kintree/pkg/render/tree/centering
// [render/tree/styles]: https://pkg.go.dev/github.com/kintreeapp/kintree/pkg/render/tree/styles
// [render/tree/sink]: https://pkg.go.dev/github.com/kintreeapp/kintree/pkg/render/tree/sink
// [render/pedigree]: https://pkg.go.dev/github.com/kintreeapp/kintree/pkg/render/pedigree
// [pipeline]: https://pkg.go.dev/github.com/kintreeapp/kintree/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/kintreeapp/kintree/pkg/cache
// [history]: https://pkg.go.dev/github.com/kintreeapp/kintree/pkg/history
// [errors]: https://pkg.go.dev/github.com/kintreeapp/kintree/pkg/errors
// [observability]: https://pkg.go.dev/github.com/kintreeapp/kintree/pkg/observability
package pkg
