// Package family defines the domain model consumed by the tree rendering
// engine: people, the per-person relationship set, display rows, and color
// tags.
//
// The types here are plain values. They carry no behavior beyond validation
// and display helpers; fetching, persistence, and mutation belong to upstream
// collaborators (see pkg/provider). A RelationshipSet describes one focal
// person's immediate relatives and is rebuilt from scratch whenever the
// selection changes.
package family
