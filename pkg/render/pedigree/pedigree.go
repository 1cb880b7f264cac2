// Package pedigree exports a relationship set as a Graphviz pedigree
// chart. Unlike the tree renderer, which draws a fixed three-row frame,
// the pedigree export delegates placement to Graphviz and is intended
// for printing and for import into external genealogy tools.
package pedigree

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/kintreeapp/kintree/pkg/family"
)

// Options configures pedigree chart generation.
type Options struct {
	// Detailed includes lifespans in node labels.
	// When false, only the display name is shown.
	Detailed bool
}

// ToDOT converts a relationship set to Graphviz DOT format. The selected
// person is emphasized, the spouse link is drawn without direction, and
// parent-child links point downward. The resulting DOT string can be
// rendered with [RenderSVG].
func ToDOT(set family.RelationshipSet, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph pedigree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.7;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	writeNode(&buf, set.Selected, opts, true)
	for _, p := range set.Parents {
		writeNode(&buf, p, opts, false)
	}
	for _, p := range set.Siblings {
		writeNode(&buf, p, opts, false)
	}
	for _, p := range set.Spouses {
		writeNode(&buf, p, opts, false)
	}
	for _, p := range set.Children {
		writeNode(&buf, p, opts, false)
	}

	buf.WriteString("\n")
	for _, p := range set.Parents {
		fmt.Fprintf(&buf, "  %q -> %q;\n", p.ID, set.Selected.ID)
		for _, s := range set.Siblings {
			fmt.Fprintf(&buf, "  %q -> %q;\n", p.ID, s.ID)
		}
	}
	for _, s := range set.Spouses {
		fmt.Fprintf(&buf, "  %q -> %q [dir=none, style=dashed];\n", set.Selected.ID, s.ID)
	}
	for _, c := range set.Children {
		fmt.Fprintf(&buf, "  %q -> %q;\n", set.Selected.ID, c.ID)
	}

	writeRank(&buf, append(append([]family.Person{}, set.Siblings...), append([]family.Person{set.Selected}, set.Spouses...)...))

	buf.WriteString("}\n")
	return buf.String()
}

func writeNode(buf *bytes.Buffer, p family.Person, opts Options, selected bool) {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(p, opts.Detailed))}
	if selected {
		attrs = append(attrs, "penwidth=2", "fillcolor=lightyellow")
	}
	fmt.Fprintf(buf, "  %q [%s];\n", p.ID, strings.Join(attrs, ", "))
}

func fmtLabel(p family.Person, detailed bool) string {
	if !detailed {
		return p.DisplayName()
	}
	if span := p.Lifespan(); span != "" {
		return p.DisplayName() + "\n" + span
	}
	return p.DisplayName()
}

func writeRank(buf *bytes.Buffer, row []family.Person) {
	if len(row) < 2 {
		return
	}
	ids := make([]string, len(row))
	for i, p := range row {
		ids[i] = fmt.Sprintf("%q", p.ID)
	}
	fmt.Fprintf(buf, "\n  { rank=same; %s }\n", strings.Join(ids, "; "))
}

// RenderSVG renders a DOT pedigree chart to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
