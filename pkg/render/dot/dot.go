// Package dot renders a compared graph pair with Graphviz. Both graphs
// appear as clusters side by side; row nodes carry a stable per-ID color
// and each column node that is some row node's best match is filled with
// the matching row color, so the correspondence is visible at a glance.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/uspp-raketa/vertexsim/pkg/graph"
)

// palette holds the fill colors assigned to row nodes by ID. IDs wrap
// around when a graph outgrows the palette.
var palette = []string{
	"#66c2a5", "#fc8d62", "#8da0cb", "#e78ac3", "#a6d854",
	"#ffd92f", "#e5c494", "#b3b3b3", "#80b1d3", "#fb8072",
}

// Color returns the stable fill color for a row node ID.
func Color(id int) string {
	if id < 0 {
		id = -id
	}
	return palette[id%len(palette)]
}

// Options configures pair rendering.
type Options struct {
	// RowName and ColName title the two clusters. Empty values fall back
	// to "A" and "B".
	RowName string
	ColName string

	// RowLabels and ColLabels replace node IDs as display labels. When
	// present their length must cover the node count; missing or empty
	// entries fall back to the ID.
	RowLabels []string
	ColLabels []string

	// BestMatch holds, for each row node in node order, the column node
	// index it matches best. Nil disables match coloring.
	BestMatch []int
}

// Pair converts a compared graph pair to Graphviz DOT. The result renders
// with [RenderSVG] or [RenderPNG], or with any external Graphviz toolchain.
func Pair(row, col *graph.Graph, opts Options) string {
	rowName, colName := opts.RowName, opts.ColName
	if rowName == "" {
		rowName = "A"
	}
	if colName == "" {
		colName = "B"
	}

	// Column node index -> color of the first row node matching it.
	matchColor := map[int]string{}
	if opts.BestMatch != nil {
		for i, c := range opts.BestMatch {
			if i >= len(row.NodeIDs()) || c < 0 || c >= col.NodeCount() {
				continue
			}
			if _, taken := matchColor[c]; !taken {
				matchColor[c] = Color(row.NodeIDs()[i])
			}
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph pair {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	writeCluster(&buf, "row", rowName, row, opts.RowLabels, func(idx, id int) string {
		return Color(id)
	})
	buf.WriteString("\n")
	writeCluster(&buf, "col", colName, col, opts.ColLabels, func(idx, id int) string {
		return matchColor[idx]
	})

	buf.WriteString("}\n")
	return buf.String()
}

// writeCluster emits one graph as a subgraph cluster. Node names are
// prefixed so the two clusters never collide.
func writeCluster(buf *bytes.Buffer, prefix, title string, g *graph.Graph, labels []string, fill func(idx, id int) string) {
	fmt.Fprintf(buf, "  subgraph cluster_%s {\n", prefix)
	fmt.Fprintf(buf, "    label=%q;\n", title)
	buf.WriteString("    color=grey;\n")

	ids := g.NodeIDs()
	for idx, id := range ids {
		label := strconv.Itoa(id)
		if idx < len(labels) && labels[idx] != "" {
			label = labels[idx]
		}
		attrs := []string{fmt.Sprintf("label=%q", label)}
		if c := fill(idx, id); c != "" {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", c))
		}
		if n, ok := g.Node(id); ok && n.Reflexive {
			attrs = append(attrs, "peripheries=2")
		}
		fmt.Fprintf(buf, "    %s%d [%s];\n", prefix, id, strings.Join(attrs, ", "))
	}

	for _, l := range g.Links() {
		switch {
		case l.Left && l.Right:
			fmt.Fprintf(buf, "    %s%d -> %s%d [dir=both];\n", prefix, l.Source, prefix, l.Target)
		case l.Right:
			fmt.Fprintf(buf, "    %s%d -> %s%d;\n", prefix, l.Source, prefix, l.Target)
		case l.Left:
			fmt.Fprintf(buf, "    %s%d -> %s%d;\n", prefix, l.Target, prefix, l.Source)
		}
	}

	buf.WriteString("  }\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG, normalizeViewBox)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG, nil)
}

func render(dot string, format graphviz.Format, post func([]byte) []byte) ([]byte, error) {
	ctx := context.Background()
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
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	out := buf.Bytes()
	if post != nil {
		out = post(out)
	}
	return out, nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the svg element so the view box starts at the
// origin and the pixel size matches it. Graphviz emits point-based sizes
// that scale awkwardly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
