package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/shadercopy/pkg/document"
	"github.com/matzehuels/shadercopy/pkg/nodes"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed lists input values and properties in node labels.
	Detailed bool

	// Registry resolves type labels. Nil means [nodes.Default].
	Registry *nodes.Registry
}

// Category fill colors, loosely following the host's node header colors.
var categoryColors = map[string]string{
	"output":  "#e8b0b0",
	"shader":  "#a8dba8",
	"texture": "#f4c78f",
	"color":   "#f2e394",
	"vector":  "#a9c4eb",
	"input":   "#d8bfe8",
	"convert": "#c9d6df",
}

// ToDOT converts a document to Graphviz DOT format for node-link visualization.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Nodes of types the registry does not support, and placeholders for link
// endpoints missing from the document, are drawn dashed and grey.
func ToDOT(doc document.Document, opts Options) string {
	reg := opts.Registry
	if reg == nil {
		reg = nodes.Default()
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  label=%q;\n", doc.Name)
	buf.WriteString("  labelloc=t;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=10, color=\"#555555\"];\n")
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	known := make(map[string]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		known[n.Name] = true
		label := fmtLabel(n, reg, opts.Detailed)
		attrs := fmtAttrs(n, reg, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.Name, strings.Join(attrs, ", "))
	}

	var missing []string
	for _, l := range doc.Links {
		for _, name := range []string{l.FromNode, l.ToNode} {
			if !known[name] && !slices.Contains(missing, name) {
				missing = append(missing, name)
			}
		}
	}
	for _, name := range missing {
		fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled,dashed\", fillcolor=lightgrey, fontcolor=\"#777777\"];\n",
			name, name+"\n(missing)")
	}

	buf.WriteString("\n")
	for _, l := range doc.Links {
		fmt.Fprintf(&buf, "  %q -> %q [taillabel=%q, headlabel=%q];\n",
			l.FromNode, l.ToNode, l.FromSocket.String(), l.ToSocket.String())
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n document.NodeRecord, reg *nodes.Registry, detailed bool) string {
	typeLabel := n.Type
	if def, ok := reg.Lookup(n.Type); ok {
		typeLabel = def.Label
	}
	label := n.Name
	if typeLabel != n.Name {
		label += "\n" + typeLabel
	}
	if !detailed {
		return label
	}

	var parts []string
	for _, k := range slices.Sorted(maps.Keys(n.Properties)) {
		parts = append(parts, fmt.Sprintf("%s: %s", k, fmtValue(n.Properties[k])))
	}
	for _, k := range slices.Sorted(maps.Keys(n.Inputs)) {
		parts = append(parts, fmt.Sprintf("%s = %s", k, fmtValue(n.Inputs[k])))
	}
	if len(parts) == 0 {
		return label
	}
	return label + "\n\n" + strings.Join(parts, "\n")
}

func fmtAttrs(n document.NodeRecord, reg *nodes.Registry, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if !reg.Supports(n.Type) {
		return append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	if color, ok := categoryColors[Category(nodes.Normalize(n.Type))]; ok {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", color))
	}
	return attrs
}

func fmtValue(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'g', 4, 64)
	case []float64:
		parts := make([]string, len(x))
		for i, f := range x {
			parts[i] = strconv.FormatFloat(f, 'g', 3, 64)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return fmt.Sprint(v)
	}
}

// Category groups a node type for coloring.
func Category(typ string) string {
	switch typ {
	case nodes.TypeOutputMaterial:
		return "output"
	case nodes.TypeRGB, nodes.TypeValue, nodes.TypeTexCoord, nodes.TypeFresnel, nodes.TypeLayerWeight:
		return "input"
	case nodes.TypeMapping, nodes.TypeVectorMath, nodes.TypeNormalMap, nodes.TypeBump, nodes.TypeDisplacement:
		return "vector"
	case nodes.TypeMath, nodes.TypeClamp, nodes.TypeMapRange, nodes.TypeRGBToBW,
		nodes.TypeSeparateColor, nodes.TypeCombineColor:
		return "convert"
	}
	switch {
	case strings.HasPrefix(typ, "ShaderNodeBsdf"), typ == nodes.TypeEmission,
		typ == nodes.TypeMixShader, typ == nodes.TypeAddShader:
		return "shader"
	case strings.HasPrefix(typ, "ShaderNodeTex"):
		return "texture"
	case typ == nodes.TypeMixRGB, typ == nodes.TypeInvert, typ == nodes.TypeHueSaturation,
		typ == nodes.TypeBrightContrast, typ == nodes.TypeGamma:
		return "color"
	}
	return ""
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
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
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

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
