// Package nodelink renders material documents as node-link diagrams.
//
// # Overview
//
// Each node record becomes a rounded box labelled with its name and node
// type, colored by category (shader, texture, color, vector, input,
// output). Each link becomes an arrow from the source node to the target
// node, labelled with the two socket references. Links whose endpoints are
// not in the document point at a dashed placeholder so dangling references
// stay visible.
//
// # Usage
//
//	dot := nodelink.ToDOT(doc, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
//   - Detailed: include captured input values and properties in node labels
//   - Registry: resolves type labels ("Principled BSDF") and flags types the
//     registry does not support
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; the DOT text can also be piped to an external dot binary.
package nodelink
