package nodelink

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/shadercopy/pkg/document"
	"github.com/matzehuels/shadercopy/pkg/nodes"
)

func sampleDoc() document.Document {
	doc := document.New("Wood", true)
	doc.Nodes = []document.NodeRecord{
		{Name: "Material Output", Type: nodes.TypeOutputMaterial},
		{Name: "BSDF", Type: nodes.TypeBsdfPrincipled, Inputs: map[string]any{
			"Roughness":  0.5,
			"Base Color": []float64{0.8, 0.2, 0.2, 1},
		}},
		{Name: "Voronoi", Type: "ShaderNodeTexVoronoi"},
	}
	doc.Links = []document.LinkRecord{
		{FromNode: "BSDF", FromSocket: document.Ref("BSDF"), ToNode: "Material Output", ToSocket: document.Ref("Surface")},
		{FromNode: "Ghost", FromSocket: document.Index(0), ToNode: "BSDF", ToSocket: document.Ref("Normal")},
	}
	return doc
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sampleDoc(), Options{})

	for _, want := range []string{
		"digraph G {",
		`label="Wood";`,
		`"BSDF" [label="BSDF\nPrincipled BSDF", fillcolor="#a8dba8"];`,
		`"Material Output" [label="Material Output", fillcolor="#e8b0b0"];`,
		`"Voronoi" [label="Voronoi\nShaderNodeTexVoronoi", style="rounded,filled,dashed"`,
		`"Ghost" [label="Ghost\n(missing)"`,
		`"BSDF" -> "Material Output" [taillabel="BSDF", headlabel="Surface"];`,
		`"Ghost" -> "BSDF" [taillabel="[0]", headlabel="Normal"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %s\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "Roughness") {
		t.Error("input values should only appear in detailed mode")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(sampleDoc(), Options{Detailed: true})
	want := `label="BSDF\nPrincipled BSDF\n\nBase Color = (0.8, 0.2, 0.2, 1)\nRoughness = 0.5"`
	if !strings.Contains(dot, want) {
		t.Errorf("DOT missing %s\n%s", want, dot)
	}
}

func TestToDOTReducedRegistry(t *testing.T) {
	reg := nodes.Default().Without(nodes.TypeBsdfPrincipled)
	dot := ToDOT(sampleDoc(), Options{Registry: reg})
	if !strings.Contains(dot, `"BSDF" [label="BSDF\nShaderNodeBsdfPrincipled", style="rounded,filled,dashed"`) {
		t.Errorf("unsupported type should be dashed\n%s", dot)
	}
}

func TestCategory(t *testing.T) {
	tests := map[string]string{
		nodes.TypeOutputMaterial: "output",
		nodes.TypeBsdfGlass:      "shader",
		nodes.TypeMixShader:      "shader",
		nodes.TypeTexNoise:       "texture",
		nodes.TypeMixRGB:         "color",
		nodes.TypeMapping:        "vector",
		nodes.TypeValue:          "input",
		nodes.TypeMath:           "convert",
		"ShaderNodeUnknown":      "",
	}
	for typ, want := range tests {
		if got := Category(typ); got != want {
			t.Errorf("Category(%s) = %q, want %q", typ, got, want)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := normalizeViewBox(in)
	if !bytes.Contains(out, []byte(`viewBox="0 0 100.00 50.00" width="100" height="50"`)) {
		t.Errorf("normalizeViewBox = %s", out)
	}
	if got := normalizeViewBox([]byte("<svg/>")); string(got) != "<svg/>" {
		t.Errorf("svg without viewBox should pass through, got %s", got)
	}
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering is slow")
	}
	svg, err := RenderSVG(context.Background(), ToDOT(sampleDoc(), Options{}))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte("<svg")) || !bytes.Contains(svg, []byte("Principled BSDF")) {
		t.Errorf("unexpected SVG output: %.200s", svg)
	}
}
