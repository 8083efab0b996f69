package document

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/matzehuels/shadercopy/pkg/errors"
)

const exampleJSON = `{"name":"M","use_nodes":true,"nodes":[{"name":"Output","type":"ShaderNodeOutputMaterial","location":[0,0],"inputs":{},"properties":{}},{"name":"BSDF","type":"ShaderNodeBsdfPrincipled","location":[-200,0],"inputs":{"Base Color":[0.8,0.2,0.2,1.0]},"properties":{}}],"links":[{"from_node":"BSDF","from_socket":"BSDF","to_node":"Output","to_socket":"Surface"}]}`

func TestParseExample(t *testing.T) {
	doc, err := Parse([]byte(exampleJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Name != "M" || !doc.UseNodes {
		t.Errorf("header = %q, %v", doc.Name, doc.UseNodes)
	}
	if len(doc.Nodes) != 2 || len(doc.Links) != 1 {
		t.Fatalf("got %d nodes, %d links", len(doc.Nodes), len(doc.Links))
	}

	bsdf, ok := doc.Node("BSDF")
	if !ok {
		t.Fatal("BSDF record missing")
	}
	if bsdf.Location != (Location{-200, 0}) {
		t.Errorf("Location = %v", bsdf.Location)
	}
	want := []float64{0.8, 0.2, 0.2, 1.0}
	if got := bsdf.Inputs["Base Color"]; !reflect.DeepEqual(got, want) {
		t.Errorf("Base Color = %#v, want %#v", got, want)
	}

	link := doc.Links[0]
	if link.FromSocket != Ref("BSDF") || link.ToSocket != Ref("Surface") {
		t.Errorf("link = %v", link)
	}
	if link.String() != "BSDF.BSDF -> Output.Surface" {
		t.Errorf("String() = %q", link.String())
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantIssue string
	}{
		{"not json", "not json", ""},
		{"empty", "   ", ""},
		{"empty object", "{}", `missing required field "name"`},
		{"array", "[]", "document must be an object"},
		{"nodes wrong shape", `{"name":"M","use_nodes":true,"nodes":{},"links":[]}`, "nodes: must be an array"},
		{"links wrong shape", `{"name":"M","use_nodes":true,"nodes":[],"links":"x"}`, "links: must be an array"},
		{"use_nodes wrong type", `{"name":"M","use_nodes":"yes","nodes":[],"links":[]}`, "use_nodes: must be a boolean"},
		{"name wrong type", `{"name":3,"use_nodes":true,"nodes":[],"links":[]}`, "name: must be a string"},
		{"node not object", `{"name":"M","use_nodes":true,"nodes":[1],"links":[]}`, "nodes[0]: must be an object"},
		{"node missing type", `{"name":"M","use_nodes":true,"nodes":[{"name":"A"}],"links":[]}`, "nodes[0].type"},
		{"node empty name", `{"name":"M","use_nodes":true,"nodes":[{"name":"","type":"ShaderNodeRGB"}],"links":[]}`, "nodes[0].name"},
		{"bad location", `{"name":"M","use_nodes":true,"nodes":[{"name":"A","type":"ShaderNodeRGB","location":[1,2,3]}],"links":[]}`, "nodes[0].location"},
		{"bad location element", `{"name":"M","use_nodes":true,"nodes":[{"name":"A","type":"ShaderNodeRGB","location":[1,"x"]}],"links":[]}`, "nodes[0].location[1]"},
		{"inputs wrong shape", `{"name":"M","use_nodes":true,"nodes":[{"name":"A","type":"ShaderNodeRGB","inputs":[]}],"links":[]}`, "nodes[0].inputs"},
		{"duplicate names", `{"name":"M","use_nodes":true,"nodes":[{"name":"A","type":"ShaderNodeRGB"},{"name":"A","type":"ShaderNodeValue"}],"links":[]}`, `duplicate node name "A"`},
		{"negative socket index", `{"name":"M","use_nodes":true,"nodes":[],"links":[{"from_node":"A","from_socket":-1,"to_node":"B","to_socket":0}]}`, "links[0].from_socket"},
		{"fractional socket index", `{"name":"M","use_nodes":true,"nodes":[],"links":[{"from_node":"A","from_socket":0,"to_node":"B","to_socket":1.5}]}`, "links[0].to_socket"},
		{"link missing node", `{"name":"M","use_nodes":true,"nodes":[],"links":[{"from_socket":0,"to_node":"B","to_socket":0}]}`, "links[0].from_node"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if !errors.Is(err, errors.ErrCodeValidation) {
				t.Fatalf("Parse() error = %v, want VALIDATION", err)
			}
			if tt.wantIssue != "" && !strings.Contains(err.Error(), tt.wantIssue) {
				t.Errorf("error %q does not mention %q", err, tt.wantIssue)
			}
		})
	}
}

func TestParseCollectsAllIssues(t *testing.T) {
	_, err := Parse([]byte(`{"nodes":[{"name":"A"}]}`))
	issues := IssuesOf(err)
	// missing name, use_nodes, links + node type
	if len(issues) != 4 {
		t.Errorf("got %d issues, want 4: %v", len(issues), issues)
	}
}

func TestParseDefaults(t *testing.T) {
	doc, err := Parse([]byte(`{"name":"","use_nodes":false,"nodes":[{"name":"A","type":"ShaderNodeRGB","location":null}],"links":[{"from_node":"A","from_socket":0,"to_node":"B","to_socket":"Color"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	n := doc.Nodes[0]
	if n.Location != (Location{}) {
		t.Errorf("Location = %v, want [0 0]", n.Location)
	}
	if n.Inputs == nil || n.Properties == nil {
		t.Error("absent inputs/properties should decode as empty maps")
	}
	if !doc.Links[0].FromSocket.IsIndex() || doc.Links[0].FromSocket.Position() != 0 {
		t.Errorf("FromSocket = %v, want index 0", doc.Links[0].FromSocket)
	}
}

func TestParseLegacyLayout(t *testing.T) {
	legacy := `{
	  "name": "Old",
	  "use_nodes": true,
	  "node_tree": {
	    "nodes": [{
	      "name": "Principled BSDF",
	      "type": "BSDF_PRINCIPLED",
	      "location": [10, 300],
	      "inputs": [
	        {"name": "Base Color", "type": "RGBA", "identifier": "Base Color", "default_value": [1, 0.5, 0, 1]},
	        {"name": "Normal", "type": "VECTOR", "identifier": "Normal"}
	      ],
	      "outputs": [{"name": "BSDF", "type": "SHADER", "identifier": "BSDF"}],
	      "properties": {"input_0_default": [1, 0.5, 0, 1], "distribution": "GGX"}
	    }],
	    "links": []
	  }
	}`
	doc, err := Parse([]byte(legacy))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	n := doc.Nodes[0]
	if n.Type != "BSDF_PRINCIPLED" {
		t.Errorf("Type = %q", n.Type)
	}
	if !reflect.DeepEqual(n.Inputs, map[string]any{"Base Color": []float64{1, 0.5, 0, 1}}) {
		t.Errorf("Inputs = %#v", n.Inputs)
	}
	if !reflect.DeepEqual(n.Properties, map[string]any{"distribution": "GGX"}) {
		t.Errorf("Properties = %#v", n.Properties)
	}
}

func TestValidate(t *testing.T) {
	ok := New("M", true)
	ok.Nodes = append(ok.Nodes, NodeRecord{Name: "A", Type: "ShaderNodeRGB"})
	ok.Links = append(ok.Links, LinkRecord{FromNode: "A", FromSocket: Index(0), ToNode: "B", ToSocket: Ref("Fac")})
	if err := Validate(ok); err != nil {
		t.Errorf("Validate(valid) = %v", err)
	}

	bad := New("M", true)
	bad.Nodes = []NodeRecord{{Name: "A", Type: "X"}, {Name: "A", Type: "Y"}, {Type: "Z"}}
	bad.Links = []LinkRecord{{FromNode: "A", ToNode: "A"}}
	err := Validate(bad)
	if !errors.Is(err, errors.ErrCodeValidation) {
		t.Fatalf("Validate(bad) = %v", err)
	}
	// duplicate, empty name, two empty socket refs
	if got := len(IssuesOf(err)); got != 4 {
		t.Errorf("got %d issues, want 4: %v", got, IssuesOf(err))
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	doc, err := Parse([]byte(exampleJSON))
	if err != nil {
		t.Fatal(err)
	}

	for _, indent := range []bool{false, true} {
		data, err := Marshal(doc, indent)
		if err != nil {
			t.Fatal(err)
		}
		back, err := Parse(data)
		if err != nil {
			t.Fatalf("Parse(Marshal()) = %v", err)
		}
		if !reflect.DeepEqual(back, doc) {
			t.Errorf("indent=%v: round trip changed document:\n%s", indent, data)
		}
	}

	yml, err := MarshalYAML(doc)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ParseYAML(yml)
	if err != nil {
		t.Fatalf("ParseYAML: %v\n%s", err, yml)
	}
	if !reflect.DeepEqual(back, doc) {
		t.Errorf("YAML round trip changed document:\n%s", yml)
	}
}

func TestMarshalIsDeterministic(t *testing.T) {
	doc := New("M", true)
	doc.Nodes = append(doc.Nodes, NodeRecord{
		Name: "A", Type: "ShaderNodeMath",
		Inputs:     map[string]any{"Value": 1.0, "Value_001": 2.0, "Value_002": 3.0},
		Properties: map[string]any{"use_clamp": false, "operation": "ADD"},
	})
	first, _ := Marshal(doc, false)
	for range 10 {
		again, _ := Marshal(doc, false)
		if string(again) != string(first) {
			t.Fatalf("encoding differs:\n%s\n%s", first, again)
		}
	}
	if !strings.Contains(string(first), `"inputs":{"Value":1,"Value_001":2,"Value_002":3}`) {
		t.Errorf("inputs not sorted: %s", first)
	}
}

func TestMarshalEmitsEmptyCollections(t *testing.T) {
	data, err := Marshal(Document{Name: "M", Nodes: []NodeRecord{{Name: "A", Type: "T"}}}, false)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, want := range []string{`"links":[]`, `"inputs":{}`, `"properties":{}`} {
		if !strings.Contains(s, want) {
			t.Errorf("%s missing from %s", want, s)
		}
	}
}

func TestSocketRefJSON(t *testing.T) {
	tests := []struct {
		ref  SocketRef
		want string
	}{
		{Ref("Surface"), `"Surface"`},
		{Index(2), `2`},
	}
	for _, tt := range tests {
		data, err := json.Marshal(tt.ref)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != tt.want {
			t.Errorf("Marshal(%v) = %s, want %s", tt.ref, data, tt.want)
		}
		var back SocketRef
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatal(err)
		}
		if back != tt.ref {
			t.Errorf("Unmarshal(%s) = %v, want %v", data, back, tt.ref)
		}
	}

	var r SocketRef
	if err := json.Unmarshal([]byte(`true`), &r); err == nil {
		t.Error("bool socket ref should be rejected")
	}
}

func TestFiles(t *testing.T) {
	doc, _ := Parse([]byte(exampleJSON))
	dir := t.TempDir()

	for _, name := range []string{"m.json", "m.yaml"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, doc, true); err != nil {
			t.Fatal(err)
		}
		got, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", name, err)
		}
		if !reflect.DeepEqual(got, doc) {
			t.Errorf("%s: file round trip changed document", name)
		}
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.json")); !os.IsNotExist(unwrapAll(err)) {
		t.Errorf("ReadFile(missing) = %v", err)
	}
	if err := Encode(os.Stdout, doc, "xml", false); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Encode(xml) = %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"a.json": FormatJSON,
		"a.YML":  FormatYAML,
		"a.yaml": FormatYAML,
		"a":      FormatJSON,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func unwrapAll(err error) error {
	for {
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return err
		}
		err = u.Unwrap()
	}
}
