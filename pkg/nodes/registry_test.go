package nodes

import (
	"testing"

	"github.com/matzehuels/shadercopy/pkg/errors"
	"github.com/matzehuels/shadercopy/pkg/shader"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"OUTPUT_MATERIAL", TypeOutputMaterial},
		{"BSDF_PRINCIPLED", TypeBsdfPrincipled},
		{"MIX_RGB", TypeMixRGB},
		{"RGB", TypeRGB},
		{"ShaderNodeMath", TypeMath},
		{"NodeGroupInput", "NodeGroupInput"},
		{"SOMETHING_ELSE", "SOMETHING_ELSE"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsLegacy(t *testing.T) {
	if !IsLegacy("MIX_SHADER") {
		t.Error("MIX_SHADER should be a legacy name")
	}
	if IsLegacy(TypeMixShader) {
		t.Error("current identifiers are not legacy names")
	}
}

func TestDefaultRegistryIsConsistent(t *testing.T) {
	r := Default()
	types := r.Types()
	if len(types) != len(builtinTypes) {
		t.Fatalf("Types() has %d entries, want %d", len(types), len(builtinTypes))
	}

	for _, typ := range types {
		def, _ := r.Lookup(typ)
		if def.Label == "" {
			t.Errorf("%s: missing label", typ)
		}

		for _, dir := range [][]SocketDef{def.Inputs, def.Outputs} {
			seen := map[string]bool{}
			for _, s := range dir {
				id := s.Identifier
				if id == "" {
					id = s.Name
				}
				if seen[id] {
					t.Errorf("%s: duplicate socket identifier %q", typ, id)
				}
				seen[id] = true
			}
		}

		for _, s := range def.Inputs {
			if s.Kind == shader.KindShader {
				if s.Default != nil {
					t.Errorf("%s.%s: shader sockets carry no default", typ, s.Name)
				}
				continue
			}
			if _, ok := shader.Coerce(s.Kind, s.Default); !ok {
				t.Errorf("%s.%s: default %v does not fit kind %s", typ, s.Name, s.Default, s.Kind)
			}
		}

		for _, p := range def.Properties {
			if _, ok := r.Property(typ, p.Name); !ok {
				t.Errorf("%s: property %s missing from accessor table", typ, p.Name)
			}
			n, _ := r.Instantiate(typ)
			if err := p.Set(n, p.Default); err != nil {
				t.Errorf("%s.%s: default rejected: %v", typ, p.Name, err)
			}
		}
	}
}

func TestInstantiate(t *testing.T) {
	r := Default()

	n, err := r.Instantiate("BSDF_PRINCIPLED")
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	if n.Type != TypeBsdfPrincipled {
		t.Errorf("Type = %q, want %q", n.Type, TypeBsdfPrincipled)
	}
	if n.Label != "Principled BSDF" {
		t.Errorf("Label = %q", n.Label)
	}
	if got := n.Input("Base Color").Value; got != (shader.Color{0.8, 0.8, 0.8, 1}) {
		t.Errorf("Base Color = %v", got)
	}
	if n.Output("BSDF") == nil {
		t.Error("missing BSDF output")
	}
	if got := n.Props["distribution"]; got != "MULTI_GGX" {
		t.Errorf("distribution = %v, want MULTI_GGX", got)
	}

	math, _ := r.Instantiate(TypeMath)
	if math.Input("Value_001") != math.Inputs[1] {
		t.Error("second Value input should be addressable by identifier")
	}

	_, err = r.Instantiate("ShaderNodeTexVoronoi")
	if !errors.Is(err, errors.ErrCodeUnsupportedNode) {
		t.Errorf("Instantiate(unknown) = %v, want UNSUPPORTED_NODE", err)
	}
}

func TestInstantiateSharesNoState(t *testing.T) {
	r := Default()
	a, _ := r.Instantiate(TypeRGB)
	b, _ := r.Instantiate(TypeRGB)
	p, _ := r.Property(TypeRGB, "color")
	if err := p.Set(a, []any{1.0, 0.0, 0.0}); err != nil {
		t.Fatal(err)
	}
	if got, _ := p.Get(b); got != (shader.Color{0.5, 0.5, 0.5, 1}) {
		t.Errorf("second node color = %v, want default", got)
	}
}

func TestWithout(t *testing.T) {
	full := Default()
	reduced := full.Without(TypeTexNoise, TypeMixRGB)

	if reduced.Supports(TypeTexNoise) || reduced.Supports("MIX_RGB") {
		t.Error("removed types should not be supported")
	}
	if !reduced.Supports(TypeMath) {
		t.Error("other types should remain")
	}
	if _, ok := reduced.Property(TypeMixRGB, "blend_type"); ok {
		t.Error("properties of removed types should be gone")
	}
	if !full.Supports(TypeTexNoise) {
		t.Error("Without must not modify the source registry")
	}
}

func TestPropertiesUnknownType(t *testing.T) {
	if got := Default().Properties("ShaderNodeTexWave"); got != nil {
		t.Errorf("Properties(unknown) = %v, want nil", got)
	}
}
