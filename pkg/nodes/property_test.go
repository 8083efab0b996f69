package nodes

import (
	"testing"

	"github.com/matzehuels/shadercopy/pkg/errors"
	"github.com/matzehuels/shadercopy/pkg/shader"
)

func TestPropertySet(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		prop    string
		value   any
		want    any
		wantErr bool
	}{
		{"enum", TypeMath, "operation", "POWER", "POWER", false},
		{"enum unknown value", TypeMath, "operation", "TELEPORT", "ADD", true},
		{"enum wrong shape", TypeMath, "operation", 3.0, "ADD", true},
		{"bool", TypeMath, "use_clamp", true, true, false},
		{"bool from number", TypeMixRGB, "use_clamp", 1.0, true, false},
		{"blend type", TypeMixRGB, "blend_type", "MULTIPLY", "MULTIPLY", false},
		{"image path", TypeTexImage, "image", "//textures/wood.png", "//textures/wood.png", false},
		{"image not a string", TypeTexImage, "image", []any{1.0}, "", true},
		{"interpolation", TypeTexImage, "interpolation", "Closest", "Closest", false},
		{"rgb color pads alpha", TypeRGB, "color", []any{1.0, 0.5, 0.0}, shader.Color{1, 0.5, 0, 1}, false},
		{"value", TypeValue, "value", 2.5, 2.5, false},
	}

	r := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := r.Instantiate(tt.typ)
			if err != nil {
				t.Fatal(err)
			}
			p, ok := r.Property(tt.typ, tt.prop)
			if !ok {
				t.Fatalf("property %s.%s not registered", tt.typ, tt.prop)
			}

			err = p.Set(n, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Set() error code = %s, want INVALID_INPUT", errors.GetCode(err))
			}

			got, ok := p.Get(n)
			if !ok {
				t.Fatal("Get() found no value")
			}
			if got != tt.want {
				t.Errorf("Get() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPropertyLookupUsesLegacyNames(t *testing.T) {
	if _, ok := Default().Property("MATH", "operation"); !ok {
		t.Error("legacy type name should resolve to the math accessor")
	}
	if _, ok := Default().Property(TypeMath, "blend_type"); ok {
		t.Error("blend_type is not whitelisted on math nodes")
	}
}

func TestPropertyGetMissing(t *testing.T) {
	p := enum("operation", "ADD", "ADD")
	n := shader.NewNode(TypeMath, "Math")
	if _, ok := p.Get(n); ok {
		t.Error("Get on a node without the property should report false")
	}
}
