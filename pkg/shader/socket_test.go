package shader

import (
	"reflect"
	"testing"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name   string
		kind   SocketKind
		in     any
		want   any
		wantOK bool
	}{
		{"float", KindFloat, 0.25, 0.25, true},
		{"float from int", KindFloat, 2, 2.0, true},
		{"float from bool", KindFloat, true, 1.0, true},
		{"float from string", KindFloat, "x", nil, false},
		{"int rounds", KindInt, 2.6, 3, true},
		{"bool", KindBool, false, false, true},
		{"bool from number", KindBool, 1.0, true, true},
		{"rgb pads alpha", KindColor, []any{0.8, 0.2, 0.2}, Color{0.8, 0.2, 0.2, 1}, true},
		{"rgba", KindColor, []any{0.8, 0.2, 0.2, 0.5}, Color{0.8, 0.2, 0.2, 0.5}, true},
		{"rgba from floats", KindColor, []float64{1, 0, 0, 1}, Color{1, 0, 0, 1}, true},
		{"color wrong length", KindColor, []any{1.0, 2.0}, nil, false},
		{"color bad element", KindColor, []any{1.0, "a", 0.0}, nil, false},
		{"color from scalar", KindColor, 0.5, nil, false},
		{"vector", KindVector, []any{1.0, 2.0, 3.0}, Vector{1, 2, 3}, true},
		{"vector drops fourth", KindVector, []any{1.0, 2.0, 3.0, 1.0}, Vector{1, 2, 3}, true},
		{"vector too short", KindVector, []any{1.0}, nil, false},
		{"string", KindString, "//textures/wood.png", "//textures/wood.png", true},
		{"string from number", KindString, 1.0, nil, false},
		{"shader never", KindShader, 1.0, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Coerce(tt.kind, tt.in)
			if ok != tt.wantOK {
				t.Fatalf("Coerce ok = %v, want %v", ok, tt.wantOK)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Coerce = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"color", Color{1, 0.5, 0, 1}, []float64{1, 0.5, 0, 1}},
		{"vector", Vector{0, 0, 1}, []float64{0, 0, 1}},
		{"float32", float32(0.5), 0.5},
		{"float", 0.8, 0.8},
		{"int", 3, 3.0},
		{"string", "LINEAR", "LINEAR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Simplify(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Simplify = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestCoerceSimplifyInverse(t *testing.T) {
	values := map[SocketKind]any{
		KindFloat:  0.3,
		KindInt:    4,
		KindBool:   true,
		KindColor:  Color{0.1, 0.2, 0.3, 0.4},
		KindVector: Vector{1, -1, 0},
		KindString: "OBJECT",
	}
	for kind, v := range values {
		got, ok := Coerce(kind, Simplify(v))
		if !ok || !reflect.DeepEqual(got, v) {
			t.Errorf("%s: Coerce(Simplify(%v)) = %v, %v", kind, v, got, ok)
		}
	}
}
