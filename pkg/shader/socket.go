package shader

import (
	"math"
)

// SocketKind identifies the value shape a socket carries.
type SocketKind string

// Socket kinds.
const (
	KindFloat  SocketKind = "float"
	KindInt    SocketKind = "int"
	KindBool   SocketKind = "bool"
	KindColor  SocketKind = "color"
	KindVector SocketKind = "vector"
	KindString SocketKind = "string"
	KindShader SocketKind = "shader"
)

// Color is an RGBA color value.
type Color [4]float64

// Vector is a 3D vector value.
type Vector [3]float64

// Socket is an input or output connection point on a node.
type Socket struct {
	Name       string     // Display name (not necessarily unique on a node)
	Identifier string     // Stable identifier, unique per direction on a node
	Kind       SocketKind // Value shape
	Value      any        // Constant default; nil for shader sockets and outputs
	Output     bool       // True for output sockets

	node  *Node
	links int
}

// Node returns the node owning the socket.
func (s *Socket) Node() *Node { return s.node }

// Linked reports whether at least one link is attached to the socket.
func (s *Socket) Linked() bool { return s.links > 0 }

// HasDefault reports whether the socket carries a constant default value
// that can be captured in a document.
func (s *Socket) HasDefault() bool {
	return !s.Output && s.Kind != KindShader && s.Value != nil
}

// Coerce converts a loosely typed value (as decoded from JSON or YAML) into
// the native shape of kind. It returns false when the value cannot be
// represented.
//
// Colors accept 3-tuples (alpha is padded to 1.0) and 4-tuples. Vectors accept
// 3-tuples and 4-tuples (the fourth component is dropped). Numbers convert
// between float, int and bool sockets.
func Coerce(kind SocketKind, v any) (any, bool) {
	switch kind {
	case KindFloat:
		if f, ok := toFloat(v); ok {
			return f, true
		}
		if b, ok := v.(bool); ok {
			return boolToFloat(b), true
		}
	case KindInt:
		if f, ok := toFloat(v); ok {
			return int(math.Round(f)), true
		}
		if b, ok := v.(bool); ok {
			return int(boolToFloat(b)), true
		}
	case KindBool:
		if b, ok := v.(bool); ok {
			return b, true
		}
		if f, ok := toFloat(v); ok {
			return f != 0, true
		}
	case KindColor:
		xs, ok := toFloats(v)
		if !ok {
			return nil, false
		}
		switch len(xs) {
		case 3:
			return Color{xs[0], xs[1], xs[2], 1.0}, true
		case 4:
			return Color{xs[0], xs[1], xs[2], xs[3]}, true
		}
	case KindVector:
		xs, ok := toFloats(v)
		if !ok {
			return nil, false
		}
		if len(xs) == 3 || len(xs) == 4 {
			return Vector{xs[0], xs[1], xs[2]}, true
		}
	case KindString:
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return nil, false
}

// Simplify converts a native socket value into JSON-friendly primitives:
// colors become 4-element and vectors 3-element float slices, and every
// number becomes a float64.
func Simplify(v any) any {
	switch x := v.(type) {
	case Color:
		return []float64{x[0], x[1], x[2], x[3]}
	case Vector:
		return []float64{x[0], x[1], x[2]}
	case float32:
		return float64(x)
	case int:
		return float64(x)
	default:
		return v
	}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	}
	return 0, false
}

func toFloats(v any) ([]float64, bool) {
	switch x := v.(type) {
	case []float64:
		return x, true
	case Color:
		return x[:], true
	case Vector:
		return x[:], true
	case []any:
		out := make([]float64, len(x))
		for i, e := range x {
			f, ok := toFloat(e)
			if !ok {
				return nil, false
			}
			out[i] = f
		}
		return out, true
	}
	return nil, false
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
