package nodes

import (
	"slices"

	"github.com/matzehuels/shadercopy/pkg/errors"
	"github.com/matzehuels/shadercopy/pkg/shader"
)

// Property is a whitelisted per-type node property and its accessor.
type Property struct {
	Name    string            // Host attribute name (e.g. "blend_type")
	Kind    shader.SocketKind // Value shape; enums are strings
	Values  []string          // Allowed values for enums; empty means unrestricted
	Default any               // Value on a freshly created node
}

// IsEnum reports whether the property only accepts a fixed set of strings.
func (p Property) IsEnum() bool { return len(p.Values) > 0 }

// Get reads the property from a node.
func (p Property) Get(n *shader.Node) (any, bool) {
	v, ok := n.Props[p.Name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Set coerces v into the property's shape and writes it to the node.
// Values of the wrong shape and enum values outside the allowed set are
// rejected with an INVALID_INPUT error; the node is left unchanged.
func (p Property) Set(n *shader.Node, v any) error {
	coerced, ok := shader.Coerce(p.Kind, v)
	if !ok {
		return errors.New(errors.ErrCodeInvalidInput, "property %s: cannot use %v as %s", p.Name, v, p.Kind)
	}
	if p.IsEnum() && !slices.Contains(p.Values, coerced.(string)) {
		return errors.New(errors.ErrCodeInvalidInput, "property %s: %q is not one of %v", p.Name, coerced, p.Values)
	}
	n.Props[p.Name] = coerced
	return nil
}

func enum(name, def string, values ...string) Property {
	return Property{Name: name, Kind: shader.KindString, Values: values, Default: def}
}

func flag(name string, def bool) Property {
	return Property{Name: name, Kind: shader.KindBool, Default: def}
}

func text(name, def string) Property {
	return Property{Name: name, Kind: shader.KindString, Default: def}
}

func value(name string, kind shader.SocketKind, def any) Property {
	return Property{Name: name, Kind: kind, Default: def}
}
