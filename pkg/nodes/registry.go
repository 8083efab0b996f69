package nodes

import (
	"slices"
	"sort"

	"github.com/matzehuels/shadercopy/pkg/errors"
	"github.com/matzehuels/shadercopy/pkg/shader"
)

// SocketDef describes one socket of a node type.
type SocketDef struct {
	Name       string            // Display name
	Identifier string            // Stable identifier; empty means same as Name
	Kind       shader.SocketKind // Value shape
	Default    any               // Initial constant value for inputs
}

// TypeDef describes a supported node type.
type TypeDef struct {
	Type       string      // Host type identifier (e.g. "ShaderNodeBsdfPrincipled")
	Label      string      // Default label, used by the host for auto-naming
	Inputs     []SocketDef // Input sockets in host order
	Outputs    []SocketDef // Output sockets in host order
	Properties []Property  // Whitelisted properties
}

type propertyKey struct {
	Type string
	Name string
}

// Registry maps node type identifiers to their definitions and holds the
// (type, property) accessor table.
type Registry struct {
	types map[string]*TypeDef
	props map[propertyKey]Property
}

// New builds a registry from type definitions. Later definitions replace
// earlier ones with the same type.
func New(defs ...TypeDef) *Registry {
	r := &Registry{
		types: make(map[string]*TypeDef, len(defs)),
		props: make(map[propertyKey]Property),
	}
	for i := range defs {
		def := defs[i]
		r.types[def.Type] = &def
		for _, p := range def.Properties {
			r.props[propertyKey{def.Type, p.Name}] = p
		}
	}
	return r
}

var defaultRegistry = New(builtinTypes...)

// Default returns the registry of all built-in node types.
func Default() *Registry { return defaultRegistry }

// Lookup returns the definition for a type. Legacy identifiers are
// normalized first.
func (r *Registry) Lookup(typ string) (*TypeDef, bool) {
	def, ok := r.types[Normalize(typ)]
	return def, ok
}

// Supports reports whether the type (or its legacy alias) is registered.
func (r *Registry) Supports(typ string) bool {
	_, ok := r.Lookup(typ)
	return ok
}

// Types returns all registered type identifiers, sorted.
func (r *Registry) Types() []string {
	out := make([]string, 0, len(r.types))
	for t := range r.types {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Without returns a copy of the registry lacking the given types.
func (r *Registry) Without(types ...string) *Registry {
	defs := make([]TypeDef, 0, len(r.types))
	for _, t := range r.Types() {
		if slices.Contains(types, t) {
			continue
		}
		defs = append(defs, *r.types[t])
	}
	return New(defs...)
}

// Property looks up the accessor for a whitelisted property of a type.
func (r *Registry) Property(typ, name string) (Property, bool) {
	p, ok := r.props[propertyKey{Normalize(typ), name}]
	return p, ok
}

// Properties returns the whitelisted properties of a type in declaration order.
func (r *Registry) Properties(typ string) []Property {
	def, ok := r.Lookup(typ)
	if !ok {
		return nil
	}
	return def.Properties
}

// Instantiate creates a detached node of the given type with its sockets and
// properties set to their defaults. Unknown types return an
// UNSUPPORTED_NODE error.
func (r *Registry) Instantiate(typ string) (*shader.Node, error) {
	def, ok := r.Lookup(typ)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupportedNode, "unsupported node type %q", typ)
	}
	n := shader.NewNode(def.Type, def.Label)
	for _, s := range def.Inputs {
		n.AddInput(s.Name, s.Identifier, s.Kind, s.Default)
	}
	for _, s := range def.Outputs {
		n.AddOutput(s.Name, s.Identifier, s.Kind)
	}
	for _, p := range def.Properties {
		n.Props[p.Name] = p.Default
	}
	return n, nil
}
