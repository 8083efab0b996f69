// Package nodes is the whitelist of node types and properties shadercopy
// knows how to convert.
//
// # Overview
//
// Every supported node type is described by a [TypeDef]: its identifier, the
// default label the host uses for auto-naming, its input and output sockets,
// and the per-type [Property] whitelist. Anything not listed here is outside
// the conversion contract and is skipped by the serializer and deserializer.
//
// Properties are reached through an explicit (type, name) lookup table
// rather than by reflecting over arbitrary node attributes, so every
// supported property can be enumerated and tested on its own:
//
//	p, ok := nodes.Default().Property("ShaderNodeMath", "operation")
//	if ok {
//	    v, _ := p.Get(node)      // "ADD"
//	    err := p.Set(node, "POWER")
//	}
//
// # Legacy identifiers
//
// Older documents use upper-case type names such as "BSDF_PRINCIPLED" or
// "MIX_RGB". [Normalize] maps them to current identifiers before lookup.
//
// # Host capability
//
// A [Registry] is immutable once built and safe for concurrent use. Host
// repositories are constructed with a registry; [Registry.Without] derives a
// reduced registry that models a host lacking some node types.
package nodes
