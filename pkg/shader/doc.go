// Package shader models the host application's material node graph.
//
// # Overview
//
// A [Material] owns a node [Tree]. The tree holds [Node] values in insertion
// order, each with typed input and output [Socket] values, and the [Link]
// values that connect an output socket to an input socket.
//
// The model mirrors the host's object model closely enough to round-trip a
// material through text:
//
//   - Node names are unique within a tree and follow the host's auto-naming
//     convention ("Mix", "Mix.001", "Mix.002", ...).
//   - An input socket accepts at most one incoming link; linking a second
//     output into the same input replaces the first link.
//   - Unlinked input sockets carry a constant default [Socket.Value].
//
// # Values
//
// Socket values are stored in their native shape:
//
//	KindFloat   float64
//	KindInt     int
//	KindBool    bool
//	KindColor   Color   ([4]float64, RGBA)
//	KindVector  Vector  ([3]float64)
//	KindString  string
//	KindShader  nil     (shader sockets carry no default)
//
// Use [Coerce] to convert loosely typed document primitives into a socket's
// shape and [Simplify] to convert a socket value back into JSON-friendly
// primitives.
//
// # Concurrency
//
// Trees are not safe for concurrent modification. Repositories that share
// materials across goroutines guard them externally.
package shader
