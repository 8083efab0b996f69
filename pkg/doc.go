// Package pkg provides the core libraries for shadercopy.
//
// # Overview
//
// Shadercopy moves material node graphs between a host application and plain
// text. A material's shader node tree is serialized into a JSON (or YAML)
// document that can travel through the clipboard, a file or a chat message,
// and a new, equivalent material is rebuilt from that document on the other
// side. The pkg directory is organized into these areas:
//
//  1. [shader] - The node graph model: materials, trees, nodes, sockets, links
//  2. [nodes] - The registry of supported node types and property accessors
//  3. [host] - The material store the converters work against
//  4. [document] - The text form of a material and its codecs
//  5. [convert] - Serializer and deserializer
//  6. [transport] - Clipboard backends and clipboard history
//
// # Architecture
//
// The data flow of a copy and a paste:
//
//	host material (host.Repository)
//	         ↓
//	    [convert] Serializer
//	         ↓
//	    [document] Document → JSON / YAML text
//	         ↓
//	    [transport] clipboard + history ([cache])
//	         ↓
//	    [document] Parse (validation)
//	         ↓
//	    [convert] Deserializer → new host material
//
// # Quick Start
//
//	lib, _ := sqlite.Open(path, nodes.Default())
//	doc, report, _ := convert.NewSerializer(nil, logger).SerializeByName(ctx, lib, "Wood")
//	text, _ := transport.CopyToText(doc, transport.DefaultOptions())
//
//	doc, _ = transport.PasteFromText(text)
//	m, report, _ := convert.NewDeserializer(lib, nil, logger).Deserialize(ctx, doc, "")
//
// # Main Packages
//
// [host/memory] and [host/sqlite] implement [host.Repository]: an in-process
// store for tests and dry runs, and the persistent material library used by
// the CLI.
//
// [render/nodelink] draws documents as Graphviz diagrams.
//
// [cache] provides the TTL key-value caches behind the clipboard history.
//
// [config], [errors], [observability] and [buildinfo] carry the ambient
// concerns: TOML configuration, coded errors, instrumentation hooks and
// version metadata.
//
// # Testing
//
//	go test ./...
//
// [shader]: https://pkg.go.dev/github.com/matzehuels/shadercopy/pkg/shader
// [nodes]: https://pkg.go.dev/github.com/matzehuels/shadercopy/pkg/nodes
// [host]: https://pkg.go.dev/github.com/matzehuels/shadercopy/pkg/host
// [host/memory]: https://pkg.go.dev/github.com/matzehuels/shadercopy/pkg/host/memory
// [host/sqlite]: https://pkg.go.dev/github.com/matzehuels/shadercopy/pkg/host/sqlite
// [document]: https://pkg.go.dev/github.com/matzehuels/shadercopy/pkg/document
// [convert]: https://pkg.go.dev/github.com/matzehuels/shadercopy/pkg/convert
// [transport]: https://pkg.go.dev/github.com/matzehuels/shadercopy/pkg/transport
// [cache]: https://pkg.go.dev/github.com/matzehuels/shadercopy/pkg/cache
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/shadercopy/pkg/render/nodelink
// [config]: https://pkg.go.dev/github.com/matzehuels/shadercopy/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/shadercopy/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/shadercopy/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/shadercopy/pkg/buildinfo
package pkg
