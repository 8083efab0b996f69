// Package document defines the text form of a material: the [Document] and
// its JSON and YAML codecs.
//
// # Format
//
//	{
//	  "name": "M",
//	  "use_nodes": true,
//	  "nodes": [
//	    {"name": "Output", "type": "ShaderNodeOutputMaterial", "location": [0, 0],
//	     "inputs": {}, "properties": {}},
//	    {"name": "BSDF", "type": "ShaderNodeBsdfPrincipled", "location": [-200, 0],
//	     "inputs": {"Base Color": [0.8, 0.2, 0.2, 1.0]}, "properties": {}}
//	  ],
//	  "links": [
//	    {"from_node": "BSDF", "from_socket": "BSDF", "to_node": "Output", "to_socket": "Surface"}
//	  ]
//	}
//
// All four top-level fields are required. Node names are unique within a
// document and are the join key for links. Link sockets are referenced by
// identifier, display name, or zero-based index.
//
// # Parsing
//
// [Parse] and [ParseYAML] decode text and check its structure, returning a
// VALIDATION error that lists every problem found (see [Issues]). Documents
// written by older exporters, which nest nodes and links under
// "node_tree" and list inputs as socket records, are lifted into the current
// layout before checking.
//
//	doc, err := document.Parse(data)
//	if errors.Is(err, errors.ErrCodeValidation) {
//	    // reject the paste
//	}
//
// # Encoding
//
// [Marshal] produces JSON (compact or indented) with map keys sorted, so
// equal documents encode to identical bytes. [MarshalYAML] produces the YAML
// rendition with the same field names.
package document
