// Package convert turns host materials into documents and back.
//
// # Serializing
//
// [Serializer.Serialize] walks a material's node tree and produces a
// [document.Document]: one record per node of a supported type, with its
// location, every unlinked input default, and the whitelisted properties of
// its type, plus one record per link between kept nodes.
//
// # Deserializing
//
// [Deserializer.Deserialize] creates a new material through a
// [host.Repository], clears the host's default nodes, recreates each record,
// applies inputs and properties, and reconnects links by node name.
//
// # Best effort
//
// Both directions favour getting as much of a material across as possible.
// Unsupported node types, unknown sockets, rejected property values and
// links whose endpoints are gone are recorded in a [Report] and logged at
// warn level; they never fail the call. Only a missing material, a
// malformed document, or a storage failure returns an error.
//
//	s := convert.NewSerializer(nil, logger)
//	doc, report, err := s.SerializeByName(ctx, repo, "Wood")
//
//	d := convert.NewDeserializer(repo, nil, logger)
//	m, report, err := d.Deserialize(ctx, doc, "")
package convert
