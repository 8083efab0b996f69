package document

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/shadercopy/pkg/errors"
)

// =============================================================================
// Validation Issues
// =============================================================================

// Issue is one structural problem in a document.
type Issue struct {
	Path    string // Location in the document, e.g. "nodes[2].location"
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Issues lists every structural problem found in a document. It is the
// cause of the VALIDATION errors returned by this package.
type Issues []Issue

func (is Issues) Error() string {
	parts := make([]string, len(is))
	for i, issue := range is {
		parts[i] = issue.String()
	}
	return strings.Join(parts, "; ")
}

func (is *Issues) add(path, format string, args ...any) {
	*is = append(*is, Issue{Path: path, Message: fmt.Sprintf(format, args...)})
}

func invalid(issues Issues) error {
	return errors.Wrap(errors.ErrCodeValidation, issues, "invalid document")
}

// IssuesOf extracts the structural issues from a VALIDATION error.
func IssuesOf(err error) Issues {
	var is Issues
	if stderrors.As(err, &is) {
		return is
	}
	return nil
}

// =============================================================================
// Parsing API
// =============================================================================

// Parse decodes and checks a JSON document.
func Parse(data []byte) (Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, errors.New(errors.ErrCodeValidation, "empty document")
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeValidation, err, "invalid JSON")
	}
	return FromValue(raw)
}

// ParseYAML decodes and checks a YAML document.
func ParseYAML(data []byte) (Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, errors.New(errors.ErrCodeValidation, "empty document")
	}
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeValidation, err, "invalid YAML")
	}
	return FromValue(raw)
}

// FromValue checks a generically decoded document (maps, slices and
// primitives, as produced by JSON or YAML decoders) and converts it.
func FromValue(raw any) (Document, error) {
	top, ok := raw.(map[string]any)
	if !ok {
		return Document{}, invalid(Issues{{Message: "document must be an object"}})
	}
	liftLegacy(top)

	var issues Issues
	doc := Document{Nodes: []NodeRecord{}, Links: []LinkRecord{}}

	for _, key := range []string{"name", "use_nodes", "nodes", "links"} {
		if _, ok := top[key]; !ok {
			issues.add("", "missing required field %q", key)
		}
	}

	if v, ok := top["name"]; ok {
		if s, ok := v.(string); ok {
			doc.Name = s
		} else {
			issues.add("name", "must be a string")
		}
	}
	if v, ok := top["use_nodes"]; ok {
		if b, ok := v.(bool); ok {
			doc.UseNodes = b
		} else {
			issues.add("use_nodes", "must be a boolean")
		}
	}
	if v, ok := top["nodes"]; ok {
		if list, ok := v.([]any); ok {
			for i, item := range list {
				if rec, ok := parseNode(fmt.Sprintf("nodes[%d]", i), item, &issues); ok {
					doc.Nodes = append(doc.Nodes, rec)
				}
			}
		} else {
			issues.add("nodes", "must be an array")
		}
	}
	if v, ok := top["links"]; ok {
		if list, ok := v.([]any); ok {
			for i, item := range list {
				if rec, ok := parseLink(fmt.Sprintf("links[%d]", i), item, &issues); ok {
					doc.Links = append(doc.Links, rec)
				}
			}
		} else {
			issues.add("links", "must be an array")
		}
	}

	checkNames(doc, &issues)
	if len(issues) > 0 {
		return Document{}, invalid(issues)
	}
	return doc, nil
}

// Validate checks a document built in code. It applies the same rules as
// parsing, except that the presence of top-level fields cannot be observed.
func Validate(doc Document) error {
	var issues Issues
	for i, n := range doc.Nodes {
		path := fmt.Sprintf("nodes[%d]", i)
		if n.Name == "" {
			issues.add(path+".name", "must be a non-empty string")
		}
		if n.Type == "" {
			issues.add(path+".type", "must be a non-empty string")
		}
	}
	for i, l := range doc.Links {
		path := fmt.Sprintf("links[%d]", i)
		if l.FromNode == "" {
			issues.add(path+".from_node", "must be a non-empty string")
		}
		if l.ToNode == "" {
			issues.add(path+".to_node", "must be a non-empty string")
		}
		if l.FromSocket.IsZero() {
			issues.add(path+".from_socket", "must be a socket name or index")
		}
		if l.ToSocket.IsZero() {
			issues.add(path+".to_socket", "must be a socket name or index")
		}
		if l.FromSocket.IsIndex() && l.FromSocket.Position() < 0 {
			issues.add(path+".from_socket", "index must not be negative")
		}
		if l.ToSocket.IsIndex() && l.ToSocket.Position() < 0 {
			issues.add(path+".to_socket", "index must not be negative")
		}
	}
	checkNames(doc, &issues)
	if len(issues) > 0 {
		return invalid(issues)
	}
	return nil
}

// =============================================================================
// Internal Implementation
// =============================================================================

func checkNames(doc Document, issues *Issues) {
	seen := make(map[string]int, len(doc.Nodes))
	for i, n := range doc.Nodes {
		if n.Name == "" {
			continue
		}
		if first, dup := seen[n.Name]; dup {
			issues.add(fmt.Sprintf("nodes[%d].name", i), "duplicate node name %q (first used by nodes[%d])", n.Name, first)
			continue
		}
		seen[n.Name] = i
	}
}

func parseNode(path string, v any, issues *Issues) (NodeRecord, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		issues.add(path, "must be an object")
		return NodeRecord{}, false
	}
	rec := NodeRecord{Inputs: map[string]any{}, Properties: map[string]any{}}
	valid := true

	rec.Name, ok = nonEmptyString(obj["name"])
	if !ok {
		issues.add(path+".name", "must be a non-empty string")
		valid = false
	}
	rec.Type, ok = nonEmptyString(obj["type"])
	if !ok {
		issues.add(path+".type", "must be a non-empty string")
		valid = false
	}

	if loc, present := obj["location"]; present && loc != nil {
		xs, ok := loc.([]any)
		if !ok || len(xs) != 2 {
			issues.add(path+".location", "must be an array of 2 numbers")
			valid = false
		} else {
			for i, x := range xs {
				f, ok := number(x)
				if !ok {
					issues.add(fmt.Sprintf("%s.location[%d]", path, i), "must be a number")
					valid = false
					continue
				}
				rec.Location[i] = f
			}
		}
	}

	for _, field := range []string{"inputs", "properties"} {
		val, present := obj[field]
		if !present || val == nil {
			continue
		}
		m, ok := val.(map[string]any)
		if !ok {
			issues.add(path+"."+field, "must be an object")
			valid = false
			continue
		}
		dst := rec.Inputs
		if field == "properties" {
			dst = rec.Properties
		}
		for k, x := range m {
			dst[k] = normalizeValue(x)
		}
	}
	return rec, valid
}

func parseLink(path string, v any, issues *Issues) (LinkRecord, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		issues.add(path, "must be an object")
		return LinkRecord{}, false
	}
	var rec LinkRecord
	valid := true

	if rec.FromNode, ok = nonEmptyString(obj["from_node"]); !ok {
		issues.add(path+".from_node", "must be a non-empty string")
		valid = false
	}
	if rec.ToNode, ok = nonEmptyString(obj["to_node"]); !ok {
		issues.add(path+".to_node", "must be a non-empty string")
		valid = false
	}
	if rec.FromSocket, ok = socketRefFrom(obj["from_socket"]); !ok {
		issues.add(path+".from_socket", "must be a socket name or non-negative index")
		valid = false
	}
	if rec.ToSocket, ok = socketRefFrom(obj["to_socket"]); !ok {
		issues.add(path+".to_socket", "must be a socket name or non-negative index")
		valid = false
	}
	return rec, valid
}

func nonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok && s != ""
}

// normalizeValue converts numbers to float64 and all-number arrays to
// []float64 so that decoded documents compare equal to serialized ones.
func normalizeValue(v any) any {
	if f, ok := number(v); ok {
		return f
	}
	xs, ok := v.([]any)
	if !ok {
		return v
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		f, ok := number(x)
		if !ok {
			return v
		}
		out[i] = f
	}
	return out
}

// liftLegacy rewrites the layout written by older exporters in place:
// nodes and links nested under "node_tree", and inputs given as a list of
// socket records carrying "identifier" and "default_value".
func liftLegacy(top map[string]any) {
	tree, ok := top["node_tree"].(map[string]any)
	if !ok {
		return
	}
	if _, has := top["nodes"]; !has {
		if nodes, ok := tree["nodes"]; ok {
			top["nodes"] = nodes
		}
	}
	if _, has := top["links"]; !has {
		if links, ok := tree["links"]; ok {
			top["links"] = links
		}
	}
	if _, has := top["use_nodes"]; !has {
		top["use_nodes"] = true
	}
	delete(top, "node_tree")

	nodes, _ := top["nodes"].([]any)
	for _, item := range nodes {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		delete(obj, "outputs")
		if props, ok := obj["properties"].(map[string]any); ok {
			for k := range props {
				if strings.HasPrefix(k, "input_") && strings.HasSuffix(k, "_default") {
					delete(props, k)
				}
			}
		}
		sockets, ok := obj["inputs"].([]any)
		if !ok {
			continue
		}
		inputs := make(map[string]any, len(sockets))
		for _, s := range sockets {
			rec, ok := s.(map[string]any)
			if !ok {
				continue
			}
			val, has := rec["default_value"]
			if !has {
				continue
			}
			key, _ := rec["identifier"].(string)
			if key == "" {
				key, _ = rec["name"].(string)
			}
			if key != "" {
				inputs[key] = val
			}
		}
		obj["inputs"] = inputs
	}
}
