package document

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// Document - Material Text Form
// =============================================================================

// Document is the serialized form of one material.
type Document struct {
	Name     string       `json:"name" yaml:"name"`
	UseNodes bool         `json:"use_nodes" yaml:"use_nodes"`
	Nodes    []NodeRecord `json:"nodes" yaml:"nodes"`
	Links    []LinkRecord `json:"links" yaml:"links"`
}

// New returns an empty document for a material.
func New(name string, useNodes bool) Document {
	return Document{
		Name:     name,
		UseNodes: useNodes,
		Nodes:    []NodeRecord{},
		Links:    []LinkRecord{},
	}
}

// Node returns the record with the given name.
func (d *Document) Node(name string) (*NodeRecord, bool) {
	for i := range d.Nodes {
		if d.Nodes[i].Name == name {
			return &d.Nodes[i], true
		}
	}
	return nil, false
}

// =============================================================================
// NodeRecord
// =============================================================================

// Location is a node's canvas position as [x, y].
type Location [2]float64

// NodeRecord is one node of a document.
type NodeRecord struct {
	Name       string         `json:"name" yaml:"name"`
	Type       string         `json:"type" yaml:"type"`
	Location   Location       `json:"location" yaml:"location,flow"`
	Inputs     map[string]any `json:"inputs" yaml:"inputs"`         // socket identifier → default value
	Properties map[string]any `json:"properties" yaml:"properties"` // whitelisted property → value
}

// =============================================================================
// LinkRecord
// =============================================================================

// LinkRecord connects an output socket of one node to an input socket of
// another, both referenced by node name.
type LinkRecord struct {
	FromNode   string    `json:"from_node" yaml:"from_node"`
	FromSocket SocketRef `json:"from_socket" yaml:"from_socket"`
	ToNode     string    `json:"to_node" yaml:"to_node"`
	ToSocket   SocketRef `json:"to_socket" yaml:"to_socket"`
}

// String formats the link as "from.socket -> to.socket".
func (l LinkRecord) String() string {
	return fmt.Sprintf("%s.%s -> %s.%s", l.FromNode, l.FromSocket, l.ToNode, l.ToSocket)
}

// SocketRef references a socket by identifier/name or by zero-based index.
// It encodes as a JSON string or integer respectively.
type SocketRef struct {
	key   string
	index int
	byIdx bool
}

// Ref references a socket by identifier or display name.
func Ref(key string) SocketRef { return SocketRef{key: key} }

// Index references a socket by position.
func Index(i int) SocketRef { return SocketRef{index: i, byIdx: true} }

// IsIndex reports whether the reference is positional.
func (r SocketRef) IsIndex() bool { return r.byIdx }

// Key returns the identifier or name; empty for positional references.
func (r SocketRef) Key() string { return r.key }

// Position returns the index; meaningful only when IsIndex is true.
func (r SocketRef) Position() int { return r.index }

// IsZero reports whether the reference is unset.
func (r SocketRef) IsZero() bool { return !r.byIdx && r.key == "" }

func (r SocketRef) String() string {
	if r.byIdx {
		return "[" + strconv.Itoa(r.index) + "]"
	}
	return r.key
}

func (r SocketRef) MarshalJSON() ([]byte, error) {
	if r.byIdx {
		return json.Marshal(r.index)
	}
	return json.Marshal(r.key)
}

func (r *SocketRef) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	ref, ok := socketRefFrom(v)
	if !ok {
		return fmt.Errorf("socket reference must be a string or non-negative integer, got %s", data)
	}
	*r = ref
	return nil
}

func (r SocketRef) MarshalYAML() (any, error) {
	if r.byIdx {
		return r.index, nil
	}
	return r.key, nil
}

func (r *SocketRef) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	ref, ok := socketRefFrom(v)
	if !ok {
		return fmt.Errorf("line %d: socket reference must be a string or non-negative integer", node.Line)
	}
	*r = ref
	return nil
}

func socketRefFrom(v any) (SocketRef, bool) {
	if s, ok := v.(string); ok {
		return Ref(s), s != ""
	}
	f, ok := number(v)
	if !ok || f < 0 || f != float64(int(f)) {
		return SocketRef{}, false
	}
	return Index(int(f)), true
}

func number(v any) (float64, bool) {
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
