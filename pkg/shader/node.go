package shader

// Location is a node's position on the editor canvas.
type Location struct {
	X float64
	Y float64
}

// Node is a processing node in a material's tree.
//
// The zero value is not usable; create nodes with [NewNode] and add them to a
// tree with [Tree.AddNode], which assigns the unique name.
type Node struct {
	Type     string         // Node type identifier (e.g. "ShaderNodeMath")
	Label    string         // Default display label, used for auto-naming
	Location Location       // Canvas position
	Inputs   []*Socket      // Input sockets in declaration order
	Outputs  []*Socket      // Output sockets in declaration order
	Props    map[string]any // Per-type property values, keyed by property name

	name string
	tree *Tree
}

// NewNode creates a detached node of the given type.
func NewNode(typ, label string) *Node {
	return &Node{
		Type:  typ,
		Label: label,
		Props: make(map[string]any),
	}
}

// Name returns the node's unique name within its tree.
// Detached nodes return an empty name.
func (n *Node) Name() string { return n.name }

// AddInput appends an input socket carrying the given default value.
// An empty identifier defaults to the name.
func (n *Node) AddInput(name, identifier string, kind SocketKind, value any) *Socket {
	if identifier == "" {
		identifier = name
	}
	s := &Socket{Name: name, Identifier: identifier, Kind: kind, Value: value, node: n}
	n.Inputs = append(n.Inputs, s)
	return s
}

// AddOutput appends an output socket.
// An empty identifier defaults to the name.
func (n *Node) AddOutput(name, identifier string, kind SocketKind) *Socket {
	if identifier == "" {
		identifier = name
	}
	s := &Socket{Name: name, Identifier: identifier, Kind: kind, Output: true, node: n}
	n.Outputs = append(n.Outputs, s)
	return s
}

// Input finds an input socket by identifier, falling back to the first
// socket whose display name matches.
func (n *Node) Input(key string) *Socket { return findSocket(n.Inputs, key) }

// Output finds an output socket by identifier, falling back to the first
// socket whose display name matches.
func (n *Node) Output(key string) *Socket { return findSocket(n.Outputs, key) }

// InputAt returns the input socket at index i, or nil when out of range.
func (n *Node) InputAt(i int) *Socket { return socketAt(n.Inputs, i) }

// OutputAt returns the output socket at index i, or nil when out of range.
func (n *Node) OutputAt(i int) *Socket { return socketAt(n.Outputs, i) }

func findSocket(sockets []*Socket, key string) *Socket {
	for _, s := range sockets {
		if s.Identifier == key {
			return s
		}
	}
	for _, s := range sockets {
		if s.Name == key {
			return s
		}
	}
	return nil
}

func socketAt(sockets []*Socket, i int) *Socket {
	if i < 0 || i >= len(sockets) {
		return nil
	}
	return sockets[i]
}
