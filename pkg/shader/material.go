package shader

// Material is a named material with an optional node tree.
type Material struct {
	Name     string
	UseNodes bool
	Tree     *Tree
}

// NewMaterial creates a material with an empty tree and node usage disabled.
func NewMaterial(name string) *Material {
	return &Material{Name: name, Tree: NewTree()}
}

// Stats returns the node and link counts of the material's tree.
func (m *Material) Stats() (nodes, links int) {
	if m.Tree == nil {
		return 0, 0
	}
	return m.Tree.NodeCount(), m.Tree.LinkCount()
}
