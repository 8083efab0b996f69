// Package host defines the material store the converters read from and write
// into.
//
// The host application owns a process-wide collection of materials. The
// serializer only needs lookup; the deserializer needs creation of materials
// and nodes, linking, and a final save. [Repository] captures exactly those
// operations so the converters can run against an in-memory store in tests
// (package memory) or the persistent library used by the CLI (package
// sqlite).
package host

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/matzehuels/shadercopy/pkg/errors"
	"github.com/matzehuels/shadercopy/pkg/nodes"
	"github.com/matzehuels/shadercopy/pkg/shader"
)

// Repository is the host's material store.
//
// Implementations must keep their index of materials safe for concurrent
// use. The materials they return are live, unsynchronized objects: mutating
// one and calling Save persists the change, and a single material must not be
// mutated from more than one goroutine at a time.
type Repository interface {
	// Material returns the named material, or a MATERIAL_NOT_FOUND error.
	Material(ctx context.Context, name string) (*shader.Material, error)

	// Materials lists material names in creation order.
	Materials(ctx context.Context) ([]string, error)

	// CreateMaterial creates a material. If name is taken the host picks the
	// next free "name.NNN". New materials are seeded with a Principled BSDF
	// linked to a Material Output, like the host does.
	CreateMaterial(ctx context.Context, name string) (*shader.Material, error)

	// CreateNode adds a node of the given type to a material's tree. Types the
	// host cannot create yield an UNSUPPORTED_NODE error.
	CreateNode(ctx context.Context, m *shader.Material, nodeType string) (*shader.Node, error)

	// Link connects an output socket to an input socket of the same tree.
	Link(ctx context.Context, m *shader.Material, from, to *shader.Socket) (*shader.Link, error)

	// Save persists the material's current state.
	Save(ctx context.Context, m *shader.Material) error

	// Delete removes a material, or returns MATERIAL_NOT_FOUND.
	Delete(ctx context.Context, name string) error
}

// Default node placement used when seeding a new material.
var (
	DefaultBSDFLocation   = shader.Location{X: 10, Y: 300}
	DefaultOutputLocation = shader.Location{X: 300, Y: 300}
)

// UniqueMaterialName returns base if taken reports it free, otherwise the
// first free "base.NNN". The result never exceeds [errors.MaxNameLength]:
// base is shortened on a rune boundary to make room for the suffix.
func UniqueMaterialName(base string, taken func(string) bool) string {
	base = ClampName(base, errors.MaxNameLength)
	if !taken(base) {
		return base
	}
	for i := 1; ; i++ {
		suffix := fmt.Sprintf(".%03d", i)
		candidate := ClampName(base, errors.MaxNameLength-len(suffix)) + suffix
		if !taken(candidate) {
			return candidate
		}
	}
}

// ClampName shortens name to at most limit bytes without splitting a rune.
func ClampName(name string, limit int) string {
	if len(name) <= limit {
		return name
	}
	if limit <= 0 {
		return ""
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}

// NewMaterial builds a detached material with the host's default tree.
func NewMaterial(reg *nodes.Registry, name string) (*shader.Material, error) {
	if err := errors.ValidateMaterialName(name); err != nil {
		return nil, err
	}
	m := shader.NewMaterial(name)
	if err := SeedDefaults(reg, m); err != nil {
		return nil, err
	}
	return m, nil
}

// SeedDefaults adds the default Principled BSDF and Material Output nodes to
// a material and links them. Hosts lacking either type seed nothing.
func SeedDefaults(reg *nodes.Registry, m *shader.Material) error {
	if !reg.Supports(nodes.TypeBsdfPrincipled) || !reg.Supports(nodes.TypeOutputMaterial) {
		return nil
	}
	bsdf, err := AddNode(reg, m, nodes.TypeBsdfPrincipled)
	if err != nil {
		return err
	}
	bsdf.Location = DefaultBSDFLocation

	output, err := AddNode(reg, m, nodes.TypeOutputMaterial)
	if err != nil {
		return err
	}
	output.Location = DefaultOutputLocation

	_, err = Connect(m, bsdf.Output("BSDF"), output.Input("Surface"))
	return err
}

// AddNode instantiates a node from the registry and attaches it to the
// material's tree.
func AddNode(reg *nodes.Registry, m *shader.Material, nodeType string) (*shader.Node, error) {
	if m == nil || m.Tree == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "material has no node tree")
	}
	n, err := reg.Instantiate(nodeType)
	if err != nil {
		return nil, err
	}
	if err := m.Tree.AddNode(n); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "add node %s", nodeType)
	}
	return n, nil
}

// Connect links two sockets of a material's tree. Tree errors are reported
// as PARTIAL_LINK.
func Connect(m *shader.Material, from, to *shader.Socket) (*shader.Link, error) {
	if m == nil || m.Tree == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "material has no node tree")
	}
	l, err := m.Tree.AddLink(from, to)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodePartialLink, err, "link rejected")
	}
	return l, nil
}

// NotFound returns the standard error for a missing material.
func NotFound(name string) error {
	return errors.New(errors.ErrCodeMaterialNotFound, "material %q not found", name)
}
