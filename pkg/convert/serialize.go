package convert

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/shadercopy/pkg/document"
	"github.com/matzehuels/shadercopy/pkg/errors"
	"github.com/matzehuels/shadercopy/pkg/host"
	"github.com/matzehuels/shadercopy/pkg/nodes"
	"github.com/matzehuels/shadercopy/pkg/observability"
	"github.com/matzehuels/shadercopy/pkg/shader"
)

// Serializer converts materials into documents.
//
// A Serializer holds no per-call state; one value can be shared by
// goroutines serializing different materials.
type Serializer struct {
	Registry *nodes.Registry
	Logger   *log.Logger
}

// NewSerializer creates a serializer. A nil registry means [nodes.Default];
// a nil logger means log.Default().
func NewSerializer(reg *nodes.Registry, logger *log.Logger) *Serializer {
	if reg == nil {
		reg = nodes.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Serializer{Registry: reg, Logger: logger}
}

// SerializeByName looks a material up in the repository and serializes it.
// A missing material returns a MATERIAL_NOT_FOUND error.
func (s *Serializer) SerializeByName(ctx context.Context, repo host.Repository, name string) (document.Document, *Report, error) {
	m, err := repo.Material(ctx, name)
	if err != nil {
		observability.Convert().OnSerialize(ctx, name, 0, 0, 0, err)
		return document.Document{}, &Report{}, err
	}
	return s.Serialize(ctx, m)
}

// Serialize converts a material into a document. It only reads the
// material. A nil material returns a NOT_FOUND error; unsupported nodes
// and the links touching them are left out and recorded in the report.
func (s *Serializer) Serialize(ctx context.Context, m *shader.Material) (doc document.Document, report *Report, err error) {
	start := time.Now()
	report = &Report{}
	name := ""
	if m != nil {
		name = m.Name
	}
	defer func() {
		observability.Convert().OnSerialize(ctx, name, len(doc.Nodes), len(doc.Links), time.Since(start), err)
	}()

	if m == nil {
		return document.Document{}, report, errors.New(errors.ErrCodeNotFound, "no material given")
	}

	doc = document.New(m.Name, m.UseNodes)
	if !m.UseNodes || m.Tree == nil {
		s.Logger.Debug("material does not use nodes", "material", m.Name)
		return doc, report, nil
	}

	kept := make(map[*shader.Node]bool, m.Tree.NodeCount())
	for _, n := range m.Tree.Nodes() {
		def, ok := s.Registry.Lookup(n.Type)
		if !ok {
			issue := report.skipNode(n.Name(), "unsupported node type "+n.Type)
			s.Logger.Warn("skipping node", "node", n.Name(), "type", n.Type)
			observability.Convert().OnNodeSkipped(ctx, n.Name(), n.Type, issue.Reason)
			continue
		}
		kept[n] = true
		doc.Nodes = append(doc.Nodes, s.record(def, n))
	}

	for _, l := range m.Tree.Links() {
		from, to := l.From.Node(), l.To.Node()
		rec := document.LinkRecord{
			FromNode:   from.Name(),
			FromSocket: document.Ref(l.From.Identifier),
			ToNode:     to.Name(),
			ToSocket:   document.Ref(l.To.Identifier),
		}
		if !kept[from] || !kept[to] {
			issue := report.dropLink(rec.String(), "endpoint node was skipped")
			s.Logger.Warn("dropping link", "link", rec.String())
			observability.Convert().OnLinkDropped(ctx, rec.String(), issue.Reason)
			continue
		}
		doc.Links = append(doc.Links, rec)
	}

	s.Logger.Debug("serialized material",
		"material", m.Name,
		"nodes", len(doc.Nodes),
		"links", len(doc.Links),
		"skipped", len(report.SkippedNodes))
	return doc, report, nil
}

func (s *Serializer) record(def *nodes.TypeDef, n *shader.Node) document.NodeRecord {
	rec := document.NodeRecord{
		Name:       n.Name(),
		Type:       def.Type,
		Location:   document.Location{n.Location.X, n.Location.Y},
		Inputs:     make(map[string]any),
		Properties: make(map[string]any),
	}
	for _, sock := range n.Inputs {
		if sock.HasDefault() && !sock.Linked() {
			rec.Inputs[sock.Identifier] = shader.Simplify(sock.Value)
		}
	}
	for _, p := range def.Properties {
		if v, ok := p.Get(n); ok {
			rec.Properties[p.Name] = shader.Simplify(v)
		}
	}
	return rec
}
