package convert

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/shadercopy/pkg/document"
	"github.com/matzehuels/shadercopy/pkg/errors"
	"github.com/matzehuels/shadercopy/pkg/host"
	"github.com/matzehuels/shadercopy/pkg/nodes"
	"github.com/matzehuels/shadercopy/pkg/observability"
	"github.com/matzehuels/shadercopy/pkg/shader"
)

// DefaultMaterialName is used when neither the caller nor the document
// names the new material.
const DefaultMaterialName = "Deserialized_Material"

// Deserializer reconstructs materials from documents inside a repository.
type Deserializer struct {
	Repo     host.Repository
	Registry *nodes.Registry // property whitelist
	Logger   *log.Logger
}

// NewDeserializer creates a deserializer writing into repo. A nil registry
// means [nodes.Default]; a nil logger means log.Default().
func NewDeserializer(repo host.Repository, reg *nodes.Registry, logger *log.Logger) *Deserializer {
	if reg == nil {
		reg = nodes.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Deserializer{Repo: repo, Registry: reg, Logger: logger}
}

// Deserialize creates a new material from doc and saves it.
//
// The material is named name, or doc.Name when name is empty, or
// [DefaultMaterialName] when both are; the repository may add a ".NNN"
// suffix if the name is taken. Names longer than [errors.MaxNameLength] are
// shortened. A structurally invalid document or an unusable name returns a
// VALIDATION error before anything is created. Everything after that is
// best effort: records that cannot be reproduced are listed in the report. If
// a hard error still occurs, the partially built material is removed.
func (d *Deserializer) Deserialize(ctx context.Context, doc document.Document, name string) (m *shader.Material, report *Report, err error) {
	start := time.Now()
	report = &Report{}
	defer func() {
		matName, nodeCount, linkCount := name, 0, 0
		if m != nil {
			matName = m.Name
			nodeCount, linkCount = m.Stats()
		}
		observability.Convert().OnDeserialize(ctx, matName, nodeCount, linkCount, time.Since(start), err)
	}()

	if err := document.Validate(doc); err != nil {
		return nil, report, err
	}

	target := name
	if target == "" {
		target = doc.Name
	}
	if target == "" {
		target = DefaultMaterialName
	}
	target = host.ClampName(target, errors.MaxNameLength)
	if err := errors.ValidateMaterialName(target); err != nil {
		return nil, report, errors.Wrap(errors.ErrCodeValidation, err, "material name")
	}

	m, err = d.Repo.CreateMaterial(ctx, target)
	if err != nil {
		return nil, report, err
	}
	created := m.Name
	defer func() {
		if err != nil {
			d.discard(ctx, created)
		}
	}()
	m.UseNodes = doc.UseNodes
	m.Tree.Clear()

	byName := make(map[string]*shader.Node, len(doc.Nodes))
	for _, rec := range doc.Nodes {
		n, err := d.createNode(ctx, m, rec, report)
		if err != nil {
			return nil, report, err
		}
		if n != nil {
			byName[rec.Name] = n
		}
	}

	for _, l := range doc.Links {
		d.link(ctx, m, l, byName, report)
	}

	if err := d.Repo.Save(ctx, m); err != nil {
		return nil, report, err
	}

	d.Logger.Debug("deserialized material",
		"material", m.Name,
		"nodes", m.Tree.NodeCount(),
		"links", m.Tree.LinkCount(),
		"issues", report.Len())
	return m, report, nil
}

// discard removes a material left behind by a failed deserialize. It runs
// even when ctx is already cancelled.
func (d *Deserializer) discard(ctx context.Context, name string) {
	if err := d.Repo.Delete(context.WithoutCancel(ctx), name); err != nil {
		d.Logger.Warn("could not remove partial material", "material", name, "err", errors.UserMessage(err))
	}
}

// createNode reproduces one record. It returns a nil node without error
// when the record was skipped.
func (d *Deserializer) createNode(ctx context.Context, m *shader.Material, rec document.NodeRecord, report *Report) (*shader.Node, error) {
	typ := nodes.Normalize(rec.Type)
	if typ != rec.Type {
		d.Logger.Debug("normalized legacy node type", "from", rec.Type, "to", typ)
	}

	n, err := d.Repo.CreateNode(ctx, m, typ)
	if errors.Is(err, errors.ErrCodeUnsupportedNode) {
		issue := report.skipNode(rec.Name, "unsupported node type "+rec.Type)
		d.Logger.Warn("skipping node", "node", rec.Name, "type", rec.Type)
		observability.Convert().OnNodeSkipped(ctx, rec.Name, rec.Type, issue.Reason)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := m.Tree.RenameNode(n, rec.Name); err != nil {
		d.Logger.Warn("keeping host node name", "node", rec.Name, "host_name", n.Name(), "err", err)
	}
	n.Location = shader.Location{X: rec.Location[0], Y: rec.Location[1]}

	for _, key := range sortedKeys(rec.Properties) {
		subject := rec.Name + "." + key
		p, ok := d.Registry.Property(n.Type, key)
		if !ok {
			report.ignoreProperty(subject, "property is not whitelisted for "+n.Type)
			d.Logger.Warn("ignoring property", "property", subject)
			continue
		}
		if err := p.Set(n, rec.Properties[key]); err != nil {
			report.ignoreProperty(subject, errors.UserMessage(err))
			d.Logger.Warn("ignoring property", "property", subject, "err", errors.UserMessage(err))
		}
	}

	for _, key := range sortedKeys(rec.Inputs) {
		subject := rec.Name + "." + key
		sock := n.Input(key)
		if sock == nil {
			report.ignoreInput(subject, "no such input socket")
			d.Logger.Warn("ignoring input", "input", subject, "reason", "no such socket")
			continue
		}
		v, ok := shader.Coerce(sock.Kind, rec.Inputs[key])
		if !ok {
			reason := fmt.Sprintf("cannot use %v as %s", rec.Inputs[key], sock.Kind)
			report.ignoreInput(subject, reason)
			d.Logger.Warn("ignoring input", "input", subject, "reason", reason)
			continue
		}
		sock.Value = v
	}
	return n, nil
}

func (d *Deserializer) link(ctx context.Context, m *shader.Material, l document.LinkRecord, byName map[string]*shader.Node, report *Report) {
	drop := func(reason string) {
		issue := report.dropLink(l.String(), reason)
		d.Logger.Warn("dropping link", "link", l.String(), "reason", reason)
		observability.Convert().OnLinkDropped(ctx, l.String(), issue.Reason)
	}

	from, ok := byName[l.FromNode]
	if !ok {
		drop(fmt.Sprintf("node %q was not created", l.FromNode))
		return
	}
	to, ok := byName[l.ToNode]
	if !ok {
		drop(fmt.Sprintf("node %q was not created", l.ToNode))
		return
	}

	out := resolveSocket(from.Outputs, l.FromSocket)
	if out == nil {
		drop(fmt.Sprintf("node %q has no output %s", l.FromNode, l.FromSocket))
		return
	}
	in := resolveSocket(to.Inputs, l.ToSocket)
	if in == nil {
		drop(fmt.Sprintf("node %q has no input %s", l.ToNode, l.ToSocket))
		return
	}

	if _, err := d.Repo.Link(ctx, m, out, in); err != nil {
		drop(errors.UserMessage(err))
	}
}

// resolveSocket finds a socket by index, identifier, or display name.
func resolveSocket(sockets []*shader.Socket, ref document.SocketRef) *shader.Socket {
	if ref.IsIndex() {
		i := ref.Position()
		if i < 0 || i >= len(sockets) {
			return nil
		}
		return sockets[i]
	}
	for _, s := range sockets {
		if s.Identifier == ref.Key() {
			return s
		}
	}
	for _, s := range sockets {
		if s.Name == ref.Key() {
			return s
		}
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
