// Package sqlite provides a persistent [host.Repository] backed by a SQLite
// database, used by the CLI as its material library.
//
// Materials are stored across four tables:
//
//	materials  id (uuid), name (unique), use_nodes, timestamps
//	nodes      material_id, position, name, type, location, properties (JSON)
//	sockets    material_id, node, identifier, value (JSON)
//	links      material_id, position, from/to node and socket identifiers
//
// Loading a material re-instantiates every node from the registry and then
// applies the stored values, so sockets and properties that the registry no
// longer knows are dropped. Save rewrites a material's rows in a single
// transaction.
package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/matzehuels/shadercopy/pkg/errors"
	"github.com/matzehuels/shadercopy/pkg/host"
	"github.com/matzehuels/shadercopy/pkg/nodes"
	"github.com/matzehuels/shadercopy/pkg/shader"
)

var _ host.Repository = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS materials (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	use_nodes  INTEGER NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS nodes (
	material_id TEXT NOT NULL,
	position    INTEGER NOT NULL,
	name        TEXT NOT NULL,
	type        TEXT NOT NULL,
	x           REAL NOT NULL,
	y           REAL NOT NULL,
	properties  JSON NOT NULL,
	PRIMARY KEY (material_id, name)
);

CREATE TABLE IF NOT EXISTS sockets (
	material_id TEXT NOT NULL,
	node        TEXT NOT NULL,
	identifier  TEXT NOT NULL,
	value       JSON NOT NULL,
	PRIMARY KEY (material_id, node, identifier)
);

CREATE TABLE IF NOT EXISTS links (
	material_id TEXT NOT NULL,
	position    INTEGER NOT NULL,
	from_node   TEXT NOT NULL,
	from_socket TEXT NOT NULL,
	to_node     TEXT NOT NULL,
	to_socket   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_links_material ON links(material_id, position);
`

// Store is a SQLite-backed material library.
type Store struct {
	db   *sql.DB
	path string
	reg  *nodes.Registry

	// Logger receives debug messages about stored values the registry
	// rejects on load. Defaults to log.Default().
	Logger *log.Logger

	// create serializes CreateMaterial so name allocation and insert are atomic
	// within the process.
	create sync.Mutex
}

// Open opens (creating if needed) the library at path. A nil registry means
// [nodes.Default].
func Open(path string, reg *nodes.Registry) (*Store, error) {
	if reg == nil {
		reg = nodes.Default()
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStorage, err, "create library directory")
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "open sqlite %s", path)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "set journal mode")
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "create schema")
	}
	return &Store{db: db, path: path, reg: reg, Logger: log.Default()}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Materials(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM materials ORDER BY created_at, rowid`)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "list materials")
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStorage, err, "scan material")
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "list materials")
	}
	return names, nil
}

func (s *Store) Material(ctx context.Context, name string) (*shader.Material, error) {
	var (
		id       string
		useNodes bool
	)
	err := s.db.QueryRowContext(ctx, `SELECT id, use_nodes FROM materials WHERE name = ?`, name).Scan(&id, &useNodes)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, host.NotFound(name)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "load material %s", name)
	}

	m := shader.NewMaterial(name)
	m.UseNodes = useNodes
	if err := s.loadNodes(ctx, id, m); err != nil {
		return nil, err
	}
	if err := s.loadSockets(ctx, id, m); err != nil {
		return nil, err
	}
	if err := s.loadLinks(ctx, id, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Store) loadNodes(ctx context.Context, id string, m *shader.Material) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, type, x, y, properties FROM nodes WHERE material_id = ? ORDER BY position`, id)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "load nodes")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name, typ string
			x, y      float64
			rawProps  []byte
		)
		if err := rows.Scan(&name, &typ, &x, &y, &rawProps); err != nil {
			return errors.Wrap(errors.ErrCodeStorage, err, "scan node")
		}
		n, err := host.AddNode(s.reg, m, typ)
		if errors.Is(err, errors.ErrCodeUnsupportedNode) {
			s.Logger.Debug("dropping stored node", "material", m.Name, "node", name, "type", typ)
			continue
		}
		if err != nil {
			return err
		}
		if err := m.Tree.RenameNode(n, name); err != nil {
			return errors.Wrap(errors.ErrCodeStorage, err, "restore node name %s", name)
		}
		n.Location = shader.Location{X: x, Y: y}

		var props map[string]any
		if err := json.Unmarshal(rawProps, &props); err != nil {
			return errors.Wrap(errors.ErrCodeStorage, err, "decode properties of %s", name)
		}
		for key, v := range props {
			p, ok := s.reg.Property(typ, key)
			if !ok {
				s.Logger.Debug("dropping stored property", "material", m.Name, "node", name, "property", key, "reason", "not whitelisted")
				continue
			}
			if err := p.Set(n, v); err != nil {
				s.Logger.Debug("dropping stored property", "material", m.Name, "node", name, "property", key, "err", errors.UserMessage(err))
			}
		}
	}
	return rows.Err()
}

func (s *Store) loadSockets(ctx context.Context, id string, m *shader.Material) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT node, identifier, value FROM sockets WHERE material_id = ?`, id)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "load sockets")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			node, ident string
			raw         []byte
		)
		if err := rows.Scan(&node, &ident, &raw); err != nil {
			return errors.Wrap(errors.ErrCodeStorage, err, "scan socket")
		}
		n, ok := m.Tree.Node(node)
		if !ok {
			continue
		}
		sock := n.Input(ident)
		if sock == nil {
			continue
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return errors.Wrap(errors.ErrCodeStorage, err, "decode socket %s.%s", node, ident)
		}
		if coerced, ok := shader.Coerce(sock.Kind, v); ok {
			sock.Value = coerced
		}
	}
	return rows.Err()
}

func (s *Store) loadLinks(ctx context.Context, id string, m *shader.Material) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT from_node, from_socket, to_node, to_socket FROM links WHERE material_id = ? ORDER BY position`, id)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "load links")
	}
	defer rows.Close()

	for rows.Next() {
		var fromNode, fromSocket, toNode, toSocket string
		if err := rows.Scan(&fromNode, &fromSocket, &toNode, &toSocket); err != nil {
			return errors.Wrap(errors.ErrCodeStorage, err, "scan link")
		}
		from, ok1 := m.Tree.Node(fromNode)
		to, ok2 := m.Tree.Node(toNode)
		if !ok1 || !ok2 {
			continue
		}
		_, _ = m.Tree.AddLink(from.Output(fromSocket), to.Input(toSocket))
	}
	return rows.Err()
}

func (s *Store) CreateMaterial(ctx context.Context, name string) (*shader.Material, error) {
	s.create.Lock()
	defer s.create.Unlock()

	names, err := s.Materials(ctx)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(names))
	for _, n := range names {
		taken[n] = true
	}
	name = host.UniqueMaterialName(name, func(n string) bool { return taken[n] })

	m, err := host.NewMaterial(s.reg, name)
	if err != nil {
		return nil, err
	}
	if err := s.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Store) CreateNode(_ context.Context, m *shader.Material, nodeType string) (*shader.Node, error) {
	return host.AddNode(s.reg, m, nodeType)
}

func (s *Store) Link(_ context.Context, m *shader.Material, from, to *shader.Socket) (*shader.Link, error) {
	return host.Connect(m, from, to)
}

// Save replaces the stored state of the material with the given name, or
// inserts it when no such material exists.
func (s *Store) Save(ctx context.Context, m *shader.Material) (err error) {
	if m == nil {
		return errors.New(errors.ErrCodeInvalidInput, "nil material")
	}
	if err := errors.ValidateMaterialName(m.Name); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "begin transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UnixNano()
	var id string
	err = tx.QueryRowContext(ctx, `SELECT id FROM materials WHERE name = ?`, m.Name).Scan(&id)
	switch {
	case stderrors.Is(err, sql.ErrNoRows):
		id = uuid.NewString()
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO materials (id, name, use_nodes, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
			id, m.Name, m.UseNodes, now, now); err != nil {
			return errors.Wrap(errors.ErrCodeStorage, err, "insert material %s", m.Name)
		}
	case err != nil:
		return errors.Wrap(errors.ErrCodeStorage, err, "look up material %s", m.Name)
	default:
		if _, err = tx.ExecContext(ctx,
			`UPDATE materials SET use_nodes = ?, updated_at = ? WHERE id = ?`,
			m.UseNodes, now, id); err != nil {
			return errors.Wrap(errors.ErrCodeStorage, err, "update material %s", m.Name)
		}
	}

	if err = deleteRows(ctx, tx, id); err != nil {
		return err
	}
	if err = insertTree(ctx, tx, id, m.Tree); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "commit material %s", m.Name)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, name string) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "begin transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var id string
	err = tx.QueryRowContext(ctx, `SELECT id FROM materials WHERE name = ?`, name).Scan(&id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return host.NotFound(name)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "look up material %s", name)
	}
	if err = deleteRows(ctx, tx, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM materials WHERE id = ?`, id); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "delete material %s", name)
	}
	if err = tx.Commit(); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "commit delete %s", name)
	}
	return nil
}

func deleteRows(ctx context.Context, tx *sql.Tx, id string) error {
	for _, table := range []string{"nodes", "sockets", "links"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE material_id = ?`, table), id); err != nil {
			return errors.Wrap(errors.ErrCodeStorage, err, "clear %s", table)
		}
	}
	return nil
}

func insertTree(ctx context.Context, tx *sql.Tx, id string, tree *shader.Tree) error {
	if tree == nil {
		return nil
	}
	for i, n := range tree.Nodes() {
		props := make(map[string]any, len(n.Props))
		for k, v := range n.Props {
			props[k] = shader.Simplify(v)
		}
		rawProps, err := json.Marshal(props)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode properties of %s", n.Name())
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO nodes (material_id, position, name, type, x, y, properties) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, i, n.Name(), n.Type, n.Location.X, n.Location.Y, string(rawProps)); err != nil {
			return errors.Wrap(errors.ErrCodeStorage, err, "insert node %s", n.Name())
		}

		for _, sock := range n.Inputs {
			if !sock.HasDefault() {
				continue
			}
			raw, err := json.Marshal(shader.Simplify(sock.Value))
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "encode socket %s.%s", n.Name(), sock.Identifier)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO sockets (material_id, node, identifier, value) VALUES (?, ?, ?, ?)`,
				id, n.Name(), sock.Identifier, string(raw)); err != nil {
				return errors.Wrap(errors.ErrCodeStorage, err, "insert socket %s.%s", n.Name(), sock.Identifier)
			}
		}
	}

	for i, l := range tree.Links() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO links (material_id, position, from_node, from_socket, to_node, to_socket) VALUES (?, ?, ?, ?, ?, ?)`,
			id, i, l.From.Node().Name(), l.From.Identifier, l.To.Node().Name(), l.To.Identifier); err != nil {
			return errors.Wrap(errors.ErrCodeStorage, err, "insert link")
		}
	}
	return nil
}
