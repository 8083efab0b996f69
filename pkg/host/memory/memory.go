// Package memory provides an in-memory [host.Repository].
//
// It stands in for the host application's data store in tests and when
// shadercopy is embedded as a library. Constructing it with a reduced
// registry (see [nodes.Registry.Without]) models a host that lacks some node
// types.
//
// Creating, listing, saving and deleting may run concurrently. Editing the
// contents of one material from several goroutines is the caller's to
// serialize.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/matzehuels/shadercopy/pkg/errors"
	"github.com/matzehuels/shadercopy/pkg/host"
	"github.com/matzehuels/shadercopy/pkg/nodes"
	"github.com/matzehuels/shadercopy/pkg/shader"
)

var _ host.Repository = (*Store)(nil)

// Store keeps materials in a map guarded by a mutex. The mutex covers the
// index only; the materials it hands out are shared and unsynchronized.
type Store struct {
	mu        sync.RWMutex
	reg       *nodes.Registry
	materials map[string]*shader.Material
	order     []string
}

// New creates an empty store. A nil registry means [nodes.Default].
func New(reg *nodes.Registry) *Store {
	if reg == nil {
		reg = nodes.Default()
	}
	return &Store{reg: reg, materials: make(map[string]*shader.Material)}
}

// Registry returns the node registry the store creates nodes from.
func (s *Store) Registry() *nodes.Registry { return s.reg }

func (s *Store) Material(_ context.Context, name string) (*shader.Material, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.materials[name]
	if !ok {
		return nil, host.NotFound(name)
	}
	return m, nil
}

func (s *Store) Materials(context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.order), nil
}

func (s *Store) CreateMaterial(_ context.Context, name string) (*shader.Material, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = host.UniqueMaterialName(name, func(n string) bool {
		_, ok := s.materials[n]
		return ok
	})
	m, err := host.NewMaterial(s.reg, name)
	if err != nil {
		return nil, err
	}
	s.materials[name] = m
	s.order = append(s.order, name)
	return m, nil
}

func (s *Store) CreateNode(_ context.Context, m *shader.Material, nodeType string) (*shader.Node, error) {
	return host.AddNode(s.reg, m, nodeType)
}

func (s *Store) Link(_ context.Context, m *shader.Material, from, to *shader.Socket) (*shader.Link, error) {
	return host.Connect(m, from, to)
}

// Save registers the material under its name. Materials created by
// CreateMaterial are already registered, so saving them is a no-op.
func (s *Store) Save(_ context.Context, m *shader.Material) error {
	if m == nil {
		return errors.New(errors.ErrCodeInvalidInput, "nil material")
	}
	if err := errors.ValidateMaterialName(m.Name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.materials[m.Name]; ok {
		if existing != m {
			return errors.New(errors.ErrCodeStorage, "material %q already exists", m.Name)
		}
		return nil
	}
	s.materials[m.Name] = m
	s.order = append(s.order, m.Name)
	return nil
}

func (s *Store) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.materials[name]; !ok {
		return host.NotFound(name)
	}
	delete(s.materials, name)
	s.order = slices.DeleteFunc(s.order, func(n string) bool { return n == name })
	return nil
}

// Put stores a material built outside the store, replacing any material of
// the same name. It is intended for test fixtures.
func (s *Store) Put(m *shader.Material) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.materials[m.Name]; !ok {
		s.order = append(s.order, m.Name)
	}
	s.materials[m.Name] = m
}
