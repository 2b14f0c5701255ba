package scene

import (
	"fmt"
	"sort"
	"sync"

	"github.com/fabworks/conduit"
)

// Anchor is a persisted mating-reference primitive.
type Anchor struct {
	Port conduit.Port
	Role string
}

// Prim is one stage primitive: a mesh with metadata, anchors and an optional
// material binding.
type Prim struct {
	Mesh     *conduit.Mesh
	Metadata map[string]any
	Anchors  []Anchor
	Material string
}

// Stage is an in-memory scene store implementing Writer. It is safe for
// concurrent use; generation itself is pure, the stage is the only shared
// resource.
type Stage struct {
	mu    sync.Mutex
	prims map[string]*Prim
	looks map[string]Material
}

// NewStage returns an empty stage.
func NewStage() *Stage {
	return &Stage{
		prims: make(map[string]*Prim),
		looks: make(map[string]Material),
	}
}

func (s *Stage) prim(path string) *Prim {
	p, ok := s.prims[path]
	if !ok {
		p = &Prim{Metadata: make(map[string]any)}
		s.prims[path] = p
	}
	return p
}

// WriteMesh implements Writer.
func (s *Stage) WriteMesh(path string, m *conduit.Mesh) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("writing mesh at %s: %w", path, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prim(path).Mesh = m
	return nil
}

// WriteAnchor implements Writer.
func (s *Stage) WriteAnchor(path string, port conduit.Port, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.prim(path)
	for i, a := range p.Anchors {
		if a.Role == role {
			p.Anchors[i] = Anchor{Port: port, Role: role}
			return nil
		}
	}
	p.Anchors = append(p.Anchors, Anchor{Port: port, Role: role})
	return nil
}

// SetMetadata implements Writer.
func (s *Stage) SetMetadata(path string, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prim(path).Metadata[key] = value
	return nil
}

// Metadata returns a copy of the metadata stored at path, or nil when the
// primitive does not exist.
func (s *Stage) Metadata(path string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.prims[path]
	if !ok {
		return nil
	}
	md := make(map[string]any, len(p.Metadata))
	for k, v := range p.Metadata {
		md[k] = v
	}
	return md
}

// Prim returns the primitive stored at path, or nil.
func (s *Stage) Prim(path string) *Prim {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prims[path]
}

// Remove deletes the primitive at path. Regeneration removes the old
// primitive before writing the new one.
func (s *Stage) Remove(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.prims, path)
}

// Paths returns the sorted primitive paths on the stage.
func (s *Stage) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	paths := make([]string, 0, len(s.prims))
	for p := range s.prims {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
