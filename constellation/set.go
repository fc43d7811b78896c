// SPDX-License-Identifier: MIT
// Package: capsphere/constellation
//
// set.go: Capability, Set and the relayout policy.

package constellation

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/capsphere/core"
	"github.com/katalvlaran/capsphere/sphere"
)

// Capability is one scored, colored entry of the sphere.
type Capability struct {
	ID        string     `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Color     core.Color `json:"color" yaml:"color"`
	Magnitude float64    `json:"magnitude" yaml:"magnitude"`
}

// entry is a capability plus its cached placement.
type entry struct {
	capability Capability
	angles     sphere.Angles
	tip        r3.Vec
}

// Set is the live, ordered collection of capabilities.
type Set struct {
	mu      sync.RWMutex
	geom    sphere.Geometry
	order   []string          // insertion order
	entries map[string]*entry // ID → entry
}

// New returns an empty Set placing nodes with geom.
func New(geom sphere.Geometry) *Set {
	return &Set{
		geom:    geom,
		entries: make(map[string]*entry),
	}
}

// Geometry returns the geometry the set was created with.
func (s *Set) Geometry() sphere.Geometry { return s.geom }

// Add inserts a capability under a fresh random ID and returns that ID.
// Every node is laid out again.
// Complexity: O(n).
func (s *Set) Add(name string, color core.Color, magnitude float64) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.insert(Capability{ID: id, Name: name, Color: color, Magnitude: magnitude})

	return id
}

// AddWithID inserts a capability under a caller-chosen ID.
// Returns ErrEmptyID or ErrDuplicateID.
// Complexity: O(n).
func (s *Set) AddWithID(id, name string, color core.Color, magnitude float64) error {
	if id == "" {
		return fmt.Errorf("%s: %w", methodAddWithID, ErrEmptyID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; ok {
		return fmt.Errorf("%s: %q: %w", methodAddWithID, id, ErrDuplicateID)
	}
	s.insert(Capability{ID: id, Name: name, Color: color, Magnitude: magnitude})

	return nil
}

// Remove deletes a capability; remaining nodes are laid out again.
// Returns ErrNotFound for unknown IDs.
// Complexity: O(n).
func (s *Set) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return fmt.Errorf("%s: %q: %w", methodRemove, id, ErrNotFound)
	}
	delete(s.entries, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.relayout()

	return nil
}

// SetMagnitude updates one capability's score. Its angles are kept and only
// the tip radius changes; other nodes are untouched.
// Returns ErrNotFound for unknown IDs.
// Complexity: O(1).
func (s *Set) SetMagnitude(id string, magnitude float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return fmt.Errorf("%s: %q: %w", methodSetMagnitude, id, ErrNotFound)
	}
	e.capability.Magnitude = magnitude
	e.tip = sphere.TipPosition(e.angles, magnitude, s.geom)

	return nil
}

// Len returns the number of capabilities.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}

// Get returns the capability with the given ID.
func (s *Set) Get(id string) (Capability, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok {
		return Capability{}, false
	}

	return e.capability, true
}

// Capabilities returns a snapshot in insertion order.
func (s *Set) Capabilities() []Capability {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Capability, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entries[id].capability)
	}

	return out
}

// Angles returns each capability's current angles in insertion order.
func (s *Set) Angles() []sphere.Angles {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]sphere.Angles, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entries[id].angles)
	}

	return out
}

// Nodes returns one node per capability, positioned at its tip, in
// insertion order.
// Complexity: O(n).
func (s *Set) Nodes() []core.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Node, 0, len(s.order))
	for _, id := range s.order {
		e := s.entries[id]
		out = append(out, core.Node{
			ID:        id,
			Position:  e.tip,
			Color:     e.capability.Color,
			Magnitude: e.capability.Magnitude,
		})
	}

	return out
}

// Surfaces maps each capability ID to the point where its bar leaves the
// core sphere.
func (s *Set) Surfaces() map[string]r3.Vec {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]r3.Vec, len(s.order))
	for _, id := range s.order {
		out[id] = sphere.SurfacePosition(s.entries[id].angles, s.geom)
	}

	return out
}

// insert appends c and lays every node out again. Caller holds mu.
func (s *Set) insert(c Capability) {
	s.entries[c.ID] = &entry{capability: c}
	s.order = append(s.order, c.ID)
	s.relayout()
}

// relayout recomputes angles and tips for the current count. Caller holds mu.
func (s *Set) relayout() {
	angles := sphere.Layout(len(s.order))
	for i, id := range s.order {
		e := s.entries[id]
		e.angles = angles[i]
		e.tip = sphere.TipPosition(e.angles, e.capability.Magnitude, s.geom)
	}
}
