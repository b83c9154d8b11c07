package graph

import (
	"sync"

	"github.com/google/uuid"

	"github.com/tsawler/scoretext/score"
)

// Registrar receives the emitted entities
type Registrar interface {
	Register(e Entity)
}

// Graph is an in-memory registrar. It is safe for concurrent use.
type Graph struct {
	mu       sync.RWMutex
	entities []Entity
	byID     map[uuid.UUID]Entity
	byStaff  map[*score.Staff][]Entity
}

// New creates an empty graph
func New() *Graph {
	return &Graph{
		byID:    make(map[uuid.UUID]Entity),
		byStaff: make(map[*score.Staff][]Entity),
	}
}

// Register adds an entity to the graph
func (g *Graph) Register(e Entity) {
	if e == nil {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.entities = append(g.entities, e)
	g.byID[e.ID()] = e
	if e.Staff() != nil {
		g.byStaff[e.Staff()] = append(g.byStaff[e.Staff()], e)
	}
}

// Get returns the entity with the given identifier
func (g *Graph) Get(id uuid.UUID) (Entity, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.byID[id]
	return e, ok
}

// Entities returns the entities in registration order
func (g *Graph) Entities() []Entity {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Entity, len(g.entities))
	copy(out, g.entities)
	return out
}

// OnStaff returns the entities assigned to a staff, in registration order
func (g *Graph) OnStaff(staff *score.Staff) []Entity {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Entity, len(g.byStaff[staff]))
	copy(out, g.byStaff[staff])
	return out
}

// OfType returns the entities of one type, in registration order
func (g *Graph) OfType(t EntityType) []Entity {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Entity
	for _, e := range g.entities {
		if e.Type() == t {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of entities
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.entities)
}
