package geometry

import (
	"fmt"

	vmath "github.com/Faultbox/vectorscope/pkg/math"
)

// span locates one solid's tables inside the arena.
type span struct {
	name                   string
	vertexOff, vertexCount int
	edgeOff, edgeCount     int
	orderOff               int
}

// Arena is a contiguous, immutable store holding every solid's tables.
// It is safe to share between any number of goroutines once built.
type Arena struct {
	vertices []vmath.Vec3
	edges    []Edge
	draw     []bool
	order    []uint16
	spans    []span
}

// NewArena validates and packs the given definitions. Vertices are
// normalized to unit length; a zero-length vertex is kept as is. Solid ids
// are assigned in argument order.
func NewArena(defs ...Definition) (*Arena, error) {
	a := &Arena{}
	for i, def := range defs {
		if err := validate(def); err != nil {
			return nil, fmt.Errorf("solid %d (%s): %w", i, def.Name, err)
		}
		a.add(def)
	}
	return a, nil
}

func validate(def Definition) error {
	if len(def.Vertices) == 0 || len(def.Edges) == 0 {
		return ErrEmpty
	}
	if len(def.Vertices) > MaxVertices {
		return fmt.Errorf("%d vertices, max %d: %w", len(def.Vertices), MaxVertices, ErrIndexRange)
	}
	if len(def.Order) != len(def.Edges) {
		return fmt.Errorf("order has %d entries for %d edges: %w", len(def.Order), len(def.Edges), ErrCountMismatch)
	}
	if def.Draw != nil && len(def.Draw) != len(def.Edges) {
		return fmt.Errorf("draw has %d flags for %d edges: %w", len(def.Draw), len(def.Edges), ErrCountMismatch)
	}
	for i, e := range def.Edges {
		if int(e.A) >= len(def.Vertices) || int(e.B) >= len(def.Vertices) {
			return fmt.Errorf("edge %d {%d, %d} with %d vertices: %w", i, e.A, e.B, len(def.Vertices), ErrIndexRange)
		}
	}
	seen := make([]bool, len(def.Edges))
	for k, id := range def.Order {
		if id < 0 || id >= len(def.Edges) {
			return fmt.Errorf("order[%d] = %d: %w", k, id, ErrNotPermutation)
		}
		if seen[id] {
			return fmt.Errorf("edge %d repeated at order[%d]: %w", id, k, ErrNotPermutation)
		}
		seen[id] = true
	}
	return nil
}

func (a *Arena) add(def Definition) {
	sp := span{
		name:        def.Name,
		vertexOff:   len(a.vertices),
		vertexCount: len(def.Vertices),
		edgeOff:     len(a.edges),
		edgeCount:   len(def.Edges),
		orderOff:    len(a.order),
	}

	for _, v := range def.Vertices {
		a.vertices = append(a.vertices, vmath.Vec3{X: v[0], Y: v[1], Z: v[2]}.Normalize())
	}
	a.edges = append(a.edges, def.Edges...)
	for i := range def.Edges {
		a.draw = append(a.draw, def.Draw == nil || def.Draw[i])
	}
	for _, id := range def.Order {
		a.order = append(a.order, uint16(id))
	}

	a.spans = append(a.spans, sp)
}

// Len returns the number of solids in the arena.
func (a *Arena) Len() int {
	return len(a.spans)
}

// Solid returns the handle for id. Out-of-range ids are clamped.
func (a *Arena) Solid(id SolidID) Solid {
	sp := a.spans[clampIndex(int(id), len(a.spans))]
	return Solid{
		name:     sp.name,
		vertices: a.vertices[sp.vertexOff : sp.vertexOff+sp.vertexCount : sp.vertexOff+sp.vertexCount],
		edges:    a.edges[sp.edgeOff : sp.edgeOff+sp.edgeCount : sp.edgeOff+sp.edgeCount],
		draw:     a.draw[sp.edgeOff : sp.edgeOff+sp.edgeCount : sp.edgeOff+sp.edgeCount],
		order:    a.order[sp.orderOff : sp.orderOff+sp.edgeCount : sp.orderOff+sp.edgeCount],
	}
}

// Lookup finds a solid by name.
func (a *Arena) Lookup(name string) (SolidID, bool) {
	for i, sp := range a.spans {
		if sp.name == name {
			return SolidID(i), true
		}
	}
	return 0, false
}
