// Package geometry holds the read-only wireframe tables the tracer draws:
// normalized vertices, edge lists and traversal orders for every solid,
// packed into a single arena and addressed through typed handles.
package geometry

import (
	"errors"

	vmath "github.com/Faultbox/vectorscope/pkg/math"
)

// Validation errors returned by NewArena.
var (
	ErrEmpty          = errors.New("solid has no vertices or edges")
	ErrCountMismatch  = errors.New("table length mismatch")
	ErrIndexRange     = errors.New("index out of range")
	ErrNotPermutation = errors.New("traversal order is not a permutation of the edge list")
)

// MaxVertices is the largest vertex count a solid may have. Edge endpoints
// are stored as uint8.
const MaxVertices = 256

// Edge is a pair of vertex indices. The pen travels from A to B.
type Edge struct {
	A, B uint8
}

// Definition is the raw, compile-time description of one solid.
type Definition struct {
	Name     string
	Vertices [][3]float32
	Edges    []Edge
	// Order lists edge indices in drawing order.
	Order []int
	// Draw flags each edge as visible. Nil means every edge is drawn.
	// Reposition moves are stored as edges with Draw false.
	Draw []bool
}

// SolidID identifies a solid inside an Arena.
type SolidID int

// Solid is a view of one solid's tables inside an Arena. It is a small value
// type; lookups never allocate.
type Solid struct {
	name     string
	vertices []vmath.Vec3
	edges    []Edge
	draw     []bool
	order    []uint16
}

// Name returns the solid's name.
func (s Solid) Name() string { return s.name }

// VertexCount returns the number of vertices.
func (s Solid) VertexCount() int { return len(s.vertices) }

// EdgeCount returns the number of edges.
func (s Solid) EdgeCount() int { return len(s.edges) }

// Len returns the traversal length, which equals the edge count.
func (s Solid) Len() int { return len(s.order) }

// Vertex returns the normalized vertex i.
func (s Solid) Vertex(i int) vmath.Vec3 {
	return s.vertices[clampIndex(i, len(s.vertices))]
}

// Edge returns edge i in list order.
func (s Solid) Edge(i int) Edge {
	return s.edges[clampIndex(i, len(s.edges))]
}

// OrderAt returns the edge id drawn at traversal position k.
func (s Solid) OrderAt(k int) int {
	return int(s.order[clampIndex(k, len(s.order))])
}

// EdgeAt returns the edge drawn at traversal position k and whether it is
// visible. k is clamped into range.
func (s Solid) EdgeAt(k int) (Edge, bool) {
	id := s.order[clampIndex(k, len(s.order))]
	return s.edges[id], s.draw[id]
}

// Step returns both endpoints of the edge at traversal position k and its
// draw flag. k is clamped into range.
func (s Solid) Step(k int) (a, b vmath.Vec3, draw bool) {
	e, draw := s.EdgeAt(k)
	return s.vertices[e.A], s.vertices[e.B], draw
}

// EulerianGaps counts the traversal steps whose end vertex is not the start
// vertex of the following step, wrapping around at the end of the cycle.
// Zero means the traversal is a closed Eulerian circuit.
func EulerianGaps(s Solid) int {
	gaps := 0
	n := s.Len()
	for k := 0; k < n; k++ {
		cur, _ := s.EdgeAt(k)
		next, _ := s.EdgeAt((k + 1) % n)
		if cur.B != next.A {
			gaps++
		}
	}
	return gaps
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
