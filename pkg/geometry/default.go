package geometry

import (
	"fmt"
	"sync"
)

// Ids of the built-in solids inside the Default arena.
const (
	TetrahedronID SolidID = iota
	HexahedronID
	OctahedronID
	DodecahedronID
	IcosahedronID
	CubeSegmentsID
)

// PolyhedraCount is the number of platonic solids the polyhedra tracer
// selects between.
const PolyhedraCount = 5

// Builtin returns the built-in definitions in id order.
func Builtin() []Definition {
	return []Definition{
		Tetrahedron,
		Hexahedron,
		Octahedron,
		Dodecahedron,
		Icosahedron,
		CubeSegments,
	}
}

var (
	defaultOnce  sync.Once
	defaultArena *Arena
)

// Default returns the process-wide arena of built-in solids, building it on
// first use. A table that fails validation is a programming error and panics.
func Default() *Arena {
	defaultOnce.Do(func() {
		a, err := NewArena(Builtin()...)
		if err != nil {
			panic(fmt.Sprintf("geometry: built-in tables are invalid: %v", err))
		}
		defaultArena = a
	})
	return defaultArena
}
