package tracer

import (
	"fmt"
	"strings"

	"github.com/Faultbox/vectorscope/internal/engine/blanking"
	"github.com/Faultbox/vectorscope/internal/engine/params"
)

// Kind selects one of the tracer variants.
type Kind int

const (
	// KindPolyhedra draws one of five platonic solids picked by the Solid
	// parameter. Its blank window follows the live draw frequency.
	KindPolyhedra Kind = iota

	// KindCube draws the cube as sixteen segments, four of them hidden
	// reposition moves. Its blank window is pinned to a fixed reference
	// and it adds quantization and amplitude modulation.
	KindCube
)

// String returns the kind's short name as used in config files.
func (k Kind) String() string {
	if k == KindCube {
		return "cube"
	}
	return "polyhedra"
}

// Title returns the display name of the kind.
func (k Kind) Title() string {
	if k == KindCube {
		return "CubeWireNoCull"
	}
	return "PolyWire"
}

// Params returns the parameter table of the kind.
func (k Kind) Params() *params.Table {
	if k == KindCube {
		return params.Cube
	}
	return params.Polyhedra
}

// BlankPolicy returns the blank window reference policy of the kind.
func (k Kind) BlankPolicy() blanking.Policy {
	if k == KindCube {
		return blanking.FixedReference
	}
	return blanking.LiveReference
}

// ParseKind parses a kind name ("polyhedra", "cube" or a display name).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "polyhedra", "poly", "polywire", "":
		return KindPolyhedra, nil
	case "cube", "cubewirenocull":
		return KindCube, nil
	}
	return 0, fmt.Errorf("unknown tracer kind %q", s)
}
