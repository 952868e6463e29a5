// Package params describes the host-facing parameters of each tracer kind:
// names, ranges, defaults, units and page grouping.
package params

import (
	"fmt"
	"strings"
)

// Unit tells the host how to display a raw value.
type Unit int

const (
	UnitNone Unit = iota
	UnitHz
	UnitDegrees
	UnitMicroseconds
	UnitEnum
)

// Suffix returns the display suffix for the unit.
func (u Unit) Suffix() string {
	switch u {
	case UnitHz:
		return " Hz"
	case UnitDegrees:
		return "°"
	case UnitMicroseconds:
		return " µs"
	default:
		return ""
	}
}

// Indices shared by every kind.
const (
	Frequency = iota
	RotX
	RotY
	RotZ
	Distance
	Projection
	Polarity
	XOut
	YOut
	IntOut
	BlankWindow
	BlankPhase
)

// Polyhedra-only index.
const Solid = BlankPhase + 1

// Cube-only indices.
const (
	Resolution = BlankPhase + 1 + iota
	AmpMod
	AmpCorse
	AmpFine
	AmpWave
	AmpPhase
)

// NumBuses is the number of host buses an output can be routed to.
const NumBuses = 28

// Descriptor describes one parameter.
type Descriptor struct {
	Name    string
	Min     int16
	Max     int16
	Default int16
	Unit    Unit
	Enum    []string
}

// Clamp limits raw to the descriptor's range.
func (d Descriptor) Clamp(raw int) int16 {
	if raw < int(d.Min) {
		return d.Min
	}
	if raw > int(d.Max) {
		return d.Max
	}
	return int16(raw)
}

// Format renders raw for display.
func (d Descriptor) Format(raw int16) string {
	if d.Unit == UnitEnum {
		i := int(raw - d.Min)
		if i >= 0 && i < len(d.Enum) {
			return d.Enum[i]
		}
	}
	return fmt.Sprintf("%d%s", raw, d.Unit.Suffix())
}

// Page groups parameters for display.
type Page struct {
	Name    string
	Indices []int
}

// Table is the full parameter set of one tracer kind.
type Table struct {
	Params []Descriptor
	Pages  []Page
}

// Len returns the number of parameters.
func (t *Table) Len() int {
	return len(t.Params)
}

// Lookup returns the index of the named parameter. Matching ignores case
// and spaces, so "xout" finds "X Out".
func (t *Table) Lookup(name string) (int, bool) {
	key := normalize(name)
	for i, d := range t.Params {
		if normalize(d.Name) == key {
			return i, true
		}
	}
	return 0, false
}

// Descriptor returns the descriptor of parameter idx.
func (t *Table) Descriptor(idx int) (Descriptor, bool) {
	if idx < 0 || idx >= len(t.Params) {
		return Descriptor{}, false
	}
	return t.Params[idx], true
}

// Clamp limits raw to the range of parameter idx. Unknown indices report
// false.
func (t *Table) Clamp(idx, raw int) (int16, bool) {
	if idx < 0 || idx >= len(t.Params) {
		return 0, false
	}
	return t.Params[idx].Clamp(raw), true
}

// Defaults returns the default raw value of every parameter.
func (t *Table) Defaults() []int16 {
	out := make([]int16, len(t.Params))
	for i, d := range t.Params {
		out[i] = d.Default
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", ""))
}
