// Package projection maps rotated 3D points onto the scope's X/Y plane.
package projection

import (
	"math"

	vmath "github.com/Faultbox/vectorscope/pkg/math"
)

// Mode selects the projection model.
type Mode int

const (
	Orthographic Mode = iota
	Perspective
)

// String returns the mode name.
func (m Mode) String() string {
	if m == Perspective {
		return "Perspective"
	}
	return "Orthographic"
}

// Polarity selects the sense of the perspective depth cue.
type Polarity int

const (
	Normal Polarity = iota
	Inverted
)

// String returns the polarity name.
func (p Polarity) String() string {
	if p == Inverted {
		return "Inverted"
	}
	return "Normal"
}

const (
	// OutputScale converts unit coordinates to volts.
	OutputScale = 5.0

	// MinDistance keeps the camera outside the unit sphere.
	MinDistance = 0.111

	// DefaultDistance matches the default Distance parameter (500).
	DefaultDistance = 5.0

	// divisorEpsilon replaces an exactly zero perspective divisor.
	divisorEpsilon = 0.0001
)

// DistanceFromRaw maps the integer Distance parameter (hundredths) onto a
// camera distance, clamped to MinDistance.
func DistanceFromRaw(raw int) float32 {
	d := float32(raw) * 0.01
	if d < MinDistance {
		d = MinDistance
	}
	return d
}

// Camera holds the projection settings of one tracer instance.
type Camera struct {
	Mode     Mode
	Polarity Polarity
	Distance float32
}

// DefaultCamera returns the camera used by a freshly constructed instance.
func DefaultCamera() Camera {
	return Camera{
		Mode:     Perspective,
		Polarity: Normal,
		Distance: DefaultDistance,
	}
}

// Project returns the scope coordinates of p in volts.
//
// Inverted polarity scales by (z+d)/d instead of d/(z+d). It is a deliberate
// ratio flip for the alternate depth effect, not a second projection model.
func (c Camera) Project(p vmath.Vec3) vmath.Vec2 {
	if c.Mode != Perspective {
		return vmath.Vec2{X: OutputScale * p.X, Y: OutputScale * p.Y}
	}

	d := c.Distance
	if d <= 0 {
		d = MinDistance
	}
	div := p.Z + d

	var scale float32
	if c.Polarity == Inverted {
		scale = div / d
	} else {
		if div == 0 {
			div = divisorEpsilon
		}
		scale = d / div
	}
	return vmath.Vec2{X: OutputScale * p.X * scale, Y: OutputScale * p.Y * scale}
}

// Quantize snaps each coordinate of p to a grid of resolution levels
// spanning [-1, 1]. A resolution of zero or less returns p unchanged.
func Quantize(p vmath.Vec3, resolution int) vmath.Vec3 {
	if resolution <= 0 {
		return p
	}
	q := float32(resolution) * 0.5
	return vmath.Vec3{
		X: snap(p.X, q),
		Y: snap(p.Y, q),
		Z: snap(p.Z, q),
	}
}

func snap(v, q float32) float32 {
	return float32(math.Round(float64((v+1)*q)))/q - 1
}
