package math

import "math"

// DegToRad converts degrees to radians.
const DegToRad = math.Pi / 180

// Rotation holds cached sine/cosine pairs for the three axis rotations.
// Angles change rarely compared to the sample rate, so the trig is done in
// the setters and Apply only multiplies.
type Rotation struct {
	sinX, cosX float32
	sinY, cosY float32
	sinZ, cosZ float32
}

// IdentityRotation returns a rotation with all angles at zero.
func IdentityRotation() Rotation {
	return Rotation{cosX: 1, cosY: 1, cosZ: 1}
}

func sinCos(degrees float32) (float32, float32) {
	s, c := math.Sincos(float64(degrees) * DegToRad)
	return float32(s), float32(c)
}

// SetX sets the X axis angle in degrees.
func (r *Rotation) SetX(degrees float32) {
	r.sinX, r.cosX = sinCos(degrees)
}

// SetY sets the Y axis angle in degrees.
func (r *Rotation) SetY(degrees float32) {
	r.sinY, r.cosY = sinCos(degrees)
}

// SetZ sets the Z axis angle in degrees.
func (r *Rotation) SetZ(degrees float32) {
	r.sinZ, r.cosZ = sinCos(degrees)
}

// Apply rotates p around X, then Y, then Z.
func (r *Rotation) Apply(p Vec3) Vec3 {
	// X
	y1 := r.cosX*p.Y - r.sinX*p.Z
	z1 := r.sinX*p.Y + r.cosX*p.Z
	x1 := p.X

	// Y
	x2 := r.cosY*x1 + r.sinY*z1
	z2 := -r.sinY*x1 + r.cosY*z1

	// Z
	return Vec3{
		X: r.cosZ*x2 - r.sinZ*y1,
		Y: r.sinZ*x2 + r.cosZ*y1,
		Z: z2,
	}
}
