package math

import (
	"testing"
)

func TestIdentityRotation(t *testing.T) {
	r := IdentityRotation()
	points := []Vec3{
		{1, 0, 0},
		{0.3, -0.7, 0.2},
		{-0.57735, 0.57735, -0.57735},
	}
	for _, p := range points {
		if got := r.Apply(p); got != p {
			t.Errorf("identity Apply(%v) = %v", p, got)
		}
	}
}

func TestRotationZeroDegreesIsIdentity(t *testing.T) {
	var r Rotation
	r.SetX(0)
	r.SetY(0)
	r.SetZ(0)
	p := Vec3{0.1, 0.2, 0.3}
	if got := r.Apply(p); got != p {
		t.Errorf("Apply at 0 degrees = %v, want %v", got, p)
	}
}

func TestRotationMatchesMatrixComposition(t *testing.T) {
	tests := []struct {
		x, y, z float32
	}{
		{90, 0, 0},
		{0, 90, 0},
		{0, 0, 90},
		{30, 45, 60},
		{360, 180, 270},
		{12, 300, 7},
	}

	p := Vec3{0.6, -0.3, 0.74}
	for _, tt := range tests {
		var r Rotation
		r.SetX(tt.x)
		r.SetY(tt.y)
		r.SetZ(tt.z)

		m := RotateZ(tt.z * DegToRad).Mul(RotateY(tt.y * DegToRad)).Mul(RotateX(tt.x * DegToRad))
		want := m.TransformVec3(p)
		got := r.Apply(p)

		if abs(got.X-want.X) > 1e-5 || abs(got.Y-want.Y) > 1e-5 || abs(got.Z-want.Z) > 1e-5 {
			t.Errorf("rotation (%v,%v,%v): got %v, want %v", tt.x, tt.y, tt.z, got, want)
		}
	}
}

func TestRotationPreservesLength(t *testing.T) {
	var r Rotation
	r.SetX(33)
	r.SetY(71)
	r.SetZ(205)

	p := Vec3{1, 1, 1}.Normalize()
	l := r.Apply(p).Length()
	if l < 0.9999 || l > 1.0001 {
		t.Errorf("rotated length = %v, want 1", l)
	}
}
