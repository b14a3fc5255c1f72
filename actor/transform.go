package actor

import "github.com/go-gl/mathgl/mgl64"

// rotationEpsilon is the tolerance under which a rotation is treated as the identity
const rotationEpsilon = 1e-9

// Transform represents a position in 3D space
type Transform struct {
	Position        mgl64.Vec3
	Rotation        mgl64.Quat
	InverseRotation mgl64.Quat
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position:        mgl64.Vec3{0, 0, 0},
		Rotation:        mgl64.QuatIdent(),
		InverseRotation: mgl64.QuatIdent(),
	}
}

// NewTransformYaw places the transform at position, rotated by yaw degrees around +Y
func NewTransformYaw(position mgl64.Vec3, yaw float64) Transform {
	t := NewTransform()
	t.Position = position
	t.SetYaw(yaw)

	return t
}

// SetYaw replaces the rotation with a rotation of yaw degrees around +Y
func (t *Transform) SetYaw(yaw float64) {
	t.Rotation = mgl64.QuatRotate(mgl64.DegToRad(yaw), mgl64.Vec3{0, 1, 0})
	t.InverseRotation = t.Rotation.Conjugate()
}

// Translate moves the transform by delta
func (t *Transform) Translate(delta mgl64.Vec3) {
	t.Position = t.Position.Add(delta)
}

// IsUnrotated reports whether the rotation is the identity.
// A zero-value quaternion is treated as the identity.
func (t Transform) IsUnrotated() bool {
	q := t.Rotation
	if q.W == 0 && q.V.LenSqr() == 0 {
		return true
	}

	return q.V.LenSqr() < rotationEpsilon
}
