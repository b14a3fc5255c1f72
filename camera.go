package boxcollide

import "github.com/go-gl/mathgl/mgl64"

// Camera is a perspective camera looking from Position at Target
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
	// Fovy is the vertical field of view in degrees
	Fovy float64
}

// Translate moves position and target together, keeping the view direction
func (c *Camera) Translate(delta mgl64.Vec3) {
	c.Position = c.Position.Add(delta)
	c.Target = c.Target.Add(delta)
}

// View returns the look-at matrix of the camera
func (c Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// Projection returns the perspective matrix for the given aspect ratio
func (c Camera) Projection(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.Fovy), aspect, 0.01, 1000)
}
