package renderer

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	maxPitch    = 89.5
	defaultNear = 0.1
	defaultFar  = 1000.0
)

// Camera is a first-person camera described by yaw and pitch in degrees.
// Yaw is measured from +X towards +Z, pitch from the horizon towards +Y.
type Camera struct {
	Position core.Vec3
	Yaw      float32
	Pitch    float32
	VFov     float32 // Vertical field of view in degrees
	Near     float32
	Far      float32
}

// NewCamera creates a camera at position looking at lookAt
func NewCamera(position, lookAt core.Vec3, vfov float64) *Camera {
	c := &Camera{
		Position: position,
		VFov:     float32(vfov),
		Near:     defaultNear,
		Far:      defaultFar,
	}
	c.LookAt(lookAt)
	return c
}

// LookAt turns the camera towards target
func (c *Camera) LookAt(target core.Vec3) {
	forward := target.Subtract(c.Position).Normalize()
	if forward.LengthSquared() == 0 {
		return
	}
	c.Yaw = math32.Atan2(float32(forward.Z), float32(forward.X)) * 180 / math32.Pi
	c.Pitch = clampPitch(math32.Asin(float32(forward.Y)) * 180 / math32.Pi)
}

// Forward returns the unit view direction
func (c *Camera) Forward() core.Vec3 {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	cosPitch := math32.Cos(pitch)
	return core.NewVec3(
		float64(cosPitch*math32.Cos(yaw)),
		float64(math32.Sin(pitch)),
		float64(cosPitch*math32.Sin(yaw)),
	)
}

// Right returns the unit vector to the right of the view direction
func (c *Camera) Right() core.Vec3 {
	return c.Forward().Cross(core.NewVec3(0, 1, 0)).Normalize()
}

// Up returns the camera's up vector
func (c *Camera) Up() core.Vec3 {
	return c.Right().Cross(c.Forward())
}

// Rotate turns the camera by the given yaw and pitch deltas in degrees.
// Pitch is clamped short of straight up and down.
func (c *Camera) Rotate(deltaYaw, deltaPitch float32) {
	c.Yaw = math32.Mod(c.Yaw+deltaYaw, 360)
	c.Pitch = clampPitch(c.Pitch + deltaPitch)
}

// Move translates the camera along its horizontal forward and right axes and
// the world up axis.
func (c *Camera) Move(forward, right, up float64) {
	f := c.Forward()
	f = core.NewVec3(f.X, 0, f.Z).Normalize()
	r := c.Right()
	r = core.NewVec3(r.X, 0, r.Z).Normalize()

	c.Position = c.Position.
		Add(f.Multiply(forward)).
		Add(r.Multiply(right)).
		Add(core.NewVec3(0, up, 0))
}

// ViewMatrix returns the right-handed look-at matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	eye := toVec3f(c.Position)
	return mgl32.LookAtV(eye, eye.Add(toVec3f(c.Forward())), mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection for the given aspect ratio
func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.VFov), aspect, c.Near, c.Far)
}

func clampPitch(p float32) float32 {
	return math32.Max(-maxPitch, math32.Min(maxPitch, p))
}

func toVec3f(v core.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func fromVec3f(v mgl32.Vec3) core.Vec3 {
	return core.NewVec3(float64(v[0]), float64(v[1]), float64(v[2]))
}
