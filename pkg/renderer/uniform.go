package renderer

import (
	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
)

// JitterOffsets are the sub-pixel offsets cycled through frame by frame for
// temporal anti-aliasing: the first 8 points of the Halton (2, 3) sequence,
// centred on the pixel.
var JitterOffsets = [8]mgl32.Vec2{
	{1.0/2 - 0.5, 1.0/3 - 0.5},
	{1.0/4 - 0.5, 2.0/3 - 0.5},
	{3.0/4 - 0.5, 1.0/9 - 0.5},
	{1.0/8 - 0.5, 4.0/9 - 0.5},
	{5.0/8 - 0.5, 7.0/9 - 0.5},
	{3.0/8 - 0.5, 2.0/9 - 0.5},
	{7.0/8 - 0.5, 5.0/9 - 0.5},
	{1.0/16 - 0.5, 8.0/9 - 0.5},
}

// CameraUniform is the per-frame camera state shared by every pixel task:
// current and previous matrices and pose, plus the frame counter.
type CameraUniform struct {
	ViewProjection    mgl32.Mat4
	View              mgl32.Mat4
	Projection        mgl32.Mat4
	InvViewProjection mgl32.Mat4
	InvView           mgl32.Mat4
	InvProjection     mgl32.Mat4

	PrevViewProjection mgl32.Mat4
	PrevView           mgl32.Mat4
	PrevProjection     mgl32.Mat4

	Position     core.Vec3
	PrevPosition core.Vec3
	Forward      core.Vec3
	PrevForward  core.Vec3
	Right        core.Vec3
	Up           core.Vec3

	Width      int
	Height     int
	FrameCount uint32 // Wraps around
}

// Update shifts the current state to previous and recomputes it from camera
func (u *CameraUniform) Update(camera *Camera, width, height int) {
	u.PrevViewProjection = u.ViewProjection
	u.PrevView = u.View
	u.PrevProjection = u.Projection
	u.PrevPosition = u.Position
	u.PrevForward = u.Forward

	u.View = camera.ViewMatrix()
	u.Projection = camera.ProjectionMatrix(float32(width) / float32(height))
	u.ViewProjection = u.Projection.Mul4(u.View)

	u.InvView = u.View.Inv()
	u.InvProjection = u.Projection.Inv()
	u.InvViewProjection = u.ViewProjection.Inv()

	u.Position = camera.Position
	u.Forward = camera.Forward()
	u.Right = camera.Right()
	u.Up = camera.Up()

	u.Width = width
	u.Height = height
	u.FrameCount++
}

// PoseUnchanged reports whether position, view direction and the first row
// of the projection matrix are identical to the previous frame's.
func (u *CameraUniform) PoseUnchanged() bool {
	return u.Position == u.PrevPosition &&
		u.Forward == u.PrevForward &&
		u.Projection.Row(0) == u.PrevProjection.Row(0)
}

// Jitter returns the sub-pixel offset used this frame
func (u *CameraUniform) Jitter() mgl32.Vec2 {
	return JitterOffsets[u.FrameCount%uint32(len(JitterOffsets))]
}

// Ray unprojects the jittered centre of pixel (x, y) through the inverse
// projection and view matrices. Row 0 is the top of the image.
func (u *CameraUniform) Ray(x, y int) core.Ray {
	jitter := u.Jitter()
	ndcX := 2*(float32(x)+0.5+jitter.X())/float32(u.Width) - 1
	ndcY := 1 - 2*(float32(y)+0.5+jitter.Y())/float32(u.Height)

	// Point on the mid depth plane in view space, then rotate to world space
	p := u.InvProjection.Mul4x1(mgl32.Vec4{ndcX, ndcY, 0, 1})
	viewDir := p.Vec3().Mul(1 / p.W())
	worldDir := u.InvView.Mul4x1(viewDir.Vec4(0)).Vec3()

	return core.NewRay(u.Position, fromVec3f(worldDir).Normalize())
}
