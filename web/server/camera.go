package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/renderer"
	"github.com/labstack/echo/v4"
)

var errNoSession = errors.New("no render has been started")

// CameraState is the camera pose reported to the client
type CameraState struct {
	Position [3]float64 `json:"position"`
	Forward  [3]float64 `json:"forward"`
	Yaw      float32    `json:"yaw"`
	Pitch    float32    `json:"pitch"`
	VFov     float32    `json:"vfov"`
}

// CameraRequest moves the camera of the active render. Fields are applied in
// declaration order; any pose change resets accumulation on the next frame.
type CameraRequest struct {
	Position *[3]float64 `json:"position,omitempty"`
	LookAt   *[3]float64 `json:"lookAt,omitempty"`
	Rotate   *[2]float32 `json:"rotate,omitempty"` // Yaw and pitch deltas in degrees
	Move     *[3]float64 `json:"move,omitempty"`   // Forward, right and up distances
	VFov     *float32    `json:"vfov,omitempty"`
	Reset    bool        `json:"reset,omitempty"`
}

func cameraState(c renderer.Camera) CameraState {
	f := c.Forward()
	return CameraState{
		Position: [3]float64{c.Position.X, c.Position.Y, c.Position.Z},
		Forward:  [3]float64{f.X, f.Y, f.Z},
		Yaw:      c.Yaw,
		Pitch:    c.Pitch,
		VFov:     c.VFov,
	}
}

func toVec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// handleGetCamera returns the camera of the active render
func (s *Server) handleGetCamera(c echo.Context) error {
	sess := s.currentSession()
	if sess == nil {
		return errorJSON(c, http.StatusNotFound, errNoSession)
	}
	return c.JSON(http.StatusOK, cameraState(sess.renderer.Camera()))
}

// handlePostCamera updates the camera of the active render
func (s *Server) handlePostCamera(c echo.Context) error {
	sess := s.currentSession()
	if sess == nil {
		return errorJSON(c, http.StatusNotFound, errNoSession)
	}

	var req CameraRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, fmt.Errorf("failed to parse request: %w", err))
	}
	if req.VFov != nil && (*req.VFov <= 0 || *req.VFov >= 180) {
		return errorJSON(c, http.StatusBadRequest, fmt.Errorf("vfov must be between 0 and 180, got: %g", *req.VFov))
	}

	sess.renderer.UpdateCamera(func(camera *renderer.Camera) {
		if req.Position != nil {
			camera.Position = toVec3(*req.Position)
		}
		if req.LookAt != nil {
			camera.LookAt(toVec3(*req.LookAt))
		}
		if req.Rotate != nil {
			camera.Rotate(req.Rotate[0], req.Rotate[1])
		}
		if req.Move != nil {
			camera.Move(req.Move[0], req.Move[1], req.Move[2])
		}
		if req.VFov != nil {
			camera.VFov = *req.VFov
		}
	})
	if req.Reset {
		sess.renderer.Reset()
	}

	return c.JSON(http.StatusOK, cameraState(sess.renderer.Camera()))
}
