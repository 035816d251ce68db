package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
	"github.com/df07/go-spectral-pathtracer/pkg/renderer"
	"github.com/df07/go-spectral-pathtracer/pkg/scene"
	"github.com/labstack/echo/v4"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	Pixel        [2]int                 `json:"pixel"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	UV           *[2]float64            `json:"uv,omitempty"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
	Color        [3]float64             `json:"color"` // Accumulated linear radiance
	Age          uint32                 `json:"age"`
}

// materialProperties describes the parameters of a material that matter for its type
func materialProperties(m core.Material) map[string]interface{} {
	properties := map[string]interface{}{
		"albedo": [3]float64{m.Albedo.X, m.Albedo.Y, m.Albedo.Z},
		"color": fmt.Sprintf("#%02x%02x%02x",
			int(clampUnit(m.Albedo.X)*255), int(clampUnit(m.Albedo.Y)*255), int(clampUnit(m.Albedo.Z)*255)),
	}
	if m.IsEmissive() {
		properties["emission"] = [3]float64{m.Emission.X, m.Emission.Y, m.Emission.Z}
	}

	switch m.Type {
	case core.MaterialMetal:
		properties["roughness"] = m.Roughness
	case core.MaterialDielectric:
		properties["roughness"] = m.Roughness
		properties["ior"] = m.IOR
	case core.MaterialVolume:
		properties["density"] = m.Density
		properties["g"] = m.G
	}
	return properties
}

func clampUnit(x float64) float64 {
	return max(0, min(1, x))
}

// inspectRay intersects ray with each primitive list in the scene's merge
// order and reports which kind of primitive was closest.
func inspectRay(sceneObj *scene.Scene, ray core.Ray) (core.Hit, string) {
	candidates := []struct {
		name string
		hit  core.Hit
	}{
		{"sphere", geometry.IntersectAll(sceneObj.Spheres, ray)},
		{"plane", geometry.IntersectAll(sceneObj.Planes, ray)},
		{"box", geometry.IntersectAll(sceneObj.Boxes, ray)},
	}
	if sceneObj.BVH != nil {
		candidates = append(candidates, struct {
			name string
			hit  core.Hit
		}{"triangle", sceneObj.BVH.Intersect(ray)})
	}

	best, kind := core.NoHit(), ""
	for _, c := range candidates {
		if c.hit.Success && c.hit.Distance < best.Distance {
			best, kind = c.hit, c.name
		}
	}
	return best, kind
}

// handleInspect traces the primary ray of pixel (x, y) in the latest frame
func (s *Server) handleInspect(c echo.Context) error {
	sess := s.currentSession()
	if sess == nil {
		return errorJSON(c, http.StatusNotFound, errNoSession)
	}
	uniform := sess.renderer.Uniform()
	if uniform.FrameCount == 0 {
		return errorJSON(c, http.StatusConflict, errors.New("no frame rendered yet"))
	}

	x, errX := strconv.Atoi(c.QueryParam("x"))
	y, errY := strconv.Atoi(c.QueryParam("y"))
	if errX != nil || errY != nil {
		return errorJSON(c, http.StatusBadRequest, errors.New("x and y must be integers"))
	}
	width, height := sess.renderer.Accumulator().Size()
	if x < 0 || y < 0 || x >= width || y >= height || x >= uniform.Width || y >= uniform.Height {
		return errorJSON(c, http.StatusBadRequest, fmt.Errorf("pixel (%d, %d) outside %dx%d image", x, y, width, height))
	}

	pixel := sess.renderer.Accumulator().Pixel(x, y)
	response := InspectResponse{
		Pixel: [2]int{x, y},
		Color: [3]float64{pixel.Color.X, pixel.Color.Y, pixel.Color.Z},
		Age:   pixel.Age,
	}

	hit, kind := inspectRay(sess.scene, uniform.Ray(x, y))
	if hit.Success {
		response.Hit = true
		response.GeometryType = kind
		response.MaterialType = hit.Material.Type.String()
		response.Point = [3]float64{hit.Position.X, hit.Position.Y, hit.Position.Z}
		response.Normal = [3]float64{hit.Normal.X, hit.Normal.Y, hit.Normal.Z}
		response.Distance = hit.Distance
		response.FrontFace = hit.FrontFace
		response.Properties = materialProperties(hit.Material)
		if hit.HasUV() {
			response.UV = &[2]float64{hit.UV.X, hit.UV.Y}
		}
	}

	return c.JSON(http.StatusOK, response)
}

// handleFramePNG downloads the latest frame as PNG
func (s *Server) handleFramePNG(c echo.Context) error {
	sess := s.currentSession()
	if sess == nil {
		return errorJSON(c, http.StatusNotFound, errNoSession)
	}

	var buf bytes.Buffer
	if err := sess.renderer.Accumulator().EncodePNG(&buf); err != nil {
		return errorJSON(c, http.StatusInternalServerError, err)
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

// handleFrameEXR downloads the latest frame as linear OpenEXR with the
// accumulation age in the alpha channel.
func (s *Server) handleFrameEXR(c echo.Context) error {
	sess := s.currentSession()
	if sess == nil {
		return errorJSON(c, http.StatusNotFound, errNoSession)
	}

	data, err := encodeEXR(sess.renderer.Accumulator())
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err)
	}
	c.Response().Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", sess.sceneID+".exr"))
	return c.Blob(http.StatusOK, "image/x-exr", data)
}

// encodeEXR goes through a temporary file because the encoder needs to seek
func encodeEXR(accum *renderer.Accumulator) ([]byte, error) {
	file, err := os.CreateTemp("", "frame-*.exr")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary EXR: %w", err)
	}
	defer os.Remove(file.Name())
	defer file.Close()

	if err := renderer.EncodeEXR(file, accum); err != nil {
		return nil, err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind temporary EXR: %w", err)
	}
	return io.ReadAll(file)
}
