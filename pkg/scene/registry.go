package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/loaders"
)

// ErrUnknownScene is returned for scene IDs that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

type builder func(config Config, logger core.Logger) (*Scene, error)

type registration struct {
	info  SceneInfo
	build builder
}

const (
	groupShowcase = "Showcase"
	groupTest     = "Test Scenes"
)

var registry = []registration{
	{SceneInfo{"random", "Random", "Ground under a thin glass coat with a grid of random spheres and boxes", groupShowcase}, newRandomScene},
	{SceneInfo{"cubeception", "Cubeception", "Nested glass cubes and spheres", groupShowcase}, newCubeceptionScene},
	{SceneInfo{"spheres", "Sphere Cloud", "Cloud of random unit spheres around a large diffuse sphere", groupShowcase}, newSpheresScene},
	{SceneInfo{"mesh", "Triangle Mesh", "Triangle meshes through the BVH, from a PLY file when one is given", groupShowcase}, newMeshScene},
	{SceneInfo{"cornell", "Cornell Box", "Cornell box built from boxes with an emissive ceiling panel", groupTest}, newCornellScene},
	{SceneInfo{"sphere", "Unit Sphere", "A single grey unit sphere at the origin", groupTest}, newSphereScene},
}

// New builds the named scene. An EnvironmentPath in config replaces the
// scene's sky with the loaded image.
func New(id string, config Config, logger core.Logger) (*Scene, error) {
	startTime := time.Now()

	var reg *registration
	for i := range registry {
		if registry[i].info.ID == id {
			reg = &registry[i]
			break
		}
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, id, strings.Join(IDs(), ", "))
	}

	s, err := reg.build(config, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %q: %w", id, err)
	}
	s.Name = id

	if config.EnvironmentPath != "" {
		env, err := loaders.LoadEnvironment(config.EnvironmentPath, config.EnvironmentIntensity)
		if err != nil {
			return nil, fmt.Errorf("failed to load environment: %w", err)
		}
		s.Environment = env
	}

	if logger != nil {
		logger.Printf("Scene %s: %d primitives, built in %v\n", id, s.GetPrimitiveCount(), time.Since(startTime))
	}
	return s, nil
}

// IDs returns the registered scene IDs in registration order
func IDs() []string {
	ids := make([]string, len(registry))
	for i, r := range registry {
		ids[i] = r.info.ID
	}
	return ids
}

// ListScenes returns the built-in scenes grouped by category, showcase first
func ListScenes() ScenesResponse {
	var response ScenesResponse

	groupMap := make(map[string][]SceneInfo)
	for _, r := range registry {
		groupMap[r.info.Group] = append(groupMap[r.info.Group], r.info)
	}

	var groupNames []string
	for groupName := range groupMap {
		if groupName != groupShowcase {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	if showcase, exists := groupMap[groupShowcase]; exists {
		response.Groups = append(response.Groups, SceneGroup{Name: groupShowcase, Scenes: showcase})
	}
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{Name: groupName, Scenes: groupMap[groupName]})
	}

	return response
}
