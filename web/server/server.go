// Package server exposes the progressive renderer over HTTP: a Server-Sent
// Events frame stream, camera control, pixel inspection and frame downloads.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"runtime"
	"strconv"
	"sync"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/integrator"
	"github.com/df07/go-spectral-pathtracer/pkg/renderer"
	"github.com/df07/go-spectral-pathtracer/pkg/scene"
	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Config holds server settings and the defaults for new renders
type Config struct {
	Port       int
	StaticDir  string // Served at "/" when not empty
	Scene      scene.Config
	Frame      renderer.FrameConfig
	Integrator integrator.Config
}

// DefaultConfig returns the settings used by the web preview
func DefaultConfig() Config {
	frame := renderer.DefaultFrameConfig()
	frame.Frames = 0 // Render until the client disconnects

	return Config{
		Port:       8080,
		StaticDir:  "static",
		Scene:      scene.DefaultConfig(),
		Frame:      frame,
		Integrator: integrator.DefaultConfig(),
	}
}

// Server handles web requests for the path tracer. It runs one render
// session at a time; starting a render replaces the previous one.
type Server struct {
	config Config
	echo   *echo.Echo

	mu      sync.Mutex
	session *session
}

// NewServer creates a new web server
func NewServer(config Config) *Server {
	s := &Server{config: config}
	s.echo = s.routes()
	return s
}

func (s *Server) routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(corsMiddleware)

	e.GET("/api/health", s.handleHealth)
	e.GET("/api/scenes", s.handleScenes)
	e.GET("/api/system", s.handleSystem)
	e.GET("/api/render", s.handleRender)
	e.GET("/api/camera", s.handleGetCamera)
	e.POST("/api/camera", s.handlePostCamera)
	e.GET("/api/frame.png", s.handleFramePNG)
	e.GET("/api/frame.exr", s.handleFrameEXR)
	e.GET("/api/inspect", s.handleInspect)

	if s.config.StaticDir != "" {
		e.Static("/", s.config.StaticDir)
	}
	return e
}

// Handler returns the HTTP handler serving every route
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start starts the web server and blocks until it stops
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	log.Printf("Starting web server on http://localhost%s", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the active render and the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.replaceSession(nil)
	return s.echo.Shutdown(ctx)
}

func corsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		c.Response().Header().Set("Access-Control-Allow-Methods", "GET, POST")
		c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")

		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusOK)
		}

		return next(c)
	}
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes grouped for the scene picker
func (s *Server) handleScenes(c echo.Context) error {
	return c.JSON(http.StatusOK, scene.ListScenes())
}

// SystemInfo describes the host the renderer runs on
type SystemInfo struct {
	CPUModel        string  `json:"cpuModel"`
	ClockGHz        float64 `json:"clockGHz"`
	LogicalCores    int     `json:"logicalCores"`
	TotalMemory     uint64  `json:"totalMemory"`
	AvailableMemory uint64  `json:"availableMemory"`
	Workers         int     `json:"workers"`
}

// handleSystem reports CPU and memory information and the worker count
// new renders will use.
func (s *Server) handleSystem(c echo.Context) error {
	info, err := systemInfo()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	info.Workers = s.config.Frame.NumWorkers
	if info.Workers <= 0 {
		info.Workers = runtime.NumCPU()
	}
	return c.JSON(http.StatusOK, info)
}

func systemInfo() (SystemInfo, error) {
	cpuInfo, err := cpu.Info()
	if err != nil {
		return SystemInfo{}, fmt.Errorf("failed to read CPU info: %w", err)
	}
	cores, err := cpu.Counts(true)
	if err != nil {
		return SystemInfo{}, fmt.Errorf("failed to count CPUs: %w", err)
	}
	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return SystemInfo{}, fmt.Errorf("failed to read memory info: %w", err)
	}

	info := SystemInfo{
		LogicalCores:    cores,
		TotalMemory:     memInfo.Total,
		AvailableMemory: memInfo.Available,
	}
	if len(cpuInfo) > 0 {
		info.CPUModel = cpuInfo[0].ModelName
		info.ClockGHz = cpuInfo[0].Mhz / 1000
	}
	return info, nil
}

// LogSystemInfo writes a one-line host summary, used at startup
func LogSystemInfo(logger core.Logger, workers int) {
	info, err := systemInfo()
	if err != nil {
		logger.Printf("System info unavailable: %v\n", err)
		return
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger.Printf("%s, %d logical cores, %d MiB RAM, %d render workers\n",
		info.CPUModel, info.LogicalCores, info.TotalMemory/(1024*1024), workers)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func errorJSON(c echo.Context, status int, err error) error {
	return c.JSON(status, map[string]string{"error": err.Error()})
}
