package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/integrator"
	"github.com/df07/go-spectral-pathtracer/pkg/renderer"
	"github.com/df07/go-spectral-pathtracer/pkg/scene"
	"github.com/labstack/echo/v4"
)

// DefaultScene is rendered when the request names none
const DefaultScene = "random"

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene             string  `json:"scene"`
	Width             int     `json:"width"`
	Height            int     `json:"height"`
	Frames            int     `json:"frames"` // 0 renders until the client disconnects
	Seed              int     `json:"seed"`
	MovingBounces     int     `json:"movingBounces"`
	StationaryBounces int     `json:"stationaryBounces"`
	EnvIntensity      float64 `json:"envIntensity"`
}

// FrameUpdate is the payload of a "frame" SSE event
type FrameUpdate struct {
	Frame          uint64              `json:"frame"`
	Reset          bool                `json:"reset"`
	Stationary     bool                `json:"stationary"`
	Bounces        int                 `json:"bounces"`
	FrameMs        int64               `json:"frameMs"`
	ElapsedMs      int64               `json:"elapsedMs"`
	Width          int                 `json:"width"`
	Height         int                 `json:"height"`
	PrimitiveCount int                 `json:"primitiveCount"`
	Stats          renderer.FrameStats `json:"stats"`
	ImageData      string              `json:"imageData"` // Base64 encoded PNG
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "frame", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// session is one running render and the state the other endpoints inspect
type session struct {
	id       string
	sceneID  string
	scene    *scene.Scene
	renderer *renderer.FrameRenderer
	logger   core.Logger
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
}

// currentSession returns the latest render session, nil before the first render
func (s *Server) currentSession() *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// replaceSession installs next and stops the previous session
func (s *Server) replaceSession(next *session) {
	s.mu.Lock()
	prev := s.session
	s.session = next
	s.mu.Unlock()

	if prev != nil {
		prev.cancel()
		<-prev.done
	}
}

// handleRender starts a render and streams every accumulated frame via SSE
func (s *Server) handleRender(c echo.Context) error {
	req, err := s.parseRenderRequest(c.QueryParams())
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, fmt.Errorf("invalid request: %w", err))
	}

	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	consoleChan := make(chan ConsoleMessage, 50)
	logger := NewWebLogger(renderID, consoleChan)

	sess, err := s.newSession(c.Request().Context(), renderID, req, logger)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scene.ErrUnknownScene) {
			status = http.StatusBadRequest
		}
		return errorJSON(c, status, err)
	}
	s.replaceSession(sess)

	s.setSSEHeaders(c.Response())
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Flush()

	// The handler goroutine is the only writer; producers feed the channel
	sseEventChan := make(chan SSEEvent, 100)
	renderDone := make(chan struct{})
	var producers sync.WaitGroup
	producers.Add(2)
	go func() {
		defer producers.Done()
		s.streamConsoleMessages(sess.ctx, renderDone, consoleChan, sseEventChan)
	}()
	go func() {
		defer producers.Done()
		defer close(renderDone)
		s.runSession(sess, sseEventChan)
	}()
	go func() {
		producers.Wait()
		close(sseEventChan)
	}()

	s.writeSSEEvents(c.Response(), sess.ctx, sseEventChan)
	return nil
}

// newSession builds the scene and frame renderer for req
func (s *Server) newSession(parent context.Context, id string, req *RenderRequest, logger core.Logger) (*session, error) {
	sceneConfig := s.config.Scene
	sceneConfig.Seed = uint64(req.Seed)
	sceneConfig.EnvironmentIntensity = req.EnvIntensity

	sceneObj, err := scene.New(req.Scene, sceneConfig, logger)
	if err != nil {
		return nil, err
	}

	tracer := integrator.NewPathTracer(integrator.Config{
		MovingBounces:          req.MovingBounces,
		StationaryBounces:      req.StationaryBounces,
		DisableRussianRoulette: s.config.Integrator.DisableRussianRoulette,
	})

	frameConfig := s.config.Frame
	frameConfig.Frames = req.Frames
	frameConfig.Seed = uint64(req.Seed)

	camera := renderer.NewCamera(sceneObj.Camera.Position, sceneObj.Camera.LookAt, sceneObj.Camera.VFov)
	fr := renderer.NewFrameRenderer(sceneObj, camera, tracer, req.Width, req.Height, frameConfig, logger)
	logger.Printf("Scene %s: %d primitives at %dx%d\n", req.Scene, sceneObj.GetPrimitiveCount(), req.Width, req.Height)

	ctx, cancel := context.WithCancel(parent)
	return &session{
		id:       id,
		sceneID:  req.Scene,
		scene:    sceneObj,
		renderer: fr,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}, nil
}

// runSession renders frames and queues one event per frame
func (s *Server) runSession(sess *session, sseEventChan chan<- SSEEvent) {
	defer close(sess.done)
	defer sess.renderer.Close()

	startTime := time.Now()
	primitiveCount := sess.scene.GetPrimitiveCount()

	err := sess.renderer.Run(sess.ctx, func(result renderer.FrameResult) error {
		imageData, err := s.accumulatorToBase64PNG(sess.renderer.Accumulator())
		if err != nil {
			return fmt.Errorf("failed to encode frame: %w", err)
		}

		width, height := sess.renderer.Accumulator().Size()
		data, err := json.Marshal(FrameUpdate{
			Frame:          result.Frame,
			Reset:          result.Reset,
			Stationary:     result.Stationary,
			Bounces:        result.Bounces,
			FrameMs:        result.Duration.Milliseconds(),
			ElapsedMs:      time.Since(startTime).Milliseconds(),
			Width:          width,
			Height:         height,
			PrimitiveCount: primitiveCount,
			Stats:          result.Stats,
			ImageData:      imageData,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal frame update: %w", err)
		}

		if !sendEvent(sess.ctx, sseEventChan, SSEEvent{Type: "frame", Data: string(data)}) {
			return sess.ctx.Err()
		}
		return nil
	})

	switch {
	case err == nil:
		sendEvent(sess.ctx, sseEventChan, SSEEvent{Type: "complete", Data: "Rendering completed"})
	case errors.Is(err, context.Canceled):
		sess.logger.Printf("Render %s stopped\n", sess.id)
	default:
		sess.logger.Printf("Error rendering: %v\n", err)
		sendEvent(sess.ctx, sseEventChan, SSEEvent{Type: "error", Data: err.Error()})
	}
}

// sendEvent queues an event unless the client has gone away
func sendEvent(ctx context.Context, sseEventChan chan<- SSEEvent, event SSEEvent) bool {
	select {
	case sseEventChan <- event:
		return true
	case <-ctx.Done():
		return false
	}
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w *echo.Response) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
}

// writeSSEEvents writes queued events until the channel closes or the client disconnects
func (s *Server) writeSSEEvents(w *echo.Response, ctx context.Context, sseEventChan <-chan SSEEvent) {
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				return
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
				// Client disconnected during write
				return
			}
			w.Flush()

		case <-ctx.Done():
			return
		}
	}
}

// streamConsoleMessages forwards log lines as console events until the render ends
func (s *Server) streamConsoleMessages(ctx context.Context, renderDone <-chan struct{}, consoleChan <-chan ConsoleMessage, sseEventChan chan<- SSEEvent) {
	forward := func(msg ConsoleMessage) {
		data, err := json.Marshal(msg)
		if err != nil {
			log.Printf("Error marshaling console message: %v", err)
			return
		}
		select {
		case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
		default:
			// Channel full, skip message to avoid blocking
		}
	}

	for {
		select {
		case msg := <-consoleChan:
			forward(msg)
		case <-renderDone:
			for {
				select {
				case msg := <-consoleChan:
					forward(msg)
				default:
					return
				}
			}
		case <-ctx.Done():
			return
		}
	}
}

// parseRenderRequest parses and validates the query parameters of a render
func (s *Server) parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = DefaultScene
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 640, 16, 4096); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", 360, 16, 4096); err != nil {
		return nil, err
	}
	if req.Frames, err = parseIntParam(values, "frames", s.config.Frame.Frames, 0, 1000000); err != nil {
		return nil, err
	}
	if req.Seed, err = parseIntParam(values, "seed", int(s.config.Scene.Seed), 0, 1<<30); err != nil {
		return nil, err
	}
	if req.MovingBounces, err = parseIntParam(values, "movingBounces", s.config.Integrator.MovingBounces, 1, 1000); err != nil {
		return nil, err
	}
	if req.StationaryBounces, err = parseIntParam(values, "stationaryBounces", s.config.Integrator.StationaryBounces, 1, 1000); err != nil {
		return nil, err
	}
	if req.EnvIntensity, err = parseFloatParam(values, "envIntensity", s.config.Scene.EnvironmentIntensity, 0, 1000); err != nil {
		return nil, err
	}

	return req, nil
}

// accumulatorToBase64PNG encodes the latest frame as base64 PNG
func (s *Server) accumulatorToBase64PNG(accum *renderer.Accumulator) (string, error) {
	var buf bytes.Buffer
	if err := accum.EncodePNG(&buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
