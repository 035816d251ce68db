package server

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

// Console levels, inferred from the leading word of a log line
const (
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
)

// ConsoleMessage is one log line of a render session as streamed to the browser
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
}

// WebLogger mirrors a session's log lines to the server log and its console stream
type WebLogger struct {
	renderID string
	out      io.Writer
	console  chan<- ConsoleMessage
}

// NewWebLogger returns a logger for one render session. A nil channel
// only writes to stdout. Lines are dropped rather than blocking the renderer
// when the console stream falls behind.
func NewWebLogger(renderID string, console chan<- ConsoleMessage) core.Logger {
	return &WebLogger{renderID: renderID, out: os.Stdout, console: console}
}

// Printf implements core.Logger
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(wl.out, "[%s] %s", wl.renderID, message)

	if wl.console == nil {
		return
	}
	msg := ConsoleMessage{
		RenderID:  wl.renderID,
		Message:   message,
		Timestamp: time.Now(),
		Level:     messageLevel(message),
	}
	select {
	case wl.console <- msg:
	default:
	}
}

func messageLevel(message string) string {
	lower := strings.ToLower(strings.TrimSpace(message))
	switch {
	case strings.HasPrefix(lower, "error"), strings.HasPrefix(lower, "failed"):
		return LevelError
	case strings.HasPrefix(lower, "warning"), strings.Contains(lower, "dropped"):
		return LevelWarning
	default:
		return LevelInfo
	}
}
