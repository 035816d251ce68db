package core

// Logger is the sink for progress and diagnostic output of scene loading,
// acceleration structure builds and the frame loop.
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards all output
type NopLogger struct{}

// Printf implements Logger
func (NopLogger) Printf(format string, args ...interface{}) {}
