package mesh

import "log"

// Logger is the pluggable sink for the driver's verbose progress
// reports (spec.md §4.7). The core never chooses a logging framework
// for the host; it only calls Logf when verbose logging is enabled.
type Logger interface {
	Logf(format string, args ...any)
}

// StdLogger adapts the standard library's log package to Logger,
// matching the teacher's cmd/validate use of bare log.Printf.
type StdLogger struct{}

// Logf writes the formatted message via log.Printf.
func (StdLogger) Logf(format string, args ...any) {
	log.Printf(format, args...)
}

// noopLogger discards everything; it is the zero-value default so a
// Mesh never needs a nil check before calling its logger.
type noopLogger struct{}

func (noopLogger) Logf(string, ...any) {}
