package timing

import (
	"time"

	"github.com/meshwerk/ifcgraph/pkg/logger"
)

// Span measures the wall time of one pipeline phase.
type Span struct {
	name  string
	start time.Time
}

// Start begins measuring a phase.
func Start(name string) *Span {
	logger.Debug("phase started", "phase", name)
	return &Span{name: name, start: time.Now()}
}

// End logs the elapsed time of the phase together with any extra key/value
// pairs the caller wants recorded.
func (s *Span) End(keyvals ...any) {
	kv := append([]any{"phase", s.name, "duration", time.Since(s.start).Round(time.Millisecond).String()}, keyvals...)
	logger.Info("phase finished", kv...)
}
