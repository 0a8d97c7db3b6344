package memory

import (
	"github.com/jmajeed/juno/internal/domain"
	"github.com/jmajeed/juno/internal/ports"
)

// NoopRecorder is wired when memory is disabled. Dispatch logic stays
// identical; recording just goes nowhere.
type NoopRecorder struct{}

func (NoopRecorder) Record(string, domain.Intent, string, bool) {}

var _ ports.Recorder = NoopRecorder{}
