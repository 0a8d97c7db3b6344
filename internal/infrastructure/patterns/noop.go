package patterns

import (
	"context"

	"github.com/jmajeed/juno/internal/domain"
	"github.com/jmajeed/juno/internal/ports"
)

// NoopStore is the default pattern store. It accepts everything and
// remembers nothing.
type NoopStore struct{}

func (NoopStore) Ingest(context.Context, string, domain.Intent, string) error {
	return nil
}

func (NoopStore) Similar(context.Context, string, int) ([]domain.Pattern, error) {
	return nil, nil
}

var _ ports.PatternStore = NoopStore{}
