package classify

import (
	"context"
	"net/http"
	"time"

	"github.com/jmajeed/juno/internal/domain"
	"github.com/jmajeed/juno/internal/ports"
)

// Chain tries strategies in priority order until one answers. The terminal
// rule-based strategy cannot fail, so Classify never fails outward.
type Chain struct {
	strategies []ports.Strategy
	logger     ports.Logger
}

// NewChain assembles a chain. The terminal strategy must be last.
func NewChain(logger ports.Logger, strategies ...ports.Strategy) *Chain {
	return &Chain{strategies: strategies, logger: logger}
}

// BuildChain constructs the configured backend strategies followed by the
// rule-based terminal one. Misconfigured backends are logged and skipped.
func BuildChain(cfg domain.Config, table domain.CommandTable, logger ports.Logger) *Chain {
	httpClient := &http.Client{Timeout: 15 * time.Second}

	var strategies []ports.Strategy
	for _, backend := range cfg.Classifier.Backends {
		strategy, err := NewRemote(backend, httpClient, cfg.Assistant.Name)
		if err != nil {
			logger.Warn("skipping classification backend", map[string]interface{}{
				"backend": backend.Name, "reason": err.Error(),
			})
			continue
		}
		strategies = append(strategies, strategy)
	}
	strategies = append(strategies, NewRuleBased(table))

	return NewChain(logger, strategies...)
}

// Classify implements ports.Classifier.
func (c *Chain) Classify(ctx context.Context, text string) domain.Classification {
	for _, strategy := range c.strategies {
		result, err := strategy.Classify(ctx, text)
		if err != nil {
			c.logger.Debug("classification strategy failed", map[string]interface{}{
				"strategy": strategy.Name(), "error": err.Error(),
			})
			continue
		}
		if !result.WellFormed() {
			c.logger.Debug("classification strategy returned malformed result", map[string]interface{}{
				"strategy": strategy.Name(),
			})
			continue
		}
		c.logger.Info("classified", map[string]interface{}{
			"strategy":   strategy.Name(),
			"intent":     string(result.Intent),
			"action":     result.Action,
			"confidence": result.Confidence,
		})
		return result
	}
	return domain.UnknownClassification()
}

var _ ports.Classifier = (*Chain)(nil)
