package classify

import (
	"context"
	"strings"

	"github.com/jmajeed/juno/internal/domain"
	"github.com/jmajeed/juno/internal/ports"
)

// Per-category confidence assigned by the rule-based path.
const (
	confidenceApp      = 0.9
	confidenceWebsite  = 0.9
	confidenceWorkflow = 0.85
	confidenceSystem   = 0.95
)

// RuleBased is the terminal classification strategy: keyword containment
// over the command table. It never returns an error, so a chain ending in it
// always produces a result.
type RuleBased struct {
	table domain.CommandTable
}

// NewRuleBased builds the strategy over an immutable command table.
func NewRuleBased(table domain.CommandTable) *RuleBased {
	return &RuleBased{table: table}
}

func (r *RuleBased) Name() string {
	return "rules"
}

// Classify scans categories in fixed order (applications, websites,
// workflows, system commands) and entries in table order. The first keyword
// found as a substring of the lowercased text wins; there is no scoring
// across multiple matches.
func (r *RuleBased) Classify(_ context.Context, text string) (domain.Classification, error) {
	lowered := strings.ToLower(text)

	categories := []struct {
		entries    []domain.CommandEntry
		intent     domain.Intent
		confidence float64
	}{
		{r.table.Applications, domain.IntentOpenApp, confidenceApp},
		{r.table.Websites, domain.IntentOpenWebsite, confidenceWebsite},
		{r.table.Workflows, domain.IntentWorkflow, confidenceWorkflow},
		{r.table.SystemCommands, domain.IntentSystemInfo, confidenceSystem},
	}

	for _, cat := range categories {
		for _, entry := range cat.entries {
			for _, keyword := range entry.Keywords {
				if keyword == "" {
					continue
				}
				if strings.Contains(lowered, strings.ToLower(keyword)) {
					return domain.Classification{
						Intent:     cat.intent,
						Action:     entry.Name,
						Confidence: cat.confidence,
						Parameters: map[string]any{},
					}, nil
				}
			}
		}
	}

	return domain.UnknownClassification(), nil
}

var _ ports.Strategy = (*RuleBased)(nil)
