// Package config validates the loaded settings and command table.
package config

import (
	"fmt"
	"strings"

	"github.com/jmajeed/juno/internal/domain"
)

// Validate checks the settings for values the rest of the system relies on.
func Validate(cfg domain.Config) error {
	if cfg.Assistant.WakeWord == "" {
		return fmt.Errorf("assistant.wake_word must not be empty")
	}
	if cfg.Classifier.ConfidenceThreshold < 0 || cfg.Classifier.ConfidenceThreshold > 1 {
		return fmt.Errorf("classifier.confidence_threshold must be within [0,1], got %g",
			cfg.Classifier.ConfidenceThreshold)
	}
	for _, field := range []struct {
		name  string
		value int
	}{
		{"listening.wake_timeout", cfg.Listening.WakeTimeoutSeconds},
		{"listening.wake_phrase_limit", cfg.Listening.WakePhraseSeconds},
		{"listening.command_timeout", cfg.Listening.CommandTimeoutSeconds},
		{"listening.command_phrase_limit", cfg.Listening.CommandPhraseSeconds},
	} {
		if field.value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", field.name, field.value)
		}
	}
	for _, backend := range cfg.Classifier.Backends {
		if backend.Name == "" || backend.Endpoint == "" {
			return fmt.Errorf("classifier backend entries need a name and an endpoint")
		}
	}
	return nil
}

// ValidateCommands checks the command table. Every entry needs a name and at
// least one keyword; names must be unique within their category and keywords
// unique across the whole table, since the first match wins and a duplicate
// keyword would shadow a later entry silently.
func ValidateCommands(table domain.CommandTable) error {
	seenKeywords := map[string]string{}

	categories := []struct {
		name        string
		entries     []domain.CommandEntry
		needsTarget bool
	}{
		{"applications", table.Applications, true},
		{"websites", table.Websites, true},
		{"workflows", table.Workflows, false},
		{"system_commands", table.SystemCommands, false},
	}

	for _, cat := range categories {
		seenNames := map[string]struct{}{}
		for _, entry := range cat.entries {
			if entry.Name == "" {
				return fmt.Errorf("%s: entry without a name", cat.name)
			}
			if _, dup := seenNames[entry.Name]; dup {
				return fmt.Errorf("%s: duplicate entry %q", cat.name, entry.Name)
			}
			seenNames[entry.Name] = struct{}{}

			if cat.needsTarget && entry.Target == "" {
				return fmt.Errorf("%s: entry %q has no target", cat.name, entry.Name)
			}
			if len(entry.Keywords) == 0 {
				return fmt.Errorf("%s: entry %q has no keywords", cat.name, entry.Name)
			}
			for _, keyword := range entry.Keywords {
				normalized := strings.ToLower(strings.TrimSpace(keyword))
				if normalized == "" {
					return fmt.Errorf("%s: entry %q has an empty keyword", cat.name, entry.Name)
				}
				if owner, dup := seenKeywords[normalized]; dup {
					return fmt.Errorf("keyword %q configured for both %q and %q",
						normalized, owner, cat.name+"/"+entry.Name)
				}
				seenKeywords[normalized] = cat.name + "/" + entry.Name
			}
		}
	}
	return nil
}
