package config

import (
	"testing"

	"github.com/jmajeed/juno/internal/domain"
)

func validConfig() domain.Config {
	return domain.Config{
		Assistant: domain.AssistantSettings{Name: "Juno", WakeWord: "hey juno"},
		Classifier: domain.ClassifierSettings{
			ConfidenceThreshold: 0.5,
			Backends: []domain.BackendDefinition{
				{Name: "groq", Endpoint: "https://api.groq.com/openai/v1/chat/completions"},
			},
		},
		Listening: domain.ListeningSettings{
			WakeTimeoutSeconds:    10,
			WakePhraseSeconds:     5,
			CommandTimeoutSeconds: 5,
			CommandPhraseSeconds:  10,
		},
	}
}

func TestValidateAcceptsGoodConfig(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.Config)
	}{
		{"empty wake word", func(c *domain.Config) { c.Assistant.WakeWord = "" }},
		{"threshold above one", func(c *domain.Config) { c.Classifier.ConfidenceThreshold = 1.5 }},
		{"negative threshold", func(c *domain.Config) { c.Classifier.ConfidenceThreshold = -0.1 }},
		{"zero wake timeout", func(c *domain.Config) { c.Listening.WakeTimeoutSeconds = 0 }},
		{"negative command timeout", func(c *domain.Config) { c.Listening.CommandTimeoutSeconds = -1 }},
		{"backend without endpoint", func(c *domain.Config) { c.Classifier.Backends[0].Endpoint = "" }},
		{"backend without name", func(c *domain.Config) { c.Classifier.Backends[0].Name = "" }},
	}
	for _, tc := range cases {
		cfg := validConfig()
		tc.mutate(&cfg)
		if err := Validate(cfg); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

func validTable() domain.CommandTable {
	return domain.CommandTable{
		Applications: []domain.CommandEntry{
			{Name: "chrome", Target: "google-chrome", Keywords: []string{"chrome", "browser"}},
		},
		Websites: []domain.CommandEntry{
			{Name: "gmail", Target: "https://mail.google.com", Keywords: []string{"gmail", "email"}},
		},
		Workflows: []domain.CommandEntry{
			{Name: "start_my_day", Keywords: []string{"start my day"}},
		},
		SystemCommands: []domain.CommandEntry{
			{Name: "time", Keywords: []string{"time", "clock"}},
		},
	}
}

func TestValidateCommandsAcceptsGoodTable(t *testing.T) {
	if err := ValidateCommands(validTable()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateCommandsRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.CommandTable)
	}{
		{"entry without name", func(tbl *domain.CommandTable) {
			tbl.Applications[0].Name = ""
		}},
		{"duplicate name in category", func(tbl *domain.CommandTable) {
			tbl.Applications = append(tbl.Applications, domain.CommandEntry{
				Name: "chrome", Target: "x", Keywords: []string{"other"},
			})
		}},
		{"application without target", func(tbl *domain.CommandTable) {
			tbl.Applications[0].Target = ""
		}},
		{"website without target", func(tbl *domain.CommandTable) {
			tbl.Websites[0].Target = ""
		}},
		{"entry without keywords", func(tbl *domain.CommandTable) {
			tbl.SystemCommands[0].Keywords = nil
		}},
		{"empty keyword", func(tbl *domain.CommandTable) {
			tbl.Websites[0].Keywords = []string{"  "}
		}},
		{"keyword shared across categories", func(tbl *domain.CommandTable) {
			tbl.Websites[0].Keywords = []string{"browser"}
		}},
		{"keyword shared within category", func(tbl *domain.CommandTable) {
			tbl.Applications = append(tbl.Applications, domain.CommandEntry{
				Name: "firefox", Target: "firefox", Keywords: []string{"chrome"},
			})
		}},
	}
	for _, tc := range cases {
		table := validTable()
		tc.mutate(&table)
		if err := ValidateCommands(table); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

func TestValidateCommandsKeywordCaseInsensitive(t *testing.T) {
	table := validTable()
	table.Websites[0].Keywords = []string{"Chrome"}
	if err := ValidateCommands(table); err == nil {
		t.Fatal("expected case-insensitive duplicate keyword to be rejected")
	}
}

func TestValidateCommandsWorkflowsNeedNoTarget(t *testing.T) {
	table := validTable()
	table.Workflows[0].Target = ""
	if err := ValidateCommands(table); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
