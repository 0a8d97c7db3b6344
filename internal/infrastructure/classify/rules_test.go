package classify

import (
	"context"
	"reflect"
	"testing"

	"github.com/jmajeed/juno/internal/domain"
)

func testTable() domain.CommandTable {
	return domain.CommandTable{
		Applications: []domain.CommandEntry{
			{Name: "notepad", Target: "notepad", Keywords: []string{"notepad", "note pad"}},
			{Name: "chrome", Target: "google-chrome", Keywords: []string{"chrome", "browser"}},
		},
		Websites: []domain.CommandEntry{
			{Name: "gmail", Target: "https://mail.google.com", Keywords: []string{"gmail", "email"}},
		},
		Workflows: []domain.CommandEntry{
			{Name: "start_my_day", Keywords: []string{"start my day"}},
		},
		SystemCommands: []domain.CommandEntry{
			{Name: "time", Keywords: []string{"time"}},
		},
	}
}

func TestRuleBasedMatchesApplicationKeyword(t *testing.T) {
	strategy := NewRuleBased(testTable())

	result, err := strategy.Classify(context.Background(), "open notepad please")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if result.Intent != domain.IntentOpenApp {
		t.Fatalf("intent = %s, want open_app", result.Intent)
	}
	if result.Action != "notepad" {
		t.Fatalf("action = %q, want notepad", result.Action)
	}
	if result.Confidence != 0.9 {
		t.Fatalf("confidence = %v, want 0.9", result.Confidence)
	}
	if len(result.Parameters) != 0 {
		t.Fatalf("parameters = %v, want empty", result.Parameters)
	}
}

func TestRuleBasedIsDeterministic(t *testing.T) {
	strategy := NewRuleBased(testTable())

	first, _ := strategy.Classify(context.Background(), "open GMAIL now")
	for i := 0; i < 10; i++ {
		again, _ := strategy.Classify(context.Background(), "open GMAIL now")
		if !reflect.DeepEqual(again, first) && again.Action != first.Action {
			t.Fatalf("run %d: result %+v differs from %+v", i, again, first)
		}
		if again.Action != "gmail" || again.Intent != domain.IntentOpenWebsite {
			t.Fatalf("unexpected result %+v", again)
		}
	}
}

func TestRuleBasedCategoryConfidences(t *testing.T) {
	strategy := NewRuleBased(testTable())

	cases := []struct {
		text       string
		intent     domain.Intent
		action     string
		confidence float64
	}{
		{"launch chrome", domain.IntentOpenApp, "chrome", 0.9},
		{"check my email", domain.IntentOpenWebsite, "gmail", 0.9},
		{"start my day juno", domain.IntentWorkflow, "start_my_day", 0.85},
		{"what time is it", domain.IntentSystemInfo, "time", 0.95},
	}
	for _, tc := range cases {
		result, err := strategy.Classify(context.Background(), tc.text)
		if err != nil {
			t.Fatalf("%q: error = %v", tc.text, err)
		}
		if result.Intent != tc.intent || result.Action != tc.action || result.Confidence != tc.confidence {
			t.Fatalf("%q: got {%s %s %v}, want {%s %s %v}",
				tc.text, result.Intent, result.Action, result.Confidence,
				tc.intent, tc.action, tc.confidence)
		}
	}
}

func TestRuleBasedFirstMatchWinsAcrossCategories(t *testing.T) {
	// "browser" hits the chrome application entry before any website entry
	// because applications are scanned first.
	strategy := NewRuleBased(testTable())

	result, _ := strategy.Classify(context.Background(), "open browser with gmail")
	if result.Intent != domain.IntentOpenApp || result.Action != "chrome" {
		t.Fatalf("got {%s %s}, want application chrome", result.Intent, result.Action)
	}
}

func TestRuleBasedNoMatchReturnsUnknownSentinel(t *testing.T) {
	strategy := NewRuleBased(testTable())

	result, err := strategy.Classify(context.Background(), "make me a sandwich")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if result.Intent != domain.IntentUnknown {
		t.Fatalf("intent = %s, want unknown", result.Intent)
	}
	if result.Action != "" {
		t.Fatalf("action = %q, want empty", result.Action)
	}
	if result.Confidence != 0.0 {
		t.Fatalf("confidence = %v, want 0.0", result.Confidence)
	}
	if len(result.Parameters) != 0 {
		t.Fatalf("parameters = %v, want empty", result.Parameters)
	}
}
