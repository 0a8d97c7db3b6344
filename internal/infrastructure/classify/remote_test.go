package classify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/jmajeed/juno/internal/domain"
)

func TestRemoteRejectsUnknownBackend(t *testing.T) {
	backend := domain.BackendDefinition{Name: "cohere", Endpoint: "https://example.com"}
	if _, err := NewRemote(backend, http.DefaultClient, "Juno"); err == nil {
		t.Fatal("expected error for unsupported backend")
	}
}

func TestRemoteChatCompletionRoundTrip(t *testing.T) {
	var gotAuth, gotModel string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		gotModel = gjson.GetBytes(body, "model").String()
		w.Write([]byte(`{"choices": [{"message": {"content": "{\"intent\": \"open_app\", \"action\": \"chrome\", \"confidence\": 0.92, \"parameters\": {}}"}}]}`))
	}))
	defer server.Close()

	t.Setenv("TEST_GROQ_KEY", "secret")
	backend := domain.BackendDefinition{
		Name:       "groq",
		Endpoint:   server.URL,
		ModelID:    "llama3-70b-8192",
		AuthEnvVar: "TEST_GROQ_KEY",
		MaxTokens:  150,
	}
	strategy, err := NewRemote(backend, server.Client(), "Juno")
	if err != nil {
		t.Fatal(err)
	}

	result, err := strategy.Classify(context.Background(), "open chrome")
	if err != nil {
		t.Fatal(err)
	}
	if result.Intent != domain.IntentOpenApp || result.Action != "chrome" || result.Confidence != 0.92 {
		t.Fatalf("unexpected result %+v", result)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("authorization = %q", gotAuth)
	}
	if gotModel != "llama3-70b-8192" {
		t.Fatalf("model = %q", gotModel)
	}
}

func TestRemoteAnthropicRoundTrip(t *testing.T) {
	var gotKey, gotVersion string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		w.Write([]byte(`{"content": [{"type": "text", "text": "{\"intent\": \"system_info\", \"action\": \"battery\", \"confidence\": 0.88, \"parameters\": {}}"}]}`))
	}))
	defer server.Close()

	t.Setenv("TEST_ANTHROPIC_KEY", "secret")
	backend := domain.BackendDefinition{
		Name:       "anthropic",
		Endpoint:   server.URL,
		ModelID:    "claude-3-haiku-20240307",
		AuthEnvVar: "TEST_ANTHROPIC_KEY",
	}
	strategy, err := NewRemote(backend, server.Client(), "Juno")
	if err != nil {
		t.Fatal(err)
	}

	result, err := strategy.Classify(context.Background(), "battery level")
	if err != nil {
		t.Fatal(err)
	}
	if result.Action != "battery" {
		t.Fatalf("unexpected result %+v", result)
	}
	if gotKey != "secret" || gotVersion != "2023-06-01" {
		t.Fatalf("headers = %q / %q", gotKey, gotVersion)
	}
}

func TestRemoteMissingAPIKey(t *testing.T) {
	t.Setenv("TEST_EMPTY_KEY", "")
	backend := domain.BackendDefinition{
		Name:       "openai",
		Endpoint:   "http://127.0.0.1:0",
		ModelID:    "gpt-4o-mini",
		AuthEnvVar: "TEST_EMPTY_KEY",
	}
	strategy, err := NewRemote(backend, http.DefaultClient, "Juno")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := strategy.Classify(context.Background(), "open chrome"); err == nil {
		t.Fatal("expected error when API key is absent")
	}
}

func TestRemoteServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	t.Setenv("TEST_GROQ_KEY", "secret")
	backend := domain.BackendDefinition{
		Name:       "groq",
		Endpoint:   server.URL,
		ModelID:    "llama3-70b-8192",
		AuthEnvVar: "TEST_GROQ_KEY",
	}
	strategy, err := NewRemote(backend, server.Client(), "Juno")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := strategy.Classify(context.Background(), "open chrome"); err == nil {
		t.Fatal("expected error on HTTP 429")
	}
}
