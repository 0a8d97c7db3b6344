package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/jmajeed/juno/internal/domain"
	"github.com/jmajeed/juno/internal/ports"
)

// remoteStrategy classifies via one HTTP classification backend. The wire
// differences between vendors are confined to the adapter triple.
type remoteStrategy struct {
	name       string
	backend    domain.BackendDefinition
	httpClient *http.Client
	adapter    backendAdapter
	assistant  string
}

type backendAdapter struct {
	buildRequest func(domain.BackendDefinition, string, string) ([]byte, error)
	parseReply   func([]byte) (string, error)
	setHeaders   func(*http.Request, domain.BackendDefinition) error
}

// NewRemote builds a strategy for a configured backend. Groq and OpenAI
// share the chat-completions wire shape; Anthropic has its own. Unknown
// backend names are rejected so the chain is never padded with dead entries.
func NewRemote(backend domain.BackendDefinition, client *http.Client, assistantName string) (ports.Strategy, error) {
	var adapter backendAdapter
	switch strings.ToLower(backend.Name) {
	case "groq", "openai":
		adapter = chatCompletionAdapter()
	case "anthropic":
		adapter = anthropicAdapter()
	default:
		return nil, fmt.Errorf("unsupported classification backend: %s", backend.Name)
	}
	return &remoteStrategy{
		name:       strings.ToLower(backend.Name),
		backend:    backend,
		httpClient: client,
		adapter:    adapter,
		assistant:  assistantName,
	}, nil
}

func (s *remoteStrategy) Name() string {
	return s.name
}

func (s *remoteStrategy) Classify(ctx context.Context, text string) (domain.Classification, error) {
	requestBody, err := s.adapter.buildRequest(s.backend, systemPrompt(s.assistant), userPrompt(text))
	if err != nil {
		return domain.Classification{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.backend.Endpoint, bytes.NewReader(requestBody))
	if err != nil {
		return domain.Classification{}, err
	}
	httpReq.Header.Set("content-type", "application/json")
	if err := s.adapter.setHeaders(httpReq, s.backend); err != nil {
		return domain.Classification{}, err
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return domain.Classification{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return domain.Classification{}, fmt.Errorf("%s: %s", s.name, resp.Status)
	}

	var responseBody bytes.Buffer
	if _, err := responseBody.ReadFrom(resp.Body); err != nil {
		return domain.Classification{}, err
	}

	reply, err := s.adapter.parseReply(responseBody.Bytes())
	if err != nil {
		return domain.Classification{}, err
	}
	return parseResult(reply)
}

func chatCompletionAdapter() backendAdapter {
	return backendAdapter{
		buildRequest: buildChatCompletionRequest,
		parseReply:   parseChatCompletionReply,
		setHeaders:   setBearerHeaders,
	}
}

func anthropicAdapter() backendAdapter {
	return backendAdapter{
		buildRequest: buildAnthropicRequest,
		parseReply:   parseAnthropicReply,
		setHeaders:   setAnthropicHeaders,
	}
}

func buildChatCompletionRequest(backend domain.BackendDefinition, system, user string) ([]byte, error) {
	request := map[string]interface{}{
		"model": backend.ModelID,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"temperature": 0.2,
	}
	if backend.MaxTokens > 0 {
		request["max_tokens"] = backend.MaxTokens
	}
	return json.Marshal(request)
}

func parseChatCompletionReply(body []byte) (string, error) {
	content := gjson.GetBytes(body, "choices.0.message.content")
	if !content.Exists() {
		return "", fmt.Errorf("no choices in response")
	}
	return strings.TrimSpace(content.String()), nil
}

func setBearerHeaders(req *http.Request, backend domain.BackendDefinition) error {
	apiKey := os.Getenv(backend.AuthEnvVar)
	if apiKey == "" {
		return fmt.Errorf("missing API key: set %s", backend.AuthEnvVar)
	}
	req.Header.Set("authorization", "Bearer "+apiKey)
	return nil
}

func buildAnthropicRequest(backend domain.BackendDefinition, system, user string) ([]byte, error) {
	request := map[string]interface{}{
		"model":      backend.ModelID,
		"max_tokens": defaultInt(backend.MaxTokens, 150),
		"system":     system,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]string{
					{"type": "text", "text": user},
				},
			},
		},
	}
	return json.Marshal(request)
}

func parseAnthropicReply(body []byte) (string, error) {
	content := gjson.GetBytes(body, "content.0.text")
	if !content.Exists() {
		return "", fmt.Errorf("no content in response")
	}
	return strings.TrimSpace(content.String()), nil
}

func setAnthropicHeaders(req *http.Request, backend domain.BackendDefinition) error {
	apiKey := os.Getenv(backend.AuthEnvVar)
	if apiKey == "" {
		return fmt.Errorf("missing API key: set %s", backend.AuthEnvVar)
	}
	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	return nil
}

func defaultInt(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}
