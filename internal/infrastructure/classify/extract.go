package classify

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/jmajeed/juno/internal/domain"
)

var errNoResult = errors.New("no classification object in response")

// parseResult pulls a classification out of a backend reply. Backends are
// asked for bare JSON but routinely wrap it in prose or markdown fences, so
// the first balanced {...} substring is extracted and parsed. Missing or
// malformed fields are an error, which sends the chain to the next strategy.
func parseResult(reply string) (domain.Classification, error) {
	blob, ok := firstJSONObject(reply)
	if !ok {
		return domain.Classification{}, errNoResult
	}

	if !gjson.Valid(blob) {
		return domain.Classification{}, errNoResult
	}
	parsed := gjson.Parse(blob)

	intentField := parsed.Get("intent")
	confidenceField := parsed.Get("confidence")
	if !intentField.Exists() || !confidenceField.Exists() {
		return domain.Classification{}, errNoResult
	}

	intent := domain.Intent(strings.TrimSpace(intentField.String()))
	if !intent.Valid() {
		return domain.Classification{}, errNoResult
	}

	result := domain.Classification{
		Intent:     intent,
		Action:     strings.TrimSpace(parsed.Get("action").String()),
		Confidence: confidenceField.Float(),
		Parameters: map[string]any{},
	}
	if params := parsed.Get("parameters"); params.IsObject() {
		for key, value := range params.Map() {
			result.Parameters[key] = value.Value()
		}
	}

	if result.Confidence < 0 || result.Confidence > 1 {
		return domain.Classification{}, errNoResult
	}
	if !result.WellFormed() {
		return domain.Classification{}, errNoResult
	}
	return result, nil
}

// firstJSONObject returns the first balanced curly-brace substring.
func firstJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
