package internal

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodePayload parses raw export file bytes into an untyped payload for the
// normalizer. JSON is tried first; YAML is the fallback, with its map types
// rewritten into the JSON-style map[string]any the normalizer expects.
func DecodePayload(data []byte) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &DecodeError{Reason: "file is empty"}
	}

	var payload any
	if err := json.Unmarshal(trimmed, &payload); err == nil {
		return payload, nil
	}
	if err := yaml.Unmarshal(trimmed, &payload); err != nil {
		return nil, &DecodeError{Reason: "not valid JSON or YAML", Err: err}
	}
	return normalizeDecoded(payload), nil
}

// normalizeDecoded rewrites yaml.v3's decoded values recursively. Mappings
// with non-string keys are rare in exports but legal YAML; their keys are
// stringified.
func normalizeDecoded(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeDecoded(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalizeDecoded(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeDecoded(item)
		}
		return out
	default:
		return v
	}
}
