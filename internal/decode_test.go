package internal

import (
	"errors"
	"reflect"
	"testing"
)

func TestDecodePayload_JSON(t *testing.T) {
	payload, err := DecodePayload([]byte(`{"title": "x", "n": 1}`))
	if err != nil {
		t.Fatalf("DecodePayload() error = %v", err)
	}
	want := map[string]any{"title": "x", "n": 1.0}
	if !reflect.DeepEqual(payload, want) {
		t.Errorf("DecodePayload() = %v, want %v", payload, want)
	}
}

func TestDecodePayload_JSONArray(t *testing.T) {
	payload, err := DecodePayload([]byte(`[{"role": "user"}]`))
	if err != nil {
		t.Fatalf("DecodePayload() error = %v", err)
	}
	arr, ok := payload.([]any)
	if !ok || len(arr) != 1 {
		t.Errorf("DecodePayload() = %v, want 1-element array", payload)
	}
}

func TestDecodePayload_YAML(t *testing.T) {
	data := []byte("title: My Chat\nmessages:\n  - role: user\n    content: hello\n")
	payload, err := DecodePayload(data)
	if err != nil {
		t.Fatalf("DecodePayload() error = %v", err)
	}
	obj, ok := payload.(map[string]any)
	if !ok {
		t.Fatalf("DecodePayload() = %T, want map[string]any", payload)
	}
	if obj["title"] != "My Chat" {
		t.Errorf("title = %v", obj["title"])
	}
	msgs, ok := obj["messages"].([]any)
	if !ok || len(msgs) != 1 {
		t.Fatalf("messages = %v", obj["messages"])
	}
	if _, ok := msgs[0].(map[string]any); !ok {
		t.Errorf("message element is %T, want map[string]any", msgs[0])
	}
}

func TestDecodePayload_Empty(t *testing.T) {
	for _, data := range [][]byte{nil, []byte(""), []byte("  \n\t ")} {
		_, err := DecodePayload(data)
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			t.Errorf("DecodePayload(%q) error = %v, want DecodeError", data, err)
		}
	}
}

func TestDecodePayload_Garbage(t *testing.T) {
	_, err := DecodePayload([]byte("{invalid: [yaml: }"))
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("DecodePayload() error = %v, want DecodeError", err)
	}
	if decodeErr.Reason != "not valid JSON or YAML" {
		t.Errorf("Reason = %q", decodeErr.Reason)
	}
}

func TestNormalizeDecoded_NonStringKeys(t *testing.T) {
	in := map[any]any{
		1:   "one",
		"k": []any{map[any]any{true: "t"}},
	}
	out, ok := normalizeDecoded(in).(map[string]any)
	if !ok {
		t.Fatalf("normalizeDecoded() = %T, want map[string]any", normalizeDecoded(in))
	}
	if out["1"] != "one" {
		t.Errorf(`out["1"] = %v`, out["1"])
	}
	nested := out["k"].([]any)[0].(map[string]any)
	if nested["true"] != "t" {
		t.Errorf("nested = %v", nested)
	}
}
