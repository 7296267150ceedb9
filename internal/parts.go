package internal

// textContentTypes and imageContentTypes are the tag vocabularies legacy
// exports used in OpenAI-style content arrays.
var textContentTypes = map[string]bool{
	"text":        true,
	"input_text":  true,
	"output_text": true,
}

var imageContentTypes = map[string]bool{
	"image_url":   true,
	"image":       true,
	"input_image": true,
	"image-url":   true,
}

// NormalizePartsArray converts entries from a source that already used the
// parts shape. Text and reasoning parts are always kept, with their text
// coerced to a string (empty if absent); any other tagged object passes
// through unchanged so part kinds this normalizer does not understand
// survive the import. Entries it cannot place are skipped silently.
func NormalizePartsArray(entries []any) []Part {
	var parts []Part
	for _, entry := range entries {
		if text, ok := entry.(string); ok {
			parts = append(parts, TextPart(text))
			continue
		}
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		typ, _ := obj["type"].(string)
		switch typ {
		case "text":
			text, _ := obj["text"].(string)
			parts = append(parts, TextPart(text))
		case "reasoning":
			text, _ := obj["text"].(string)
			parts = append(parts, ReasoningPart(text))
		case "":
			if text, ok := obj["text"].(string); ok {
				parts = append(parts, TextPart(text))
			}
		default:
			parts = append(parts, Part(obj))
		}
	}
	return parts
}

// NormalizeContentArray converts entries from the OpenAI-style content array
// shape. Unlike NormalizePartsArray, empty text never produces a part here,
// and entries that cannot be classified are dropped without a warning.
func NormalizeContentArray(entries []any) []Part {
	var parts []Part
	for _, entry := range entries {
		if text, ok := entry.(string); ok {
			parts = append(parts, TextPart(text))
			continue
		}
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		typ, _ := obj["type"].(string)
		switch {
		case textContentTypes[typ]:
			if text, _ := obj["text"].(string); text != "" {
				parts = append(parts, TextPart(text))
			}
		case imageContentTypes[typ]:
			if url := extractImageURL(obj); url != "" {
				parts = append(parts, FilePart(url, "image", "image/*"))
			}
		default:
			if text, ok := obj["text"].(string); ok && text != "" {
				parts = append(parts, TextPart(text))
			}
		}
	}
	return parts
}

// extractImageURL resolves the image URL from a legacy image entry, trying
// the known carrier fields in order. An empty result means the entry carried
// no usable URL and the part is dropped.
func extractImageURL(obj map[string]any) string {
	if url, ok := obj["url"].(string); ok && url != "" {
		return url
	}
	if url, ok := obj["image_url"].(string); ok && url != "" {
		return url
	}
	if nested, ok := obj["image_url"].(map[string]any); ok {
		if url, ok := nested["url"].(string); ok && url != "" {
			return url
		}
	}
	if url, ok := obj["dataUrl"].(string); ok && url != "" {
		return url
	}
	return ""
}
