package internal

// LegacyConversation is one conversation-shaped record sniffed out of an
// untyped payload. Legacy exports predate versioning, so no field can be
// trusted to be present or correctly typed; nil means absent.
type LegacyConversation struct {
	ID        any
	Title     any
	Messages  []any
	CreatedAt any
	UpdatedAt any
}

// wrapperKeys are probed in priority order when a payload object wraps its
// conversation list under a collection field.
var wrapperKeys = []string{"conversations", "sessions", "chats", "items", "data"}

// ShapeRule classifies one known legacy export shape. Rules are structural
// predicates, not schema validators, and are evaluated in the order of
// shapeRules; the first rule that matches wins.
type ShapeRule struct {
	Name  string
	sniff func(payload any) (convs []LegacyConversation, warnings []string, ok bool)
}

var shapeRules = []ShapeRule{
	{Name: "empty-array", sniff: sniffEmptyArray},
	{Name: "message-array", sniff: sniffMessageArray},
	{Name: "conversation-array", sniff: sniffConversationArray},
	{Name: "wrapped-collection", sniff: sniffWrappedCollection},
	{Name: "single-conversation", sniff: sniffSingleConversation},
}

// ShapeUnrecognized is the rule name reported when no rule matched.
const ShapeUnrecognized = "unrecognized"

// ExtractLegacyConversations classifies an arbitrary decoded payload into a
// list of legacy conversation records. Unrecognized input degrades to an
// empty result plus a descriptive warning; the function never fails.
func ExtractLegacyConversations(payload any) ([]LegacyConversation, []string) {
	convs, warnings, _ := ClassifyPayload(payload)
	return convs, warnings
}

// ClassifyPayload is ExtractLegacyConversations plus the name of the shape
// rule that matched, for diagnostic display.
func ClassifyPayload(payload any) ([]LegacyConversation, []string, string) {
	for _, rule := range shapeRules {
		if convs, warnings, ok := rule.sniff(payload); ok {
			return convs, warnings, rule.Name
		}
	}
	return nil, []string{"no conversations found in payload"}, ShapeUnrecognized
}

func sniffEmptyArray(payload any) ([]LegacyConversation, []string, bool) {
	arr, ok := payload.([]any)
	if !ok || len(arr) != 0 {
		return nil, nil, false
	}
	return nil, []string{"payload array is empty"}, true
}

func sniffMessageArray(payload any) ([]LegacyConversation, []string, bool) {
	arr, ok := payload.([]any)
	if !ok || len(arr) == 0 || !allMessageLike(arr) {
		return nil, nil, false
	}
	return []LegacyConversation{{Title: "Imported Chat", Messages: arr}}, nil, true
}

func sniffConversationArray(payload any) ([]LegacyConversation, []string, bool) {
	arr, ok := payload.([]any)
	if !ok || len(arr) == 0 || !allConversationLike(arr) {
		return nil, nil, false
	}
	convs := make([]LegacyConversation, 0, len(arr))
	for _, el := range arr {
		convs = append(convs, legacyFromMap(el.(map[string]any)))
	}
	return convs, nil, true
}

func sniffWrappedCollection(payload any) ([]LegacyConversation, []string, bool) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, nil, false
	}
	for _, key := range wrapperKeys {
		arr, ok := obj[key].([]any)
		if !ok {
			continue
		}
		// First array-valued wrapper key wins, whatever it turns out to hold.
		convs, warnings := classifyArray(arr)
		return convs, warnings, true
	}
	return nil, nil, false
}

func sniffSingleConversation(payload any) ([]LegacyConversation, []string, bool) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, nil, false
	}
	if _, ok := obj["messages"].([]any); !ok {
		return nil, nil, false
	}
	return []LegacyConversation{legacyFromMap(obj)}, nil, true
}

// classifyArray re-runs the array-shaped rules against a wrapped collection.
func classifyArray(arr []any) ([]LegacyConversation, []string) {
	for _, sniff := range []func(any) ([]LegacyConversation, []string, bool){
		sniffEmptyArray,
		sniffMessageArray,
		sniffConversationArray,
	} {
		if convs, warnings, ok := sniff(arr); ok {
			return convs, warnings
		}
	}
	return nil, []string{"no conversations found in payload"}
}

// isMessageLike reports whether v could be a single chat message: a bare
// string, or an object carrying any field the message normalizer reads.
func isMessageLike(v any) bool {
	if _, ok := v.(string); ok {
		return true
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return false
	}
	for _, key := range []string{"role", "sender", "from", "parts", "content", "text", "message"} {
		if _, present := obj[key]; present {
			return true
		}
	}
	return false
}

// isConversationLike reports whether v is an object with an array-valued
// messages field.
func isConversationLike(v any) bool {
	obj, ok := v.(map[string]any)
	if !ok {
		return false
	}
	_, ok = obj["messages"].([]any)
	return ok
}

func allMessageLike(arr []any) bool {
	for _, el := range arr {
		if !isMessageLike(el) {
			return false
		}
	}
	return true
}

func allConversationLike(arr []any) bool {
	for _, el := range arr {
		if !isConversationLike(el) {
			return false
		}
	}
	return true
}

// legacyFromMap lifts the known conversation fields out of an untrusted map.
func legacyFromMap(obj map[string]any) LegacyConversation {
	lc := LegacyConversation{
		ID:        obj["id"],
		Title:     obj["title"],
		CreatedAt: obj["createdAt"],
		UpdatedAt: obj["updatedAt"],
	}
	if msgs, ok := obj["messages"].([]any); ok {
		lc.Messages = msgs
	}
	return lc
}
