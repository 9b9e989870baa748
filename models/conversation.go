package models

// ConversationKey derives the canonical id of a 1:1 conversation. The
// participants are sorted first, so both sides resolve to the same key
// no matter who initiates. Room chat bypasses this and uses the room
// name directly.
func ConversationKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + ":" + b
}
