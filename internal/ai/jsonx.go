package ai

import (
	"encoding/json"
	"strings"
)

// Strip removes markdown code blocks if present (e.g. ```json ... ```).
// Idempotent: an already-clean JSON string passes through unchanged.
func Strip(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}

// DecodeObject strips fences from raw and unmarshals it into dst.
// Returns false when the payload is not valid JSON; dst is untouched in that case.
func DecodeObject(raw string, dst any) bool {
	return json.Unmarshal([]byte(Strip(raw)), dst) == nil
}

// DecodeList strips fences and parses a JSON array of T.
// Malformed payloads yield (nil, false); callers substitute their stage fallback.
func DecodeList[T any](raw string) ([]T, bool) {
	var items []T
	if err := json.Unmarshal([]byte(Strip(raw)), &items); err != nil {
		return nil, false
	}
	return items, true
}
