package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// cleanModelJSON strips markdown code fences the model sometimes wraps
// around JSON output, then narrows to the outermost object if any leading
// prose survived.
func cleanModelJSON(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return s
}

// decodeModelJSON cleans the raw model text and unmarshals it into out.
func decodeModelJSON(raw string, out any) error {
	cleaned := cleanModelJSON(raw)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("decoding model output: %w", err)
	}
	return nil
}
