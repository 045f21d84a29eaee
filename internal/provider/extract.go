package provider

import (
	"encoding/json"
	"fmt"
)

// FirstJSONObject returns the first balanced brace chunk inside s that
// decodes as a JSON object. Models often wrap their JSON in prose, and the
// prose itself may contain braces (echoed template placeholders like
// {image_data}); chunks that fail to decode are skipped and the scan
// continues.
func FirstJSONObject(s string) (map[string]any, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					var out map[string]any
					if err := json.Unmarshal([]byte(s[start:i+1]), &out); err == nil {
						return out, nil
					}
					// Not JSON after all; rescan from just inside the chunk.
					i = start
					start = -1
				}
			}
		}
	}
	return nil, fmt.Errorf("no json object found in response text")
}
