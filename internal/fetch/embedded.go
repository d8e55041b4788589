package fetch

import "strings"

// ExtractAssignedJSON locates an assignment like
//
//	window.__INITIAL_STATE__ = { ... };
//
// in inline script text and returns the JSON object literal assigned to the
// marker. It slices balanced braces rather than matching with a regex, so
// multi-line payloads, nested objects, trailing semicolons and brace
// characters inside string values are all handled in one place.
//
// The second return value is false when the marker or a complete object
// cannot be found.
func ExtractAssignedJSON(script, marker string) (string, bool) {
	idx := strings.Index(script, marker)
	if idx < 0 {
		return "", false
	}

	rest := script[idx+len(marker):]
	eq := strings.Index(rest, "=")
	if eq < 0 {
		return "", false
	}
	rest = rest[eq+1:]

	open := strings.Index(rest, "{")
	if open < 0 {
		return "", false
	}
	// Only whitespace may sit between the '=' and the object.
	if strings.TrimSpace(rest[:open]) != "" {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := open; i < len(rest); i++ {
		ch := rest[i]

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
				return rest[open : i+1], true
			}
		}
	}

	return "", false
}
