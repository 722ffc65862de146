package service

import (
	"encoding/json"
	"strings"
)

// Best-effort structured decoding of reasoning-service output. Models are
// told to return bare JSON but wrap it in prose or code fences anyway, so
// both helpers locate the first balanced span before decoding.

// decodeFirstArray finds the first balanced [...] span in raw and decodes it
// as a string list.
func decodeFirstArray(raw string) ([]string, bool) {
	span := firstBalancedSpan(raw, '[', ']')
	if span == "" {
		return nil, false
	}
	var items []string
	if err := json.Unmarshal([]byte(span), &items); err != nil {
		return nil, false
	}
	return items, true
}

// decodeFirstObject finds the first balanced {...} span in raw and decodes
// it into v.
func decodeFirstObject(raw string, v interface{}) bool {
	span := firstBalancedSpan(raw, '{', '}')
	if span == "" {
		return false
	}
	return json.Unmarshal([]byte(span), v) == nil
}

// firstBalancedSpan returns the first open...close span with balanced
// nesting, ignoring brackets inside JSON string literals.
func firstBalancedSpan(s string, open, close byte) string {
	start := strings.IndexByte(s, open)
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}

// statementLines is the last-resort extraction tier: lines that look like
// quoted strings or spoken statements.
func statementLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, `"`) && !strings.Contains(line, "You ") {
			continue
		}
		line = strings.Trim(line, `",`)
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
