package assertions

import (
	"encoding/json"
	"strings"
)

// Match reports whether two decoded JSON values are structurally equal.
// Values are expected in the encoding/json model: nil, bool, float64,
// string, []any and map[string]any.
//
// Arrays are position-sensitive; objects are key-order-insensitive but
// must have the same key count, with every key of actual present in
// expected with a matching value. Mismatched variants never compare
// equal, so Match("1", 1) is false.
func Match(actual, expected any) bool {
	switch a := actual.(type) {
	case nil:
		return expected == nil
	case bool:
		e, ok := expected.(bool)
		return ok && a == e
	case float64:
		e, ok := expected.(float64)
		return ok && a == e
	case string:
		e, ok := expected.(string)
		return ok && a == e
	case []any:
		e, ok := expected.([]any)
		if !ok || len(a) != len(e) {
			return false
		}
		for i := range a {
			if !Match(a[i], e[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		e, ok := expected.(map[string]any)
		if !ok || len(a) != len(e) {
			return false
		}
		for k, av := range a {
			ev, found := e[k]
			if !found || !Match(av, ev) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Normalize round-trips v through JSON so that caller-supplied values
// (ints, structs, maps with typed values) land in the same value model
// Match operates on. Returns nil if v does not marshal.
func Normalize(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

// MatchesPattern reports whether value matches pattern. A pattern
// without '*' is an exact comparison. Otherwise the pattern is split on
// '*': a non-empty leading fragment anchors the start, a non-empty
// trailing fragment anchors the end, and non-empty middle fragments
// must appear in order, non-overlapping, left to right. "*" matches
// everything.
func MatchesPattern(value, pattern string) bool {
	if !strings.Contains(pattern, "*") {
		return value == pattern
	}

	parts := strings.Split(pattern, "*")

	pos := 0
	for i, part := range parts {
		if part == "" {
			continue
		}
		switch {
		case i == 0:
			if !strings.HasPrefix(value, part) {
				return false
			}
			pos = len(part)
		case i == len(parts)-1:
			if !strings.HasSuffix(value, part) {
				return false
			}
		default:
			found := strings.Index(value[pos:], part)
			if found < 0 {
				return false
			}
			pos += found + len(part)
		}
	}
	return true
}
