package assertions

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ExtractPath resolves a dotted path like "items[0].name" inside a
// parsed JSON document. Each dot-separated segment names an object
// field, optionally followed by a single [index] into an array held at
// that field. Navigation uses exact key lookups, so gjson's own path
// syntax (wildcards, queries) never applies.
//
// A lookup that fails at any step — missing field, non-object,
// non-array at an indexed segment, index out of range, malformed index —
// is a miss: ok is false and no error is ever produced.
func ExtractPath(root gjson.Result, path string) (gjson.Result, bool) {
	current := root
	for _, segment := range strings.Split(path, ".") {
		field := segment
		index := -1

		if open := strings.Index(segment, "["); open >= 0 {
			if !strings.HasSuffix(segment, "]") {
				return gjson.Result{}, false
			}
			field = segment[:open]
			idx, err := strconv.Atoi(segment[open+1 : len(segment)-1])
			if err != nil || idx < 0 {
				return gjson.Result{}, false
			}
			index = idx
		}

		next, ok := objectField(current, field)
		if !ok {
			return gjson.Result{}, false
		}
		current = next

		if index >= 0 {
			if !current.IsArray() {
				return gjson.Result{}, false
			}
			elems := current.Array()
			if index >= len(elems) {
				return gjson.Result{}, false
			}
			current = elems[index]
		}
	}
	return current, true
}

func objectField(v gjson.Result, field string) (gjson.Result, bool) {
	if !v.IsObject() {
		return gjson.Result{}, false
	}
	child, ok := v.Map()[field]
	return child, ok
}
