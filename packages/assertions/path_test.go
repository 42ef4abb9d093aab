package assertions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const sampleDoc = `{
	"user": {"name": "John", "age": 30},
	"items": [
		{"id": 1, "name": "First"},
		{"id": 2, "name": "Second"}
	]
}`

func TestExtractPath(t *testing.T) {
	root := gjson.Parse(sampleDoc)

	tests := []struct {
		path string
		want any
	}{
		{"user.name", "John"},
		{"user.age", float64(30)},
		{"items[0].name", "First"},
		{"items[1].id", float64(2)},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := ExtractPath(root, tt.path)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

func TestExtractPath_Misses(t *testing.T) {
	root := gjson.Parse(sampleDoc)

	misses := []string{
		"nonexistent",
		"user.email",
		"user.name.deeper",
		"items[2].id",
		"items[-1]",
		"items[x]",
		"items[0",
		"user[0]",
		"items[0].missing",
	}

	for _, path := range misses {
		t.Run(path, func(t *testing.T) {
			_, ok := ExtractPath(root, path)
			assert.False(t, ok)
		})
	}
}

func TestExtractPath_NoGjsonSyntax(t *testing.T) {
	// gjson's wildcard and count syntax must not leak through the
	// fixed segment grammar.
	root := gjson.Parse(sampleDoc)

	_, ok := ExtractPath(root, "us*r.name")
	assert.False(t, ok)

	_, ok = ExtractPath(root, "items.#")
	assert.False(t, ok)
}

func TestExtractPath_ReturnsSubtree(t *testing.T) {
	root := gjson.Parse(sampleDoc)

	got, ok := ExtractPath(root, "items")
	require.True(t, ok)
	assert.True(t, got.IsArray())
	assert.Len(t, got.Array(), 2)
}
